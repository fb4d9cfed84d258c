package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dromeroa/expedientes/internal/config"
	"github.com/dromeroa/expedientes/internal/dataset"
	"github.com/dromeroa/expedientes/internal/pdftext"
	"github.com/dromeroa/expedientes/internal/render"
	"github.com/dromeroa/expedientes/internal/resolve"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	if cfg.IsDebug() {
		logger.Debug("starting", "config", cfg.String())
	}

	texts := pdftext.NewService(cfg.MaxFileSize)
	resolver := resolve.NewResolver(texts, cfg.FormThreshold, cfg.DocThreshold, logger)

	records, err := resolver.Run(cfg.InputsDir)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("run finished", "folders_resolved", len(records))

	if _, err := dataset.Export(cfg.OutputDir, records, logger); err != nil {
		logger.Error("dataset export failed", "error", err)
		os.Exit(1)
	}

	if cfg.RenderDocs {
		outDir := filepath.Join(cfg.OutputDir, "filled_docs")
		renderer := render.NewRenderer(cfg.TemplatePath, outDir, logger)

		rows := make([]map[string]string, 0, len(records))
		for _, rec := range records {
			rows = append(rows, dataset.AsMap(rec))
		}
		if err := renderer.RenderAll(rows); err != nil {
			logger.Error("document rendering failed", "error", err)
			os.Exit(1)
		}
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("expedientes\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
