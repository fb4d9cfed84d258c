// Command docgen renders per-case legal documents from a previously
// exported dataset workbook, one DOCX per row.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/dromeroa/expedientes/internal/dataset"
	"github.com/dromeroa/expedientes/internal/render"
)

var (
	datasetPath  = pflag.String("dataset", "outputs/datos_deudores.xlsx", "Dataset workbook exported by the pipeline")
	templatePath = pflag.String("template", "template.docx", "DOCX placeholder template")
	outputDir    = pflag.String("output", "outputs/filled_docs", "Directory for rendered documents")
	logLevel     = pflag.String("loglevel", "info", "Log level (debug, info, warn, error)")
)

func main() {
	pflag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q\n", *logLevel)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	rows, err := dataset.ReadXLSX(*datasetPath)
	if err != nil {
		logger.Error("cannot read dataset", "path", *datasetPath, "error", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		logger.Warn("dataset is empty, nothing to render", "path", *datasetPath)
		return
	}

	renderer := render.NewRenderer(*templatePath, *outputDir, logger)
	if err := renderer.RenderAll(rows); err != nil {
		logger.Error("rendering failed", "error", err)
		os.Exit(1)
	}
	logger.Info("rendering finished", "rows", len(rows), "output", *outputDir)
}
