package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lukasjarosch/go-docx"
)

const dirPerm = 0o750

// Renderer fills a DOCX template's named placeholders once per dataset
// row and writes one document per case.
type Renderer struct {
	templatePath string
	outDir       string
	logger       *slog.Logger
}

func NewRenderer(templatePath, outDir string, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{templatePath: templatePath, outDir: outDir, logger: logger}
}

// RenderAll renders every row. A row that fails is logged and skipped;
// rendering continues with the remaining rows.
func (r *Renderer) RenderAll(rows []map[string]string) error {
	if err := os.MkdirAll(r.outDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, row := range rows {
		if err := r.renderRow(row); err != nil {
			r.logger.Error("document render failed", "folder", row["carpeta"], "error", err)
			continue
		}
		r.logger.Info("document rendered", "folder", row["carpeta"], "name", OutputName(row))
	}
	return nil
}

func (r *Renderer) renderRow(row map[string]string) error {
	// The template is reopened per row; go-docx mutates the document
	// in place during replacement.
	doc, err := docx.Open(r.templatePath)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}

	placeholders := docx.PlaceholderMap{}
	for k, v := range Context(row) {
		placeholders[k] = v
	}
	if err := doc.ReplaceAll(placeholders); err != nil {
		return fmt.Errorf("replace placeholders: %w", err)
	}

	out := filepath.Join(r.outDir, OutputName(row))
	if err := doc.WriteToFile(out); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
