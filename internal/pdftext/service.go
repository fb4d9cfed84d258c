package pdftext

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrUnreadable marks files that cannot be opened or decoded as PDF.
// Callers degrade the affected fields to null instead of aborting.
var ErrUnreadable = errors.New("unreadable pdf")

const defaultMaxFileSize = 100 * 1024 * 1024 // 100MB

// TextSource renders every page of a document to plain text, preserving
// page order and line breaks.
type TextSource interface {
	Text(path string) (string, error)
}

// Service extracts plain text from PDF files on disk.
type Service struct {
	maxFileSize int64
}

// NewService creates a text extraction service with the given file size
// limit. A non-positive limit falls back to the default.
func NewService(maxFileSize int64) *Service {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	return &Service{maxFileSize: maxFileSize}
}

// Text returns the concatenated plain text of all pages in page order.
// Any open or decode failure is reported as ErrUnreadable.
func (s *Service) Text(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: stat %s: %v", ErrUnreadable, path, err)
	}
	if err := s.validate(path, info); err != nil {
		return "", err
	}
	if err := s.probe(path); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails.
			continue
		}
		builder.WriteString(content)
	}
	return builder.String(), nil
}

func (s *Service) validate(path string, info os.FileInfo) error {
	if info.IsDir() {
		return fmt.Errorf("%w: path is a directory: %s", ErrUnreadable, path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("%w: not a pdf file: %s", ErrUnreadable, path)
	}
	if info.Size() > s.maxFileSize {
		return fmt.Errorf("%w: file too large: %s (%d bytes, max %d)",
			ErrUnreadable, path, info.Size(), s.maxFileSize)
	}
	return nil
}

// probe asks pdfcpu to parse the document structure before text
// extraction, so corrupt files surface a distinguishable failure rather
// than partial garbage.
func (s *Service) probe(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return err
	}
	return ctx.EnsurePageCount()
}
