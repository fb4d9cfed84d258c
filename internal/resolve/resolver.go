package resolve

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/dromeroa/expedientes/internal/extract"
	"github.com/dromeroa/expedientes/internal/locate"
	"github.com/dromeroa/expedientes/internal/pdftext"
)

// Resolver turns one case folder at a time into a CaseRecord. Folder
// failures are isolated: a broken folder is logged and skipped, never
// aborting the run.
type Resolver struct {
	texts         pdftext.TextSource
	logger        *slog.Logger
	formThreshold int
	docThreshold  int
}

func NewResolver(texts pdftext.TextSource, formThreshold, docThreshold int, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		texts:         texts,
		logger:        logger,
		formThreshold: formThreshold,
		docThreshold:  docThreshold,
	}
}

// Run processes every numeric subdirectory of inputsDir in sorted name
// order and returns the dataset rows in that same order.
func (r *Resolver) Run(inputsDir string) ([]CaseRecord, error) {
	entries, err := os.ReadDir(inputsDir)
	if err != nil {
		return nil, fmt.Errorf("read inputs directory: %w", err)
	}

	var folders []string
	for _, e := range entries {
		if e.IsDir() && isNumeric(e.Name()) {
			folders = append(folders, e.Name())
		}
	}
	sort.Strings(folders)

	var records []CaseRecord
	for _, folder := range folders {
		r.logger.Info("processing folder", "folder", folder)

		rec, err := r.resolveFolder(filepath.Join(inputsDir, folder), folder)
		if err != nil {
			if errors.Is(err, locate.ErrNoMatch) {
				r.logger.Warn("no execution form found, skipping folder", "folder", folder)
			} else {
				r.logger.Error("folder processing failed", "folder", folder, "error", err)
			}
			continue
		}

		records = append(records, *rec)
		r.logger.Info("folder processed", "folder", folder, "form", rec.FormFile, "score", rec.FormScore)
	}
	return records, nil
}

// resolveFolder assembles the consolidated record for one folder. The
// deferred recover keeps a misbehaving folder from taking down the
// batch.
func (r *Resolver) resolveFolder(dir, folder string) (rec *CaseRecord, err error) {
	defer func() {
		if p := recover(); p != nil {
			rec = nil
			err = fmt.Errorf("folder %s: panic: %v", folder, p)
		}
	}()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list folder: %w", err)
	}
	cands := locate.FromDir(entries)

	form, err := locate.Find(cands, locate.RoleExecutionForm, r.formThreshold)
	if err != nil {
		return nil, err
	}

	rec = &CaseRecord{Folder: folder, FormFile: form.Name, FormScore: form.Score}

	if text, ok := r.documentText(dir, form.Name, folder); ok {
		rec.Debtor = extract.Debtor(text)
		rec.Amount = extract.Amount(text)
		rec.ExecutionDate = extract.ExecutionDate(text)
	}

	if receipt, ferr := locate.Find(cands, locate.RoleAcknowledgmentReceipt, r.docThreshold); ferr == nil {
		name := receipt.Name
		rec.ReceiptFile = &name
		if text, ok := r.documentText(dir, receipt.Name, folder); ok {
			rec.NotificationDate = extract.NotificationDate(text)
		}
	}

	if registry, ferr := locate.Find(cands, locate.RoleVehicleRegistry, r.docThreshold); ferr == nil {
		name := registry.Name
		rec.RegistryFile = &name
		rec.HasVehicleRegistry = true
		if text, ok := r.documentText(dir, registry.Name, folder); ok {
			rec.Vehicle = extract.Vehicle(text)
		}
	}

	rec.HasInitialRegistration = locate.Exists(cands, locate.RoleInitialRegistrationForm, r.docThreshold)
	rec.HasPowerOfAttorney = locate.Exists(cands, locate.RolePowerOfAttorney, r.docThreshold)
	rec.HasUniqueLetter = locate.Exists(cands, locate.RoleUniqueLetter, r.docThreshold)
	rec.HasPledge = locate.Exists(cands, locate.RolePledgeDocument, r.docThreshold)

	return rec, nil
}

// documentText extracts a document's text once so every extractor for
// that document shares it. Extraction failures degrade to null fields.
func (r *Resolver) documentText(dir, file, folder string) (string, bool) {
	text, err := r.texts.Text(filepath.Join(dir, file))
	if err != nil {
		r.logger.Error("text extraction failed", "folder", folder, "file", file, "error", err)
		return "", false
	}
	return text, true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
