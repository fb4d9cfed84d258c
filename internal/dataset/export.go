package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/dromeroa/expedientes/internal/resolve"
)

const (
	sheetName = "Casos"

	xlsxFilename = "datos_deudores.xlsx"
	csvFilename  = "datos_deudores.csv"

	dirPerm = 0o750
)

// Export writes the dataset under outDir, preferring XLSX and falling
// back to CSV when the workbook cannot be written. Returns the path of
// the artifact actually produced.
func Export(outDir string, records []resolve.CaseRecord, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	xlsxPath := filepath.Join(outDir, xlsxFilename)
	err := WriteXLSX(xlsxPath, records)
	if err == nil {
		logger.Info("dataset exported", "path", xlsxPath, "rows", len(records))
		return xlsxPath, nil
	}
	logger.Warn("xlsx export failed, falling back to csv", "error", err)

	csvPath := filepath.Join(outDir, csvFilename)
	if err := WriteCSV(csvPath, records); err != nil {
		return "", fmt.Errorf("csv fallback: %w", err)
	}
	logger.Info("dataset exported", "path", csvPath, "rows", len(records))
	return csvPath, nil
}

// WriteXLSX writes one sheet with a header row and one row per record.
func WriteXLSX(path string, records []resolve.CaseRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for rowIdx, rec := range records {
		for colIdx, v := range rowValues(rec) {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// WriteCSV writes the same rows in delimited form.
func WriteCSV(path string, records []resolve.CaseRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(RowStrings(rec)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadXLSX loads a previously exported workbook as column-keyed rows,
// for the standalone document renderer.
func ReadXLSX(path string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := sheetName
	sheets := f.GetSheetList()
	if len(sheets) > 0 {
		found := false
		for _, s := range sheets {
			if s == sheet {
				found = true
				break
			}
		}
		if !found {
			sheet = sheets[0]
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				m[col] = row[i]
			} else {
				m[col] = ""
			}
		}
		out = append(out, m)
	}
	return out, nil
}
