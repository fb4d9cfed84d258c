package dataset

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dromeroa/expedientes/internal/extract"
	"github.com/dromeroa/expedientes/internal/resolve"
)

func strptr(s string) *string { return &s }

func sampleRecord() resolve.CaseRecord {
	return resolve.CaseRecord{
		Folder:             "100",
		FormFile:           "2 formulario de ejecucion.pdf",
		FormScore:          100,
		RegistryFile:       strptr("reporte runt.pdf"),
		ReceiptFile:        strptr("acuse electronicos.pdf"),
		Amount:             strptr("1.234.567"),
		ExecutionDate:      strptr("2023-05-10 14:33:25"),
		NotificationDate:   strptr("2023-06-01 10:15:30"),
		HasVehicleRegistry: true,
		HasPowerOfAttorney: true,
		Debtor: extract.DebtorRecord{
			IdentificationNumber: strptr("1012345678"),
			FirstSurname:         strptr("Perez"),
			FirstName:            strptr("Juan"),
			Email:                strptr("juan.perez@mail.com"),
			FullName:             "Perez Juan",
		},
		Vehicle: extract.VehicleRecord{
			Plate: strptr("ABC123"),
			Brand: strptr("CHEVROLET"),
		},
	}
}

func TestRowStrings(t *testing.T) {
	row := RowStrings(sampleRecord())
	require.Len(t, row, len(Columns))

	m := AsMap(sampleRecord())
	assert.Equal(t, "100", m["carpeta"])
	assert.Equal(t, "2 formulario de ejecucion.pdf", m["formulario"])
	assert.Equal(t, "100", m["fuzzy_score_formulario"])
	assert.Equal(t, "1.234.567", m["monto_ejecucion"])
	assert.Equal(t, "true", m["runt_exist"])
	assert.Equal(t, "false", m["prenda"])
	assert.Equal(t, "", m["segundo_apellido"], "absent fields render empty")
	assert.Equal(t, "Perez Juan", m["nombres_completos"])
	assert.Equal(t, "ABC123", m["placa"])
}

func TestWriteAndReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.xlsx")
	require.NoError(t, WriteXLSX(path, []resolve.CaseRecord{sampleRecord()}))

	rows, err := ReadXLSX(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "100", rows[0]["carpeta"])
	assert.Equal(t, "Perez Juan", rows[0]["nombres_completos"])
	assert.Equal(t, "ABC123", rows[0]["placa"])
	assert.Equal(t, "", rows[0]["segundo_apellido"])
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos.csv")
	require.NoError(t, WriteCSV(path, []resolve.CaseRecord{sampleRecord()}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "100", rows[1][0])
}

func TestExportPrefersXLSX(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	path, err := Export(dir, []resolve.CaseRecord{sampleRecord()}, logger)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, xlsxFilename), path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestExportEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	path, err := Export(dir, nil, logger)
	require.NoError(t, err)

	rows, err := ReadXLSX(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
