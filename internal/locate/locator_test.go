package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cand(name string) Candidate {
	return Candidate{Name: name, Stem: name[:len(name)-len(filepath.Ext(name))]}
}

func TestFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "B.PDF"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notas.txt"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "anexos"), 0o750))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	cands := FromDir(entries)
	require.Len(t, cands, 2)
	assert.Equal(t, "B.PDF", cands[0].Name)
	assert.Equal(t, "B", cands[0].Stem)
	assert.Equal(t, "a.pdf", cands[1].Name)
	assert.Equal(t, "a", cands[1].Stem)
}

func TestBest(t *testing.T) {
	tests := []struct {
		name      string
		cands     []Candidate
		pattern   string
		threshold int
		wantName  string
		wantErr   bool
	}{
		{
			name:      "exact_substring_match",
			cands:     []Candidate{cand("factura.pdf"), cand("reporte runt abc123.pdf")},
			pattern:   "runt",
			threshold: 70,
			wantName:  "reporte runt abc123.pdf",
		},
		{
			name:      "accented_filename_matches",
			cands:     []Candidate{cand("Formulario de Ejecución.pdf")},
			pattern:   "formulario de ejecucion",
			threshold: 85,
			wantName:  "Formulario de Ejecución.pdf",
		},
		{
			name:      "nothing_clears_threshold",
			cands:     []Candidate{cand("factura.pdf"), cand("contrato.pdf")},
			pattern:   "formulario de ejecucion",
			threshold: 85,
			wantErr:   true,
		},
		{
			name:      "empty_folder",
			cands:     nil,
			pattern:   "poder",
			threshold: 70,
			wantErr:   true,
		},
		{
			name: "tie_keeps_first_encountered",
			cands: []Candidate{
				cand("runt reporte.pdf"),
				cand("reporte runt.pdf"),
			},
			pattern:   "runt",
			threshold: 70,
			wantName:  "runt reporte.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Best(tt.cands, tt.pattern, tt.threshold)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoMatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, m.Name)
			assert.GreaterOrEqual(t, m.Score, tt.threshold)
		})
	}
}

func TestBestVersionedPrefersHighestPrefix(t *testing.T) {
	cands := []Candidate{
		cand("1_formulario_ejecucion.pdf"),
		cand("2_formulario_ejecucion.pdf"),
	}

	m, err := BestVersioned(cands, "formulario de ejecucion", 70)
	require.NoError(t, err)
	assert.Equal(t, "2_formulario_ejecucion.pdf", m.Name)
}

func TestBestVersionedMissingPrefixRanksLast(t *testing.T) {
	cands := []Candidate{
		cand("formulario de ejecucion.pdf"),
		cand("1 formulario de ejecucion.pdf"),
	}

	m, err := BestVersioned(cands, "formulario de ejecucion", 85)
	require.NoError(t, err)
	assert.Equal(t, "1 formulario de ejecucion.pdf", m.Name)
}

func TestBestVersionedNoMatch(t *testing.T) {
	_, err := BestVersioned([]Candidate{cand("factura.pdf")}, "formulario de ejecucion", 85)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFind(t *testing.T) {
	cands := []Candidate{
		cand("1 formulario de ejecucion.pdf"),
		cand("2 formulario de ejecucion.pdf"),
		cand("acuse electronicos notificacion.pdf"),
		cand("reporte runt.pdf"),
	}

	form, err := Find(cands, RoleExecutionForm, 85)
	require.NoError(t, err)
	assert.Equal(t, "2 formulario de ejecucion.pdf", form.Name)

	receipt, err := Find(cands, RoleAcknowledgmentReceipt, 70)
	require.NoError(t, err)
	assert.Equal(t, "acuse electronicos notificacion.pdf", receipt.Name)

	_, err = Find(cands, RolePowerOfAttorney, 70)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestExistsUniqueLetterAlternates(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		found bool
	}{
		{name: "carta_unica", file: "carta unica vinculacion.pdf", found: true},
		{name: "reconocer_alternate", file: "certificado reconocer.pdf", found: true},
		{name: "fiserv_alternate", file: "fiserv constancia.pdf", found: true},
		{name: "unrelated", file: "factura.pdf", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Exists([]Candidate{cand(tt.file)}, RoleUniqueLetter, 70)
			assert.Equal(t, tt.found, got)
		})
	}
}
