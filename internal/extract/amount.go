package extract

import (
	"regexp"

	"github.com/dromeroa/expedientes/internal/textutil"
)

var amountPattern = regexp.MustCompile(`total\s*:\s*\$?\s*([\d.,]+)`)

// Amount finds the "total:" figure in the document and returns the raw
// numeric string as printed, separators included. No locale parsing
// happens here; downstream consumers receive the figure verbatim.
func Amount(text string) *string {
	m := amountPattern.FindStringSubmatch(textutil.NormalizeText(text))
	if m == nil {
		return nil
	}
	v := m[1]
	return &v
}
