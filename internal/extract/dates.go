package extract

import (
	"regexp"
	"strings"
)

// Both date extractors run against the raw text: these labels come out
// of the PDFs in clean form, and the inscription date keeps its original
// casing in the output.
var (
	executionDatePattern = regexp.MustCompile(
		`(?i)fecha\s+y\s+hora\s+de\s+validez\s+de\s+la\s+inscripci[oó]n\s*([^\n]+)`)
	notificationDatePattern = regexp.MustCompile(
		`(?i)fecha admisi[oó]n\s*([0-9]{4}-[0-9]{2}-[0-9]{2}\s+[0-9]{2}:[0-9]{2}(?::[0-9]{2})?)`)
)

// ExecutionDate returns the free text following the inscription validity
// label, up to the end of the line.
func ExecutionDate(text string) *string {
	m := executionDatePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return nil
	}
	return &v
}

// NotificationDate returns the admission timestamp verbatim. The shape
// is strict because the source field is machine-generated; anything not
// matching YYYY-MM-DD HH:MM[:SS] is treated as not found.
func NotificationDate(text string) *string {
	m := notificationDatePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v := m[1]
	return &v
}
