package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText canonicalizes text for matching purposes: non-breaking
// spaces become regular spaces, the text is decomposed (NFD), combining
// diacritical marks are stripped, and the result is lower-cased.
// The transform is idempotent, so normalized text can safely pass
// through it again.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), s)
	if err != nil {
		// Fall back to the un-folded text; lower-casing still applies.
		folded = s
	}
	return strings.ToLower(folded)
}

// NormalizeStem applies the matching normalization to a filename stem.
// Filename stems never carry non-breaking spaces in practice, but the
// shared transform keeps locator scoring and body-text matching aligned.
func NormalizeStem(stem string) string {
	return NormalizeText(stem)
}

// TitleCase title-cases a value using Spanish casing rules.
func TitleCase(s string) string {
	return cases.Title(language.Spanish).String(s)
}

// UpperCase upper-cases a value using Spanish casing rules.
func UpperCase(s string) string {
	return cases.Upper(language.Spanish).String(s)
}
