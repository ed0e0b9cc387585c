package normalization

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldToken lowercases, trims and strips diacritics so "Miércoles " and "miercoles" compare equal.
func FoldToken(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripper, trimmed)
	if err != nil {
		folded = trimmed
	}
	return strings.ToLower(folded)
}
