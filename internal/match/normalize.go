package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// NormalizeKey normalizes a column name for fuzzy matching.
// The normalization pipeline:
// 1. Fold full-width and half-width forms to their canonical width.
// 2. Compose to NFC.
// 3. Case-fold to lower.
// 4. Strip separators and whitespace.
func NormalizeKey(s string) string {
	folded := norm.NFC.String(width.Fold.String(s))
	folded = strings.ToLower(folded)

	return stripSeparators(folded)
}

// CleanHeader trims surrounding whitespace, including ideographic spaces,
// and composes the header text to NFC. Unlike NormalizeKey it keeps the
// text readable and is what ends up as a record key.
func CleanHeader(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ':' || unicode.IsSpace(r)
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
