package common

import (
	"go/token"
	"path/filepath"
	"strings"
	"unicode"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// PkgName derives a Go package name from the directory a generated file is
// written to. Characters that cannot appear in an identifier are dropped and
// the result is lowercased. Returns fallback if nothing usable is left or
// the result is a Go keyword.
func PkgName(dir, fallback string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == "." || base == string(filepath.Separator) {
		return fallback
	}

	var b strings.Builder

	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
			b.WriteRune(r)
		case unicode.IsDigit(r) && r < unicode.MaxASCII && b.Len() > 0:
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 || token.IsKeyword(b.String()) {
		return fallback
	}

	return b.String()
}
