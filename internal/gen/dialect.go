package gen

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Dialect -linecomment -output=dialect_string.go

// Dialect is an output format of the projector.
type Dialect int

const (
	_ Dialect = iota // zero value is invalid

	DialectTypeScript // typescript
	DialectJSON       // json
	DialectGo         // go

	dialectEnd
)

// ErrUnknownDialect is returned by ParseDialect for unsupported names.
var ErrUnknownDialect = errors.New("unknown dialect")

// Dialects lists every supported dialect.
func Dialects() []Dialect {
	out := make([]Dialect, 0, int(dialectEnd)-1)
	for d := DialectTypeScript; d < dialectEnd; d++ {
		out = append(out, d)
	}

	return out
}

// ParseDialect parses a dialect name case-insensitively. "ts" is accepted as
// an alias for typescript.
func ParseDialect(s string) (Dialect, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "ts" {
		return DialectTypeScript, nil
	}

	for _, d := range Dialects() {
		if d.String() == name {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownDialect, s)
}
