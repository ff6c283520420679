package gen

import (
	"errors"
	"fmt"
	"go/token"
	"unicode"
)

// ErrInvalidName is returned when a configured type, constant or package
// name cannot appear in the emitted source.
var ErrInvalidName = errors.New("invalid name")

// tsReserved are the words a TypeScript declaration cannot be named.
var tsReserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "let": true, "static": true, "yield": true, "await": true,
	"implements": true, "interface": true, "package": true, "private": true,
	"protected": true, "public": true,
	"any": true, "boolean": true, "number": true, "string": true, "symbol": true,
	"never": true, "unknown": true, "object": true, "undefined": true,
}

// isTypeScriptIdent reports whether s is a plain TypeScript identifier.
func isTypeScriptIdent(s string) bool {
	if s == "" || tsReserved[s] {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}

// Validate checks that the configured names produce compilable source for
// every dialect in outputs.
func (g *Generator) Validate(outputs []Output) error {
	for _, out := range outputs {
		var err error

		switch out.Dialect {
		case DialectTypeScript:
			err = g.validateTypeScript()
		case DialectGo:
			err = g.validateGo()
		}

		if err != nil {
			return fmt.Errorf("%s output %s: %w", out.Dialect, out.Path, err)
		}
	}

	return nil
}

func (g *Generator) validateTypeScript() error {
	if !isTypeScriptIdent(g.config.TypeName) {
		return fmt.Errorf("%w: type name %q", ErrInvalidName, g.config.TypeName)
	}

	if !isTypeScriptIdent(g.config.ConstName) {
		return fmt.Errorf("%w: const name %q", ErrInvalidName, g.config.ConstName)
	}

	if g.config.TypeName == g.config.ConstName {
		return fmt.Errorf("%w: type and const are both named %q", ErrInvalidName, g.config.TypeName)
	}

	return nil
}

func (g *Generator) validateGo() error {
	typeName := exportedIdent(g.config.TypeName)
	if !token.IsIdentifier(typeName) {
		return fmt.Errorf("%w: type name %q has no Go form", ErrInvalidName, g.config.TypeName)
	}

	varName := exportedIdent(g.config.ConstName)
	if !token.IsIdentifier(varName) {
		return fmt.Errorf("%w: const name %q has no Go form", ErrInvalidName, g.config.ConstName)
	}

	if typeName == varName {
		return fmt.Errorf("%w: type %q and const %q both become %s in Go",
			ErrInvalidName, g.config.TypeName, g.config.ConstName, typeName)
	}

	if g.config.GoPackage != "" && !token.IsIdentifier(g.config.GoPackage) {
		return fmt.Errorf("%w: go package %q", ErrInvalidName, g.config.GoPackage)
	}

	return nil
}
