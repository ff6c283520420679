package mapping

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"quiz-data-generator/internal/common"
)

// Field identifies a canonical Question field.
type Field int

const (
	FieldUnknown Field = iota
	FieldID
	FieldCategory
	FieldDifficulty
	FieldQuestion
	FieldOption
	FieldAnswer
	FieldExplanation
)

var fieldNames = map[Field]string{
	FieldID:          "id",
	FieldCategory:    "category",
	FieldDifficulty:  "difficulty",
	FieldQuestion:    "question",
	FieldOption:      "options",
	FieldAnswer:      "answer",
	FieldExplanation: "explanation",
}

// String returns the canonical field name.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}

	return common.UnknownStr
}

// IsInteger reports whether the field holds an integer.
func (f Field) IsInteger() bool {
	return f == FieldID
}

// ScalarFields are the single-valued targets every mapping must cover.
var ScalarFields = []Field{
	FieldID, FieldCategory, FieldDifficulty, FieldQuestion, FieldAnswer, FieldExplanation,
}

// KnownTargets lists the scalar target paths plus the default option paths,
// used for suggestions.
func KnownTargets() []string {
	paths := make([]string, 0, len(ScalarFields)+4)
	for _, f := range ScalarFields {
		paths = append(paths, f.String())
	}

	for _, l := range []string{"A", "B", "C", "D"} {
		paths = append(paths, "options."+l)
	}

	return paths
}

// Target is a parsed target path.
type Target struct {
	Field Field
	// Option is the letter for FieldOption targets.
	Option string
}

// String returns the path form of the target.
func (t Target) String() string {
	if t.Field == FieldOption {
		return "options." + t.Option
	}

	return t.Field.String()
}

// ParseTarget parses a target path string into a Target.
// Supports: "id", "category", "difficulty", "question", "answer",
// "explanation" and "options.<LETTER>".
func ParseTarget(path string) (Target, error) {
	if path == "" {
		return Target{}, errors.New("empty path")
	}

	head, rest, nested := strings.Cut(path, ".")

	for f, name := range fieldNames {
		if name != head {
			continue
		}

		if f != FieldOption {
			if nested {
				return Target{}, fmt.Errorf("invalid path %q: %s has no sub-fields", path, head)
			}

			return Target{Field: f}, nil
		}

		if !nested || rest == "" {
			return Target{}, fmt.Errorf("invalid path %q: options needs a letter, e.g. options.A", path)
		}

		if !isValidLetter(rest) {
			return Target{}, fmt.Errorf("invalid path %q: invalid option key %q", path, rest)
		}

		return Target{Field: FieldOption, Option: rest}, nil
	}

	return Target{}, fmt.Errorf("invalid path %q: unknown field %q", path, head)
}

// isValidLetter checks an option key: ASCII letters and digits only.
func isValidLetter(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r > unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsDigit(r)) {
			return false
		}
	}

	return true
}
