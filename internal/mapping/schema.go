package mapping

import (
	"slices"

	"quiz-data-generator/internal/common"
)

// CurrentVersion is the mapping schema version written by Marshal.
const CurrentVersion = "1"

// MappingFile represents the root of a YAML mapping definition file.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// OneToOne is a simplified mapping syntax where keys are source columns
	// and values are target paths.
	// Example: { "編號": "id", "選項A": "options.A" }
	OneToOne map[string]string `yaml:"121,omitempty"`

	// Fields defines explicit field mappings with aliases and defaults.
	Fields []FieldMapping `yaml:"fields,omitempty"`

	// Ignore lists source columns that are known and deliberately unused.
	Ignore []string `yaml:"ignore,omitempty"`
}

// FieldMapping maps one or more candidate source columns to a target path.
type FieldMapping struct {
	// Target is the canonical path, e.g. "question" or "options.B".
	Target string `yaml:"target"`

	// Source lists candidate columns; the first one present in a record wins.
	Source StringOrArray `yaml:"source"`

	// Default is used when no source column holds a value. Nil means the
	// field is required.
	Default *string `yaml:"default,omitempty"`
}

// StringOrArray is a []string that can be unmarshaled from a single string or an array.
type StringOrArray []string

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// Rule is a validated mapping for a single target.
type Rule struct {
	Target  Target
	Sources []string
	Default *string
}

// Required reports whether a missing value is an error.
func (r Rule) Required() bool {
	return r.Default == nil
}

// Table is a validated, ordered mapping ready for projection.
type Table struct {
	// Rules are ordered by target: scalar fields in Question order with
	// options sorted by letter in place of the options field.
	Rules []Rule
	// Ignore holds columns that are deliberately unused.
	Ignore []string
}

// OptionLetters returns the mapped option letters in sorted order.
func (t *Table) OptionLetters() []string {
	var letters []string

	for _, r := range t.Rules {
		if r.Target.Field == FieldOption {
			letters = append(letters, r.Target.Option)
		}
	}

	return letters
}

// Sources returns every column referenced by a rule or the ignore list.
func (t *Table) Sources() []string {
	var cols []string
	for _, r := range t.Rules {
		cols = append(cols, r.Sources...)
	}

	cols = append(cols, t.Ignore...)

	return common.Dedupe(cols)
}
