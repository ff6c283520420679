package mapping

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/question.yaml
var defaultMapping []byte

// Default returns the built-in mapping for the original question sheet.
func Default() *MappingFile {
	mf, err := Parse(defaultMapping)
	if err != nil {
		panic(fmt.Sprintf("embedded default mapping is invalid: %v", err))
	}

	return mf
}

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Load returns the mapping at path, or the default when path is empty.
func Load(path string) (*MappingFile, error) {
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// Parse parses YAML data into a MappingFile. Unknown keys are rejected so a
// typo such as "feilds" does not silently drop mappings.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&mf); err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = CurrentVersion
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a MappingFile to the given path.
func WriteFile(mf *MappingFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

// Normalize expands the 121 shorthand into Fields entries so every mapping
// is in canonical form. Shorthand entries come first, sorted by target.
func Normalize(mf *MappingFile) []FieldMapping {
	expanded := make([]FieldMapping, 0, len(mf.OneToOne)+len(mf.Fields))

	for source, target := range mf.OneToOne {
		expanded = append(expanded, FieldMapping{
			Source: StringOrArray{source},
			Target: target,
		})
	}

	sort.Slice(expanded, func(i, j int) bool {
		if expanded[i].Target != expanded[j].Target {
			return expanded[i].Target < expanded[j].Target
		}

		return expanded[i].Source.First() < expanded[j].Source.First()
	})

	return append(expanded, mf.Fields...)
}
