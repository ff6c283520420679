package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"quiz-data-generator/internal/common"
	"quiz-data-generator/internal/quiz"
	"quiz-data-generator/internal/record"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// TypeName is the emitted interface or struct name.
	TypeName string
	// ConstName is the emitted constant name. The go dialect converts it to
	// an exported camel-case identifier.
	ConstName string
	// GoPackage is the package clause of go output. Empty derives it from
	// the output directory.
	GoPackage string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		TypeName:  "Question",
		ConstName: "QUIZ_DATA",
	}
}

// Generator renders questions into source artifacts.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Output names one artifact to generate.
type Output struct {
	Dialect Dialect
	Path    string
}

// GeneratedFile represents a rendered artifact.
type GeneratedFile struct {
	// Filename is the path the file is written to.
	Filename string
	// Dialect is the format of Content.
	Dialect Dialect
	// Content is the rendered artifact.
	Content []byte
}

// Generate renders every output in order. Names are validated first so no
// artifact is rendered from a configuration that cannot compile.
func (g *Generator) Generate(outputs []Output, questions []quiz.Question) ([]GeneratedFile, error) {
	if err := g.Validate(outputs); err != nil {
		return nil, err
	}

	files := make([]GeneratedFile, 0, len(outputs))

	for _, out := range outputs {
		content, err := g.Emit(out.Dialect, questions, out.Path)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", out.Path, err)
		}

		files = append(files, GeneratedFile{
			Filename: out.Path,
			Dialect:  out.Dialect,
			Content:  content,
		})
	}

	return files, nil
}

// Emit renders questions in one dialect. path is only used to derive the go
// package name.
func (g *Generator) Emit(d Dialect, questions []quiz.Question, path string) ([]byte, error) {
	switch d {
	case DialectTypeScript:
		return g.emitTypeScript(questions)
	case DialectJSON:
		return encodeQuestions(questions)
	case DialectGo:
		pkg := g.config.GoPackage
		if pkg == "" {
			pkg = common.PkgName(filepath.Dir(path), "quizdata")
		}

		return g.emitGo(questions, pkg, path)
	default:
		return nil, fmt.Errorf("%w %s", ErrUnknownDialect, d)
	}
}

// encodeQuestions renders the 2-space indented array with non-ASCII
// (U+2028 and U+2029 included) and HTML characters left as they are. No
// trailing newline is written.
func encodeQuestions(questions []quiz.Question) ([]byte, error) {
	if questions == nil {
		questions = []quiz.Question{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(questions); err != nil {
		return nil, fmt.Errorf("encoding questions: %w", err)
	}

	return record.UnescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// exportedIdent turns QUIZ_DATA, quiz-data or quizData into QuizData.
// All-caps words are title-cased; mixed-case words keep their inner case.
func exportedIdent(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder

	for _, w := range words {
		runes := []rune(w)
		if strings.ToUpper(w) == w {
			runes = []rune(strings.ToLower(w))
		}

		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	out := b.String()
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		out = "X" + out
	}

	return out
}
