package gen

import (
	"bytes"
	"encoding/json"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-data-generator/internal/quiz"
)

func scenarioQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID:          1,
			Category:    "History",
			Difficulty:  "Easy",
			Question:    "Q?",
			Options:     quiz.Options{"A": "a", "B": "b", "C": "c", "D": "d"},
			Answer:      "A",
			Explanation: "because",
		},
	}
}

func TestEmit_TypeScriptScenario(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	out, err := g.Emit(DialectTypeScript, scenarioQuestions(), "src/utils/quizData.ts")
	require.NoError(t, err)

	expected := `export interface Question {
  id: number;
  category: string;
  difficulty: string;
  question: string;
  options: { [key: string]: string };
  answer: string;
  explanation: string;
}

export const QUIZ_DATA: Question[] = [
  {
    "id": 1,
    "category": "History",
    "difficulty": "Easy",
    "question": "Q?",
    "options": {
      "A": "a",
      "B": "b",
      "C": "c",
      "D": "d"
    },
    "answer": "A",
    "explanation": "because"
  }
];`
	assert.Equal(t, expected, string(out))
}

func TestEmit_TypeScriptLiteralIsJSON(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	questions := append(scenarioQuestions(), quiz.Question{
		ID:          2,
		Category:    "科學",
		Difficulty:  "難",
		Question:    `水的化學式是 "H2O" 嗎? <b>&</b>`,
		Options:     quiz.Options{"A": "是", "B": "否", "C": "不一定", "D": "以上皆非"},
		Answer:      "A",
		Explanation: "H₂O\n兩個氫一個氧",
	})

	out, err := g.Emit(DialectTypeScript, questions, "quizData.ts")
	require.NoError(t, err)

	header, err := g.TypeScriptHeader()
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, header))
	require.True(t, bytes.HasSuffix(out, []byte("];")))

	literal := bytes.TrimSuffix(bytes.TrimPrefix(out, header), []byte(";"))

	var decoded []quiz.Question
	require.NoError(t, json.Unmarshal(literal, &decoded), string(literal))
	assert.Equal(t, questions, decoded, spew.Sdump(decoded))

	assert.Contains(t, string(out), `"category": "科學"`)
	assert.Contains(t, string(out), `<b>&</b>`)
}

func TestEmit_CustomNames(t *testing.T) {
	g := NewGenerator(GeneratorConfig{TypeName: "QuizItem", ConstName: "ITEMS"})

	out, err := g.Emit(DialectTypeScript, nil, "items.ts")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "export interface QuizItem {\n"))
	assert.True(t, strings.HasSuffix(string(out), "export const ITEMS: QuizItem[] = [];"))
}

func TestEmit_JSON(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	out, err := g.Emit(DialectJSON, scenarioQuestions(), "quizData.json")
	require.NoError(t, err)

	var decoded []quiz.Question
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, scenarioQuestions(), decoded)
	assert.False(t, bytes.HasSuffix(out, []byte("\n")))
}

func TestEmit_Go(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	questions := append(scenarioQuestions(), quiz.Question{
		ID: 2, Category: "科學", Difficulty: "難", Question: "\"quoted\"\tq",
		Options: quiz.Options{"A": "是", "B": "否"}, Answer: "B", Explanation: "",
	})

	out, err := g.Emit(DialectGo, questions, filepath.Join("web", "quizdata", "quiz_data.go"))
	require.NoError(t, err)

	src := string(out)
	assert.True(t, strings.HasPrefix(src, "// Code generated by quiz-project. DO NOT EDIT.\n\npackage quizdata\n"))
	assert.Contains(t, src, "type Question struct {")
	assert.Contains(t, src, "var QuizData = []Question{")
	assert.Regexp(t, `Category:\s+"科學",`, src)
	assert.Regexp(t, `Question:\s+"\\"quoted\\"\\tq",`, src)
	assert.Contains(t, src, `"A": "a",`)

	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "quiz_data.go", out, parser.AllErrors)
	require.NoError(t, err, src)
}

func TestEmit_GoPackageOverride(t *testing.T) {
	g := NewGenerator(GeneratorConfig{TypeName: "Question", ConstName: "QUIZ_DATA", GoPackage: "fixtures"})

	out, err := g.Emit(DialectGo, nil, "whatever/x.go")
	require.NoError(t, err)
	assert.Contains(t, string(out), "package fixtures\n")
	assert.Contains(t, string(out), "var QuizData = []Question{")
}

func TestEmit_UnknownDialect(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	_, err := g.Emit(Dialect(0), nil, "x")
	require.ErrorIs(t, err, ErrUnknownDialect)
}

func TestGenerate_Idempotent(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	outputs := []Output{
		{Dialect: DialectTypeScript, Path: "src/utils/quizData.ts"},
		{Dialect: DialectJSON, Path: "quizData.json"},
		{Dialect: DialectGo, Path: "quizdata/quiz_data.go"},
	}

	first, err := g.Generate(outputs, scenarioQuestions())
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := g.Generate(outputs, scenarioQuestions())
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, outputs[i].Path, first[i].Filename)
		assert.Equal(t, outputs[i].Dialect, first[i].Dialect)
		assert.Equal(t, first[i].Content, second[i].Content)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{
		{Filename: filepath.Join("src", "utils", "quizData.ts"), Content: []byte("old")},
	}

	require.NoError(t, WriteFiles(files, dir))

	files[0].Content = []byte("new")
	require.NoError(t, WriteFiles(files, dir))

	data, err := os.ReadFile(filepath.Join(dir, "src", "utils", "quizData.ts"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestExportedIdent(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"QUIZ_DATA", "QuizData"},
		{"quiz-data", "QuizData"},
		{"quizData", "QuizData"},
		{"QuizQuestion", "QuizQuestion"},
		{"Question", "Question"},
		{"2024_QUIZ", "X2024Quiz"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, exportedIdent(tt.in))
		})
	}
}

func TestEmit_GoFormatFailureWritesSidecar(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(GeneratorConfig{TypeName: "Question", ConstName: "***"})

	_, err := g.Emit(DialectGo, scenarioQuestions(), filepath.Join(dir, "quizdata", "quiz_data.go"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formatting code")

	sidecar, err := os.ReadFile(filepath.Join(dir, "quizdata", "quiz_data.unformatted.go"))
	require.NoError(t, err)
	assert.Contains(t, string(sidecar), "var  = []Question{")
	assert.NoFileExists(t, filepath.Join(dir, "quizdata", "quiz_data.go"))
}

func TestEmit_TypeScriptKeepsLineSeparatorsRaw(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	questions := scenarioQuestions()
	questions[0].Explanation = "first\u2028second\u2029third"

	out, err := g.Emit(DialectTypeScript, questions, "quizData.ts")
	require.NoError(t, err)
	assert.Contains(t, string(out), "\"explanation\": \"first\u2028second\u2029third\"")
	assert.NotContains(t, string(out), `\u2028`)

	header, err := g.TypeScriptHeader()
	require.NoError(t, err)

	var decoded []quiz.Question
	literal := bytes.TrimSuffix(bytes.TrimPrefix(out, header), []byte(";"))
	require.NoError(t, json.Unmarshal(literal, &decoded))
	assert.Equal(t, questions, decoded)
}
