package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"quiz-data-generator/internal/config"
	"quiz-data-generator/internal/mapping"
)

var questionHeader = []any{"編號", "類別", "難度", "題目", "選項A", "選項B", "選項C", "選項D", "正確答案", "解析"}

// inTempDir switches the working directory to a fresh temp dir, where the
// default file locations resolve.
func inTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	return dir
}

func writeWorkbook(t *testing.T, path string, rows ...[]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
}

func run(t *testing.T, fn func(args []string, stdout, stderr *bytes.Buffer) int, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := fn(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func extractCmd(args []string, stdout, stderr *bytes.Buffer) int { return RunExtract(args, stdout, stderr) }
func projectCmd(args []string, stdout, stderr *bytes.Buffer) int { return RunProject(args, stdout, stderr) }
func rootCmd(args []string, stdout, stderr *bytes.Buffer) int    { return Run(args, stdout, stderr) }

const scenarioTS = `export interface Question {
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

func TestPipeline_Scenario(t *testing.T) {
	inTempDir(t)
	writeWorkbook(t, config.DefaultWorkbook, questionHeader,
		[]any{1, "History", "Easy", "Q?", "a", "b", "c", "d", "A", "because"})

	code, stdout, stderr := run(t, extractCmd)
	require.Equal(t, ExitOK, code, stderr)
	assert.Empty(t, stderr)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
	assert.True(t, strings.HasPrefix(stdout, "Success: wrote 1 records"), stdout)

	intermediate, err := os.ReadFile(config.DefaultRecordsFile)
	require.NoError(t, err)
	assert.Contains(t, string(intermediate), `"類別": "History"`)
	assert.Contains(t, string(intermediate), `"編號": 1,`)

	code, stdout, stderr = run(t, projectCmd)
	require.Equal(t, ExitOK, code, stderr)
	assert.Empty(t, stderr)
	assert.Equal(t, "Success: wrote 1 questions to "+config.DefaultQuizDataFile+"\n", stdout)

	out, err := os.ReadFile(config.DefaultQuizDataFile)
	require.NoError(t, err)
	assert.Equal(t, scenarioTS, string(out))
}

func TestPipeline_RerunIsByteIdentical(t *testing.T) {
	inTempDir(t)
	writeWorkbook(t, config.DefaultWorkbook, questionHeader,
		[]any{1, "歷史", "易", "第一題?", "甲", "乙", "丙", "丁", "B", "說明"},
		[]any{2, "科學", "難", "第二題?", "1", "2", "3", "4", "D", "見課本"},
	)

	read := func() (string, string) {
		code, _, stderr := run(t, extractCmd)
		require.Equal(t, ExitOK, code, stderr)
		code, _, stderr = run(t, projectCmd)
		require.Equal(t, ExitOK, code, stderr)

		intermediate, err := os.ReadFile(config.DefaultRecordsFile)
		require.NoError(t, err)
		final, err := os.ReadFile(config.DefaultQuizDataFile)
		require.NoError(t, err)

		return string(intermediate), string(final)
	}

	firstJSON, firstTS := read()
	secondJSON, secondTS := read()

	assert.Equal(t, firstJSON, secondJSON)
	assert.Equal(t, firstTS, secondTS)
	assert.Contains(t, firstTS, `"question": "第二題?"`)
}

func TestExtract_MissingWorkbook(t *testing.T) {
	inTempDir(t)

	code, stdout, stderr := run(t, extractCmd)
	assert.Equal(t, ExitError, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Error: "), stderr)
	assert.Equal(t, 1, strings.Count(stderr, "\n"), stderr)
	assert.NoFileExists(t, config.DefaultRecordsFile)
}

func TestExtract_FlagOverrides(t *testing.T) {
	dir := inTempDir(t)
	writeWorkbook(t, filepath.Join(dir, "bank.xlsx"), questionHeader,
		[]any{1, "History", "Easy", "Q?", "a", "b", "c", "d", "A", "because"})

	code, stdout, stderr := run(t, extractCmd, "-input", "bank.xlsx", "-output", "out/records.json")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stdout, "out/records.json")
	assert.FileExists(t, filepath.Join(dir, "out", "records.json"))
}

func TestExtract_UnknownSheet(t *testing.T) {
	inTempDir(t)
	writeWorkbook(t, config.DefaultWorkbook, questionHeader)

	code, _, stderr := run(t, extractCmd, "-sheet", "Nope")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "Nope")
}

func TestProject_MissingColumnFails(t *testing.T) {
	inTempDir(t)
	header := []any{"編號", "類別", "難度", "題目", "選項A", "選項B", "選項C", "正確答案", "解析"}
	writeWorkbook(t, config.DefaultWorkbook, header,
		[]any{1, "History", "Easy", "Q?", "a", "b", "c", "A", "because"})

	code, _, stderr := run(t, extractCmd)
	require.Equal(t, ExitOK, code, stderr)

	code, stdout, stderr := run(t, projectCmd)
	assert.Equal(t, ExitError, code)
	assert.Empty(t, stdout)
	assert.Equal(t, 1, strings.Count(stderr, "\n"), stderr)
	assert.True(t, strings.HasPrefix(stderr, "Error: "), stderr)
	assert.Contains(t, stderr, "row 0 選項D: [missing_field]")
	assert.NoFileExists(t, config.DefaultQuizDataFile)
}

func TestProject_MissingInput(t *testing.T) {
	inTempDir(t)

	code, _, stderr := run(t, projectCmd)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, config.DefaultRecordsFile)
}

func TestProject_StrictFlag(t *testing.T) {
	inTempDir(t)
	writeWorkbook(t, config.DefaultWorkbook, questionHeader,
		[]any{1, "History", "Easy", "Q?", "a", "b", "c", "d", "E", "because"})

	code, _, stderr := run(t, extractCmd)
	require.Equal(t, ExitOK, code, stderr)

	code, _, stderr = run(t, projectCmd)
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stderr, "answer_not_option")

	code, _, stderr = run(t, projectCmd, "-strict")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "Error: ")
	assert.Contains(t, stderr, "answer_not_option")
}

func TestProject_ConfigFile(t *testing.T) {
	dir := inTempDir(t)
	writeWorkbook(t, config.DefaultWorkbook, questionHeader,
		[]any{1, "History", "Easy", "Q?", "a", "b", "c", "d", "A", "because"})

	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
project:
  const_name: QUESTIONS
  outputs:
    - dialect: typescript
      path: web/questions.ts
    - dialect: go
      path: internal/quizdata/quiz_data.go
`), 0o644))

	code, _, stderr := run(t, extractCmd, "-config", cfgPath)
	require.Equal(t, ExitOK, code, stderr)

	code, stdout, stderr := run(t, projectCmd, "-config", cfgPath)
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stdout, "web/questions.ts, internal/quizdata/quiz_data.go")

	ts, err := os.ReadFile(filepath.Join(dir, "web", "questions.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(ts), "export const QUESTIONS: Question[] = [")

	goSrc, err := os.ReadFile(filepath.Join(dir, "internal", "quizdata", "quiz_data.go"))
	require.NoError(t, err)
	assert.Contains(t, string(goSrc), "package quizdata")
	assert.Contains(t, string(goSrc), "var Questions = []Question{")
}

func TestProject_PrintMapping(t *testing.T) {
	inTempDir(t)

	code, stdout, stderr := run(t, projectCmd, "-print-mapping")
	require.Equal(t, ExitOK, code, stderr)

	mf, err := mapping.Parse([]byte(stdout))
	require.NoError(t, err)
	assert.Empty(t, mf.OneToOne)
	assert.Len(t, mf.Fields, 10)

	_, diags := mapping.Compile(mf)
	assert.True(t, diags.IsValid(), diags.Errors)
}

func TestProject_InvalidConfig(t *testing.T) {
	dir := inTempDir(t)
	cfgPath := filepath.Join(dir, "quizgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("project:\n  outputs:\n    - dialect: typescript\n"), 0o644))

	code, _, stderr := run(t, projectCmd)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "invalid configuration")
}

func TestRun_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{name: "no args", args: nil, code: ExitUsage, contains: "Commands:"},
		{name: "help", args: []string{"--help"}, code: ExitOK, contains: "extract"},
		{name: "unknown", args: []string{"bogus"}, code: ExitUsage, contains: "Unknown command: bogus"},
		{name: "command help", args: []string{"project", "-h"}, code: ExitOK, contains: "-print-mapping"},
		{name: "bad flag", args: []string{"extract", "-nope"}, code: ExitUsage, contains: "invalid arguments"},
		{name: "stray argument", args: []string{"extract", "extra"}, code: ExitUsage, contains: "unexpected arguments: extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)

			code, stdout, stderr := run(t, rootCmd, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stdout+stderr, tt.contains)
		})
	}
}

func TestExtract_IgnoresProjectSettings(t *testing.T) {
	inTempDir(t)
	writeWorkbook(t, config.DefaultWorkbook, questionHeader,
		[]any{1, "History", "Easy", "Q?", "a", "b", "c", "d", "A", "because"})
	require.NoError(t, os.WriteFile("quizgen.yaml",
		[]byte("project:\n  outputs:\n    - dialect: typescript\n"), 0o644))

	code, stdout, stderr := run(t, extractCmd)
	require.Equal(t, ExitOK, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "Success: "), stdout)

	code, _, stderr = run(t, projectCmd)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "project.outputs[0] needs dialect and path")
}

func TestExtract_FlagFixesConfigValue(t *testing.T) {
	dir := inTempDir(t)
	writeWorkbook(t, filepath.Join(dir, "bank.xlsx"), questionHeader,
		[]any{1, "History", "Easy", "Q?", "a", "b", "c", "d", "A", "because"})
	require.NoError(t, os.WriteFile("quizgen.yaml", []byte("extract:\n  input: \"\"\n"), 0o644))

	code, _, stderr := run(t, extractCmd)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "extract.input is empty")

	code, _, stderr = run(t, extractCmd, "-input", "bank.xlsx")
	require.Equal(t, ExitOK, code, stderr)
	assert.FileExists(t, config.DefaultRecordsFile)
}

func TestProject_RejectsInvalidNames(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		contains string
	}{
		{
			name:     "empty const name",
			config:   "project:\n  const_name: \"\"\n",
			contains: "project.const_name is empty",
		},
		{
			name:     "type name with space",
			config:   "project:\n  type_name: my type\n",
			contains: "invalid name",
		},
		{
			name: "go names collide",
			config: "project:\n  type_name: QuizData\n  outputs:\n" +
				"    - dialect: go\n      path: quizdata/quiz_data.go\n",
			contains: "invalid name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)
			writeWorkbook(t, config.DefaultWorkbook, questionHeader,
				[]any{1, "History", "Easy", "Q?", "a", "b", "c", "d", "A", "because"})

			code, _, stderr := run(t, extractCmd)
			require.Equal(t, ExitOK, code, stderr)

			require.NoError(t, os.WriteFile("quizgen.yaml", []byte(tt.config), 0o644))

			code, stdout, stderr := run(t, projectCmd)
			assert.Equal(t, ExitError, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.contains)
			assert.NoFileExists(t, config.DefaultQuizDataFile)
			assert.NoFileExists(t, filepath.Join("quizdata", "quiz_data.go"))
		})
	}
}
