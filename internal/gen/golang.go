package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"quiz-data-generator/internal/quiz"
)

type goTemplateData struct {
	Package   string
	TypeName  string
	VarName   string
	Questions []quiz.Question
}

var goTemplate = template.Must(
	template.New("go_literal").
		Funcs(template.FuncMap{"quote": strconv.Quote}).
		Parse(`// Code generated by quiz-project. DO NOT EDIT.

package {{.Package}}

// {{.TypeName}} is one quiz question.
type {{.TypeName}} struct {
	ID int ` + "`json:\"id\"`" + `
	Category string ` + "`json:\"category\"`" + `
	Difficulty string ` + "`json:\"difficulty\"`" + `
	Question string ` + "`json:\"question\"`" + `
	Options map[string]string ` + "`json:\"options\"`" + `
	Answer string ` + "`json:\"answer\"`" + `
	Explanation string ` + "`json:\"explanation\"`" + `
}

// {{.VarName}} holds every question in source order.
var {{.VarName}} = []{{.TypeName}}{
{{- range .Questions}}
	{
		ID: {{.ID}},
		Category: {{quote .Category}},
		Difficulty: {{quote .Difficulty}},
		Question: {{quote .Question}},
		Options: map[string]string{
		{{- range $k, $v := .Options}}
			{{quote $k}}: {{quote $v}},
		{{- end}}
		},
		Answer: {{quote .Answer}},
		Explanation: {{quote .Explanation}},
	},
{{- end}}
}
`))

func (g *Generator) emitGo(questions []quiz.Question, pkg, path string) ([]byte, error) {
	data := goTemplateData{
		Package:   pkg,
		TypeName:  exportedIdent(g.config.TypeName),
		VarName:   exportedIdent(g.config.ConstName),
		Questions: questions,
	}

	var buf bytes.Buffer
	if err := goTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(path, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		err = fmt.Errorf("formatting code: %w", err)
		if werr := writeUnformatted(path, buf.Bytes()); werr != nil {
			err = errors.Join(err, fmt.Errorf("writing unformatted sidecar: %w", werr))
		}

		return nil, err
	}

	return formatted, nil
}

// writeUnformatted keeps the rejected source next to the intended output as
// <name>.unformatted.go.
func writeUnformatted(path string, content []byte) error {
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}

	return os.WriteFile(strings.TrimSuffix(path, ".go")+".unformatted.go", content, filePerm)
}
