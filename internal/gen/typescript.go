package gen

import (
	"bytes"
	"text/template"

	"quiz-data-generator/internal/quiz"
)

var typeScriptHeader = template.Must(template.New("ts_header").Parse(`export interface {{.TypeName}} {
  id: number;
  category: string;
  difficulty: string;
  question: string;
  options: { [key: string]: string };
  answer: string;
  explanation: string;
}

export const {{.ConstName}}: {{.TypeName}}[] = `))

// TypeScriptHeader returns the declaration block that precedes the array
// literal, including the trailing "= ".
func (g *Generator) TypeScriptHeader() ([]byte, error) {
	var buf bytes.Buffer
	if err := typeScriptHeader.Execute(&buf, g.config); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (g *Generator) emitTypeScript(questions []quiz.Question) ([]byte, error) {
	header, err := g.TypeScriptHeader()
	if err != nil {
		return nil, err
	}

	body, err := encodeQuestions(questions)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(header)+len(body)+1)
	out = append(out, header...)
	out = append(out, body...)

	return append(out, ';'), nil
}
