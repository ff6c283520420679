package project

import (
	"fmt"

	"go.uber.org/zap"

	"quiz-data-generator/internal/config"
	"quiz-data-generator/internal/diagnostic"
	"quiz-data-generator/internal/gen"
	"quiz-data-generator/internal/mapping"
	"quiz-data-generator/internal/record"
)

// Result summarizes a projector run.
type Result struct {
	Input     string
	Questions int
	Outputs   []string
	Warnings  int
}

// Run loads the mapping and the intermediate records, projects them and
// overwrites every configured output. Nothing is written when any record
// fails to decode.
func Run(cfg config.Project, log *zap.Logger) (Result, error) {
	res := Result{Input: cfg.Input}

	outputs, err := parseOutputs(cfg.Outputs)
	if err != nil {
		return res, err
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		TypeName:  cfg.TypeName,
		ConstName: cfg.ConstName,
		GoPackage: cfg.GoPackage,
	})
	if err := g.Validate(outputs); err != nil {
		return res, err
	}

	table, err := LoadTable(cfg.MappingFile, log)
	if err != nil {
		return res, err
	}

	records, err := record.LoadFile(cfg.Input)
	if err != nil {
		return res, err
	}

	log.Info("records loaded", zap.String("input", cfg.Input), zap.Int("records", len(records)))

	if len(records) == 0 {
		log.Warn("no records to project", zap.String("input", cfg.Input))
	}

	questions, diags := Project(records, table, Options{Strict: cfg.Strict})
	logDiagnostics(log, diags)

	res.Warnings = len(diags.Warnings)

	if err := diags.Err(); err != nil {
		return res, fmt.Errorf("decoding %s: %w", cfg.Input, err)
	}

	files, err := g.Generate(outputs, questions)
	if err != nil {
		return res, err
	}

	if err := gen.WriteFiles(files, ""); err != nil {
		return res, err
	}

	for _, f := range files {
		res.Outputs = append(res.Outputs, f.Filename)
		log.Debug("artifact written", zap.String("path", f.Filename), zap.Stringer("dialect", f.Dialect))
	}

	res.Questions = len(questions)

	return res, nil
}

// LoadTable loads the mapping at path, or the built-in one when path is
// empty, and compiles it.
func LoadTable(path string, log *zap.Logger) (*mapping.Table, error) {
	mf, err := mapping.Load(path)
	if err != nil {
		return nil, err
	}

	table, diags := mapping.Compile(mf)
	logDiagnostics(log, diags)

	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("invalid mapping: %w", err)
	}

	return table, nil
}

func parseOutputs(in []config.Output) ([]gen.Output, error) {
	outputs := make([]gen.Output, 0, len(in))

	for _, o := range in {
		d, err := gen.ParseDialect(o.Dialect)
		if err != nil {
			return nil, fmt.Errorf("output %s: %w", o.Path, err)
		}

		outputs = append(outputs, gen.Output{Dialect: d, Path: o.Path})
	}

	return outputs, nil
}

// logDiagnostics reports warnings and infos. Errors are returned to the
// caller instead.
func logDiagnostics(log *zap.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		log.Warn(d.Message, diagnosticFields(d)...)
	}

	for _, d := range diags.Infos {
		log.Info(d.Message, diagnosticFields(d)...)
	}
}

func diagnosticFields(d diagnostic.Diagnostic) []zap.Field {
	fields := []zap.Field{zap.String("code", d.Code)}
	if d.Row != diagnostic.NoRow {
		fields = append(fields, zap.Int("row", d.Row))
	}

	if d.Field != "" {
		fields = append(fields, zap.String("field", d.Field))
	}

	return fields
}
