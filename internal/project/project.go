package project

import (
	"fmt"
	"slices"

	"quiz-data-generator/internal/diagnostic"
	"quiz-data-generator/internal/mapping"
	"quiz-data-generator/internal/match"
	"quiz-data-generator/internal/quiz"
	"quiz-data-generator/internal/record"
)

// Diagnostic codes produced while projecting records.
const (
	CodeMissingField    = "missing_field"
	CodeEmptyField      = "empty_field"
	CodeInvalidID       = "invalid_id"
	CodeInvalidValue    = "invalid_value"
	CodeAnswerNotOption = "answer_not_option"
	CodeDuplicateID     = "duplicate_id"
	CodeUnusedColumn    = "unused_column"
	CodeFoldedColumn    = "folded_column"
)

// maxSuggestions bounds the "did you mean" list of a missing field.
const maxSuggestions = 2

// Options tune projection.
type Options struct {
	// Strict turns integrity warnings into errors.
	Strict bool
}

// Project converts records into questions. The questions slice always has
// one entry per record; it must not be used when the diagnostics hold errors.
func Project(records []record.Record, table *mapping.Table, opts Options) ([]quiz.Question, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	questions := make([]quiz.Question, 0, len(records))
	known := table.Sources()
	firstRow := map[int]int{}

	for row, rec := range records {
		before := len(diags.Errors)
		q := decode(diags, row, rec, table, known)

		if len(diags.Errors) == before {
			checkIntegrity(diags, row, q, firstRow)
		}

		questions = append(questions, q)
	}

	reportUnused(diags, records, known)

	if opts.Strict {
		diags.Escalate()
	}

	return questions, diags
}

// decode fills one question from one record following the table's rules.
func decode(
	diags *diagnostic.Diagnostics,
	row int,
	rec record.Record,
	table *mapping.Table,
	known []string,
) quiz.Question {
	q := quiz.Question{Options: quiz.Options{}}

	for _, rule := range table.Rules {
		v, key, ok := lookup(diags, row, rec, rule, known)
		if !ok {
			continue
		}

		if rule.Target.Field.IsInteger() {
			n, err := quiz.ToInt(v)
			if err != nil {
				diags.AddError(CodeInvalidID, fmt.Sprintf("cannot use %s as %s: %v", describe(v), rule.Target, err), row, key)
				continue
			}

			q.ID = n

			continue
		}

		s, err := quiz.ToText(v)
		if err != nil {
			diags.AddError(CodeInvalidValue, fmt.Sprintf("cannot use %s as %s: %v", describe(v), rule.Target, err), row, key)
			continue
		}

		assign(&q, rule.Target, s)
	}

	return q
}

// lookup finds the value for rule in rec. The first source column holding a
// value wins; a column whose name differs only in width, case or spacing is
// accepted as a fallback. Defaults apply when nothing holds a value.
func lookup(
	diags *diagnostic.Diagnostics,
	row int,
	rec record.Record,
	rule mapping.Rule,
	known []string,
) (record.Value, string, bool) {
	present := ""

	for _, src := range rule.Sources {
		key := src

		v, ok := rec.Get(src)
		if !ok {
			folded, found := match.Find(src, unclaimed(rec.Keys(), known))
			if !found {
				continue
			}

			if row == 0 {
				diags.AddInfo(CodeFoldedColumn, fmt.Sprintf("column %q used for %q", folded, src), diagnostic.NoRow, src)
			}

			key = folded
			v, _ = rec.Get(folded)
		}

		if present == "" {
			present = key
		}

		if !v.IsNull() {
			return v, key, true
		}
	}

	if rule.Default != nil {
		return record.Text(*rule.Default), rule.Sources[0], true
	}

	if present != "" {
		diags.AddError(CodeEmptyField, fmt.Sprintf("no value for %s", rule.Target), row, present)
		return record.Value{}, "", false
	}

	diags.AddError(CodeMissingField, fmt.Sprintf("column is missing (needed for %s)", rule.Target), row, rule.Sources[0],
		match.Suggest(rule.Sources[0], unclaimed(rec.Keys(), known), maxSuggestions)...)

	return record.Value{}, "", false
}

// unclaimed returns the record keys no rule or ignore entry names exactly.
func unclaimed(keys, known []string) []string {
	return slices.DeleteFunc(slices.Clone(keys), func(k string) bool {
		return slices.Contains(known, k)
	})
}

func assign(q *quiz.Question, t mapping.Target, s string) {
	switch t.Field {
	case mapping.FieldCategory:
		q.Category = s
	case mapping.FieldDifficulty:
		q.Difficulty = s
	case mapping.FieldQuestion:
		q.Question = s
	case mapping.FieldOption:
		q.Options[t.Option] = s
	case mapping.FieldAnswer:
		q.Answer = s
	case mapping.FieldExplanation:
		q.Explanation = s
	}
}

// checkIntegrity reports answers that are not option keys and reused ids.
func checkIntegrity(diags *diagnostic.Diagnostics, row int, q quiz.Question, firstRow map[int]int) {
	if q.Answer != "" && len(q.Options) > 0 && !q.Options.Has(q.Answer) {
		diags.AddWarning(CodeAnswerNotOption,
			fmt.Sprintf("answer %q is not one of %q", q.Answer, q.Options.Letters()), row, "answer")
	}

	if prev, dup := firstRow[q.ID]; dup {
		diags.AddWarning(CodeDuplicateID, fmt.Sprintf("id %d already used by row %d", q.ID, prev), row, "id")
		return
	}

	firstRow[q.ID] = row
}

// reportUnused lists columns of the first record that nothing consumes.
func reportUnused(diags *diagnostic.Diagnostics, records []record.Record, known []string) {
	if len(records) == 0 {
		return
	}

	for _, key := range unclaimed(records[0].Keys(), known) {
		if _, ok := match.Find(key, known); ok {
			continue
		}

		diags.AddInfo(CodeUnusedColumn, fmt.Sprintf("column %q is not mapped", key), diagnostic.NoRow, key)
	}
}

func describe(v record.Value) string {
	switch v.Kind {
	case record.KindNumber:
		return "number " + v.Num.String()
	case record.KindText:
		return fmt.Sprintf("text %q", v.Text)
	default:
		return v.Kind.String()
	}
}
