package mapping

import (
	"cmp"
	"fmt"
	"slices"

	"quiz-data-generator/internal/diagnostic"
	"quiz-data-generator/internal/match"
	"quiz-data-generator/internal/quiz"
	"quiz-data-generator/internal/record"
)

// MinOptions is the smallest number of options a mapping may declare.
const MinOptions = 2

// Compile validates a mapping file and builds the ordered rule table.
// The returned table is nil when the diagnostics hold errors.
func Compile(mf *MappingFile) (*Table, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", diagnostic.NoRow, "")
		return nil, res
	}

	if mf.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("mapping version %q is not supported (want %q)", mf.Version, CurrentVersion),
			diagnostic.NoRow, "version")
	}

	table := &Table{Ignore: slices.Clone(mf.Ignore)}
	seen := map[Target]struct{}{}

	for _, fm := range Normalize(mf) {
		rule, ok := compileField(res, fm)
		if !ok {
			continue
		}

		if _, dup := seen[rule.Target]; dup {
			res.AddError("duplicate_target",
				fmt.Sprintf("target %q is mapped more than once", rule.Target), diagnostic.NoRow, rule.Target.String())
			continue
		}

		seen[rule.Target] = struct{}{}
		table.Rules = append(table.Rules, rule)
	}

	for _, f := range ScalarFields {
		if _, ok := seen[Target{Field: f}]; !ok {
			res.AddError("missing_target",
				fmt.Sprintf("no column is mapped to %q", f), diagnostic.NoRow, f.String())
		}
	}

	if n := len(table.OptionLetters()); n < MinOptions {
		res.AddError("too_few_options",
			fmt.Sprintf("%d option(s) mapped, at least %d required", n, MinOptions), diagnostic.NoRow, "options")
	}

	for _, ig := range mf.Ignore {
		for _, r := range table.Rules {
			if slices.Contains(r.Sources, ig) {
				res.AddWarning("ignored_source_used",
					fmt.Sprintf("column %q is ignored but also mapped to %q", ig, r.Target), diagnostic.NoRow, ig)
			}
		}
	}

	if res.HasErrors() {
		return nil, res
	}

	slices.SortStableFunc(table.Rules, func(a, b Rule) int {
		return cmp.Or(
			cmp.Compare(a.Target.Field, b.Target.Field),
			cmp.Compare(a.Target.Option, b.Target.Option),
		)
	})

	return table, res
}

// compileField validates a single field mapping.
func compileField(res *diagnostic.Diagnostics, fm FieldMapping) (Rule, bool) {
	target, err := ParseTarget(fm.Target)
	if err != nil {
		res.AddError("invalid_target", err.Error(), diagnostic.NoRow, fm.Target,
			match.Suggest(fm.Target, KnownTargets(), 2)...)

		return Rule{}, false
	}

	ok := true

	if fm.Source.IsEmpty() {
		res.AddError("empty_source", fmt.Sprintf("target %q has no source column", target), diagnostic.NoRow, target.String())
		ok = false
	}

	for _, src := range fm.Source {
		if src == "" {
			res.AddError("empty_source", fmt.Sprintf("target %q lists an empty column name", target),
				diagnostic.NoRow, target.String())

			ok = false
		}
	}

	if fm.Default != nil && target.Field.IsInteger() {
		if _, err := quiz.ToInt(record.Text(*fm.Default)); err != nil {
			res.AddError("invalid_default",
				fmt.Sprintf("default %q for %q: %v", *fm.Default, target, err), diagnostic.NoRow, target.String())

			ok = false
		}
	}

	return Rule{Target: target, Sources: []string(fm.Source), Default: fm.Default}, ok
}
