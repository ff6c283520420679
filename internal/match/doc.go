// Package match provides column-name normalization, Levenshtein distance
// and "did you mean" ranking for spreadsheet headers.
//
// Key functions:
//   - NormalizeKey: folds width, case and separators of a column name
//   - Levenshtein: computes rune-level edit distance between strings
//   - Suggest: ranks known columns that look like a missing one
package match
