// Package diagnostic provides structured warnings and errors produced while
// validating mapping files and decoding raw records into questions.
//
// Key capabilities:
//   - Missing or empty field errors naming the row and the column
//   - Coercion failures (non-integral ids, unsupported values)
//   - Integrity warnings (answer not an option, duplicate ids)
//   - "did you mean" suggestions for misspelled columns
package diagnostic
