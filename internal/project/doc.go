// Package project maps Raw Records onto canonical Questions using a
// compiled mapping table and writes the configured artifacts.
//
// Decoding is validated: every row is checked before the run fails, and
// each missing, empty or uncoercible field becomes a diagnostic naming the
// row index and the source column. No artifact is written while any error
// diagnostic exists.
package project
