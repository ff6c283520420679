// Package extract reads a workbook sheet and converts each data row into a
// Raw Record keyed by the header row.
//
// Cell typing follows the spreadsheet's own cell types rather than the
// displayed text: numeric cells become numbers, boolean cells become bools,
// empty cells become null and everything else is text.
package extract
