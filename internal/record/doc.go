// Package record defines the Raw Record: one spreadsheet row as an ordered
// list of column/value pairs, and the intermediate JSON artifact that holds
// a sequence of them.
//
// Records keep column order when written so the intermediate file reads in
// the same order as the spreadsheet and two runs over the same workbook
// produce byte-identical output.
package record
