package extract

import (
	"fmt"
	"strings"

	"quiz-data-generator/internal/match"
	"quiz-data-generator/internal/record"
)

// CellKind is the storage type of a spreadsheet cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
	CellBool
)

// CellTyper reports the kind of the cell at a 0-based column and a 1-based
// sheet row.
type CellTyper func(col, row int) CellKind

// Headers builds unique record keys from the header row. Blank headers
// become "Unnamed: <index>" and repeated names get ".1", ".2" suffixes.
func Headers(row []string, width int) []string {
	keys := make([]string, width)
	taken := make(map[string]bool, width)
	suffix := make(map[string]int)

	for i := range width {
		name := ""
		if i < len(row) {
			name = match.CleanHeader(row[i])
		}

		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		key := name
		for taken[key] {
			suffix[name]++
			key = fmt.Sprintf("%s.%d", name, suffix[name])
		}

		taken[key] = true
		keys[i] = key
	}

	return keys
}

// Records converts raw sheet rows into records. rows[0] is the header row;
// rows[i] is sheet row i+1. Rows whose cells are all empty are skipped.
func Records(rows [][]string, typeOf CellTyper) ([]record.Record, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}

	keys := Headers(rows[0], width)
	records := make([]record.Record, 0, len(rows)-1)

	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		sheetRow := i + 2
		rec := record.Record{Fields: make([]record.Field, 0, width)}

		for col, key := range keys {
			raw := ""
			if col < len(row) {
				raw = row[col]
			}

			v, err := cellValue(raw, typeOf(col, sheetRow))
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", sheetRow, key, err)
			}

			rec.Fields = append(rec.Fields, record.Field{Key: key, Value: v})
		}

		records = append(records, rec)
	}

	return records, nil
}

func cellValue(raw string, kind CellKind) (record.Value, error) {
	if raw == "" {
		return record.Null(), nil
	}

	switch kind {
	case CellNumber:
		v, err := record.ParseNumber(raw)
		if err != nil {
			// Numeric-looking cells that fail to parse are kept as written.
			return record.Text(raw), nil
		}

		return v, nil
	case CellBool:
		return record.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case CellEmpty, CellText:
		return record.Text(raw), nil
	default:
		return record.Value{}, fmt.Errorf("unknown cell kind %d", kind)
	}
}

// isBlank reports whether every cell of row is empty. Cells holding only
// whitespace are values, so such rows are kept.
func isBlank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}

	return true
}
