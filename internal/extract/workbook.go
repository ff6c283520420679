package extract

import (
	"errors"
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"quiz-data-generator/internal/config"
	"quiz-data-generator/internal/record"
)

var (
	// ErrEmptySheet is returned when the sheet has no header row.
	ErrEmptySheet = errors.New("sheet has no header row")
	// ErrSheetNotFound is returned when the configured sheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
)

// Result summarizes an extractor run.
type Result struct {
	Input   string
	Sheet   string
	Output  string
	Records int
}

// Run reads the configured workbook and overwrites the intermediate JSON file.
func Run(cfg config.Extract, log *zap.Logger) (Result, error) {
	res := Result{Input: cfg.Input, Output: cfg.Output}

	records, sheet, err := ReadWorkbook(cfg.Input, cfg.Sheet)
	if err != nil {
		return res, err
	}

	res.Sheet = sheet
	res.Records = len(records)

	log.Info("workbook read",
		zap.String("input", cfg.Input),
		zap.String("sheet", sheet),
		zap.Int("records", len(records)),
	)

	if len(records) == 0 {
		log.Warn("sheet has a header row but no data rows", zap.String("sheet", sheet))
	}

	if err := record.WriteFile(cfg.Output, records); err != nil {
		return res, err
	}

	log.Debug("records written", zap.String("output", cfg.Output))

	return res, nil
}

// ReadWorkbook opens the workbook at path and converts the named sheet, or
// the first sheet when name is empty, into records. The chosen sheet name is
// returned alongside.
func ReadWorkbook(path, name string) ([]record.Record, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet, err := pickSheet(f, name)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, sheet, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	records, err := Records(rows, func(col, row int) CellKind {
		return cellKind(f, sheet, col, row)
	})
	if err != nil {
		return nil, sheet, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	return records, sheet, nil
}

func pickSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrSheetNotFound
	}

	if name == "" {
		return sheets[0], nil
	}

	if !slices.Contains(sheets, name) {
		return "", fmt.Errorf("%w: %q (have %q)", ErrSheetNotFound, name, sheets)
	}

	return name, nil
}

// cellKind maps excelize cell types onto CellKind. Plain numeric cells carry
// no type attribute in the file and report CellTypeUnset.
func cellKind(f *excelize.File, sheet string, col, row int) CellKind {
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return CellText
	}

	t, err := f.GetCellType(sheet, cell)
	if err != nil {
		return CellText
	}

	switch t {
	case excelize.CellTypeBool:
		return CellBool
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return CellNumber
	default:
		return CellText
	}
}
