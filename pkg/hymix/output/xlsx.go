package output

import (
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ResultSheet is the sheet name used for exported tables.
const ResultSheet = "Result"

// WriteXLSX writes rows to w as a single-sheet workbook. Numeric strings are
// stored as numbers.
func WriteXLSX(w io.Writer, rows [][]string) error {
	f, err := buildWorkbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// SaveXLSX writes rows to a workbook file at path.
func SaveXLSX(path string, rows [][]string) error {
	f, err := buildWorkbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

func buildWorkbook(rows [][]string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), ResultSheet); err != nil {
		f.Close()
		return nil, err
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := make([]interface{}, len(row))
		for c, s := range row {
			values[c] = parseValue(s)
		}
		if err := f.SetSheetRow(ResultSheet, cell, &values); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
