// Package parser reads mixing workbooks: sheets, coefficient rows and sample rows.
package parser

import (
	"github.com/ukaji3/hymix-go/pkg/hymix/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheets reads every sheet of f as raw string rows, in workbook order.
func ReadSheets(f *excelize.File) ([]models.Sheet, error) {
	var sheets []models.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := ReadRows(f, name)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, models.Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}

// ReadRows returns the unformatted cell values of a sheet. Trailing empty
// cells of each row are omitted by excelize, so rows may be ragged.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// DescribeSheets summarises each sheet for listing.
func DescribeSheets(sheets []models.Sheet) []models.SheetInfo {
	infos := make([]models.SheetInfo, 0, len(sheets))
	for i, s := range sheets {
		infos = append(infos, models.SheetInfo{
			Index:     i,
			Name:      s.Name,
			Rows:      len(s.Rows),
			DataRange: DataRange(s.Rows),
		})
	}
	return infos
}
