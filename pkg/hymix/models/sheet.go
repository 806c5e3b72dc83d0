package models

// SheetInfo describes one worksheet of an input workbook.
type SheetInfo struct {
	// Index is the sheet position (0-based).
	Index int `json:"index"`
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows is the number of rows returned by the reader.
	Rows int `json:"rows"`
	// DataRange is the bounding range of non-empty cells (e.g. "A1:D10").
	DataRange string `json:"data_range,omitempty"`
}

// Sheet is a worksheet read as raw string rows.
type Sheet struct {
	Name string
	Rows [][]string
}
