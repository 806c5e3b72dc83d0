package output

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSaveXLSX(t *testing.T) {
	rows := [][]string{
		{"index", "x", "observed-C1"},
		{"1", "0.700000", ""},
	}
	path := filepath.Join(t.TempDir(), "result.xlsx")
	require.NoError(t, SaveXLSX(path, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ResultSheet}, f.GetSheetList())

	got, err := f.GetRows(ResultSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rows[0], got[0])
	assert.Equal(t, "1", got[1][0])
	assert.Equal(t, "0.7", got[1][1])

	typ, err := f.GetCellType(ResultSheet, "B2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ, "numeric strings must be stored as numbers")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, [][]string{{"a", "1"}}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(ResultSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
