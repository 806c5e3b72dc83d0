package parser

import (
	"errors"
	"math"

	"github.com/ukaji3/hymix-go/pkg/hymix/models"
)

// ErrTooFewRows indicates a coefficient sheet with fewer than two rows.
var ErrTooFewRows = errors.New("coefficient sheet needs at least two rows")

// ExtractCoefficients reads the end-member rows from a coefficient sheet.
//
// Rows 2 and 3 are used when both have content (row 1 is then a header);
// otherwise rows 1 and 2. The first column holds row labels and is skipped.
// Unparsable cells read as 0 and trailing positions where both rows are 0
// are trimmed.
func ExtractCoefficients(rows [][]string) (models.CoefficientSet, error) {
	if len(rows) < 2 {
		return models.CoefficientSet{}, ErrTooFewRows
	}

	aRow, bRow := rows[0], rows[1]
	if len(rows) >= 3 && hasNonEmpty(rows[1]) && hasNonEmpty(rows[2]) {
		aRow, bRow = rows[1], rows[2]
	}

	a := coefficientValues(aRow)
	b := coefficientValues(bRow)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	a, b = pad(a, n), pad(b, n)

	for n > 0 && a[n-1] == 0 && b[n-1] == 0 {
		n--
	}
	return models.CoefficientSet{A: a[:n], B: b[:n]}, nil
}

func coefficientValues(row []string) []float64 {
	if len(row) <= 1 {
		return nil
	}
	out := make([]float64, 0, len(row)-1)
	for _, cell := range row[1:] {
		v := ParseNumber(cell)
		if math.IsNaN(v) {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

func pad(v []float64, n int) []float64 {
	for len(v) < n {
		v = append(v, 0)
	}
	return v
}
