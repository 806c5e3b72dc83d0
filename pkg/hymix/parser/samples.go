package parser

import "math"

// ExtractSamples reads up to n values per row from a sample sheet.
//
// The first row is treated as a header when any of its cells is non-numeric
// text; the header is returned so callers can resolve display names. Empty
// or unparsable cells read as NaN and rows with no numeric value are dropped.
func ExtractSamples(rows [][]string, n int) (header []string, samples [][]float64) {
	if len(rows) == 0 {
		return nil, nil
	}

	data := rows
	if hasHeader(rows[0]) {
		header = rows[0]
		data = rows[1:]
	}

	for _, r := range data {
		row := make([]float64, n)
		valid := false
		for i := range row {
			v := math.NaN()
			if i < len(r) && !isBlank(r[i]) {
				v = ParseNumber(r[i])
			}
			if !math.IsNaN(v) {
				valid = true
			}
			row[i] = v
		}
		if valid {
			samples = append(samples, row)
		}
	}
	return header, samples
}

func hasHeader(row []string) bool {
	for _, cell := range row {
		if isText(cell) {
			return true
		}
	}
	return false
}
