// Package output renders estimation reports as tables, workbooks, JSON and plots.
package output

import (
	"math"
	"strconv"

	"github.com/ukaji3/hymix-go/pkg/hymix/models"
	"gonum.org/v1/gonum/stat"
)

// ResultTable builds the export table: one header row, then one row per
// result with index, x, observed, predicted, relative error (%) per variable
// and the mean relative error.
//
// Relative errors are computed from the rounded display values and are left
// blank when the observation is missing or zero.
func ResultTable(varNames []string, results []models.FitResult) [][]string {
	header := []string{"index", "x"}
	for _, prefix := range []string{"observed-", "predicted-", "relerr-"} {
		for _, name := range varNames {
			header = append(header, prefix+name)
		}
	}
	header = append(header, "mean-error")

	rows := [][]string{header}
	for i, r := range results {
		orig := formatAll(r.Observed, 4)
		pred := formatAll(r.Predicted, 4)

		rel := make([]string, len(orig))
		var valid []float64
		for j, ov := range orig {
			if j >= len(pred) {
				break
			}
			re, ok := relativeError(ov, pred[j])
			if !ok {
				continue
			}
			rel[j] = strconv.FormatFloat(re, 'f', 2, 64)
			valid = append(valid, re)
		}

		var meanErr string
		if len(valid) > 0 {
			meanErr = strconv.FormatFloat(stat.Mean(valid, nil), 'f', 2, 64)
		}

		row := []string{strconv.Itoa(i + 1), format(r.X, 6)}
		row = append(row, orig...)
		row = append(row, pred...)
		row = append(row, rel...)
		row = append(row, meanErr)
		rows = append(rows, row)
	}
	return rows
}

// relativeError returns |pred-obs|/|obs| * 100 rounded to 2 decimals.
func relativeError(observed, predicted string) (float64, bool) {
	if observed == "" || predicted == "" {
		return 0, false
	}
	ov, err := strconv.ParseFloat(observed, 64)
	if err != nil || ov == 0 {
		return 0, false
	}
	pv, err := strconv.ParseFloat(predicted, 64)
	if err != nil {
		return 0, false
	}
	re := math.Abs((pv-ov)/ov) * 100
	return math.Round(re*100) / 100, true
}

func formatAll(values []float64, prec int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = format(v, prec)
	}
	return out
}

// format renders v with prec decimals, or "" for NaN and ±Inf.
func format(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
