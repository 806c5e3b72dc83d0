package output

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/hymix-go/pkg/hymix/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PlotSize is the edge length in pixels of each square scatter plot.
const PlotSize = 480

// ScatterData splits results into per-sample observed and predicted rows,
// with NaN replaced by 0.
func ScatterData(results []models.FitResult) (yTrue, yPred [][]float64) {
	for _, r := range results {
		yTrue = append(yTrue, zeroNaN(r.Observed))
		yPred = append(yPred, zeroNaN(r.Predicted))
	}
	return yTrue, yPred
}

// PlotScatter renders one observed-vs-predicted PNG per variable into dir and
// returns the written paths. All plots share one axis range so they can be
// compared side by side; each carries a dashed y=x reference line.
func PlotScatter(dir string, varNames []string, yTrue, yPred [][]float64) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	lo, hi := axisRange(yTrue, yPred)
	axis := &chart.ContinuousRange{Min: lo, Max: hi}

	var paths []string
	for i, name := range varNames {
		xs := column(yTrue, i)
		ys := column(yPred, i)
		if len(xs) == 0 {
			continue
		}

		graph := chart.Chart{
			Title:  name,
			Width:  PlotSize,
			Height: PlotSize,
			XAxis: chart.XAxis{
				Name:  "observed",
				Range: axis,
			},
			YAxis: chart.YAxis{
				Name:  "predicted",
				Range: axis,
			},
			Series: []chart.Series{
				chart.ContinuousSeries{
					Name: "samples",
					Style: chart.Style{
						StrokeWidth: chart.Disabled,
						DotWidth:    4,
						DotColor:    drawing.ColorFromHex("007bff"),
					},
					XValues: xs,
					YValues: ys,
				},
				chart.ContinuousSeries{
					Name: "y=x",
					Style: chart.Style{
						StrokeColor:     drawing.ColorRed,
						StrokeDashArray: []float64{5.0, 5.0},
					},
					XValues: []float64{lo, hi},
					YValues: []float64{lo, hi},
				},
			},
		}

		// Render to a byte buffer
		buffer := bytes.NewBuffer([]byte{})
		if err := graph.Render(chart.PNG, buffer); err != nil {
			return paths, fmt.Errorf("plot %q: %w", name, err)
		}

		path := filepath.Join(dir, fmt.Sprintf("%02d_%s.png", i+1, safeName(name)))
		if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// axisRange returns the shared [min, max] of all values with a 5% margin.
func axisRange(sets ...[][]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, set := range sets {
		for _, row := range set {
			for _, v := range row {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
		}
	}
	if math.IsInf(lo, 0) {
		lo = 0
	}
	if math.IsInf(hi, 0) {
		hi = 1
	}

	margin := 0.05 * (hi - lo)
	if margin == 0 {
		// a flat range cannot be drawn
		margin = 0.5
	}
	return lo - margin, hi + margin
}

func column(rows [][]float64, i int) []float64 {
	var out []float64
	for _, row := range rows {
		if i < len(row) {
			out = append(out, row[i])
		}
	}
	return out
}

func zeroNaN(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if !math.IsNaN(v) {
			out[i] = v
		}
	}
	return out
}

// safeName maps a variable name to a file-name fragment.
func safeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
