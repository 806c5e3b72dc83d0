package output

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/hymix-go/pkg/hymix/models"
)

func TestPlotScatter(t *testing.T) {
	results := []models.FitResult{
		{X: 0.7, Observed: []float64{7, 3}, Predicted: []float64{7, 3}},
		{X: 0.4, Observed: []float64{4, math.NaN()}, Predicted: []float64{4.2, 5.8}},
	}
	yTrue, yPred := ScatterData(results)
	assert.Equal(t, []float64{4, 0}, yTrue[1])

	dir := filepath.Join(t.TempDir(), "plots")
	paths, err := PlotScatter(dir, []string{"n-C17/Pr", "d13C"}, yTrue, yPred)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "01_n-C17_Pr.png"), paths[0])

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "\x89PNG", string(data[:4]))
	}
}

func TestAxisRange(t *testing.T) {
	lo, hi := axisRange([][]float64{{0, 10}}, [][]float64{{5, math.NaN()}})
	assert.InDelta(t, -0.5, lo, 1e-12)
	assert.InDelta(t, 10.5, hi, 1e-12)

	lo, hi = axisRange([][]float64{{2}}, nil)
	assert.Equal(t, 1.5, lo)
	assert.Equal(t, 2.5, hi)

	lo, hi = axisRange(nil)
	assert.InDelta(t, -0.05, lo, 1e-12)
	assert.InDelta(t, 1.05, hi, 1e-12)
}
