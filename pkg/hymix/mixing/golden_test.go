package mixing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/hymix-go/pkg/hymix/mixing"
)

func quadratic(center float64) mixing.ObjectiveFunc {
	return func(x float64) float64 { return (x - center) * (x - center) }
}

// TestMinimize_Quadratic checks the minimum of (x-0.3)^2 on [0,1].
func TestMinimize_Quadratic(t *testing.T) {
	res, err := mixing.Minimize(quadratic(0.3), 0, 1, 1e-6, 120)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, res.X, 1e-5)
	assert.InDelta(t, 0.0, res.FX, 1e-10)
	assert.Less(t, res.Iterations, 120, "should converge on tolerance before maxIter")
}

// TestMinimize_BracketShrinks verifies the width never grows and the stop rule.
func TestMinimize_BracketShrinks(t *testing.T) {
	const tol = 1e-6
	var widths []float64
	res, err := mixing.MinimizeTrace(quadratic(0.71), 0, 1, tol, 300, func(b mixing.Bracket) {
		widths = append(widths, b.Width())
	})
	require.NoError(t, err)
	require.Len(t, widths, res.Iterations)

	prev := 1.0
	for i, w := range widths {
		assert.LessOrEqual(t, w, prev, "width grew at iteration %d", i+1)
		prev = w
	}
	assert.LessOrEqual(t, widths[len(widths)-1], tol)
	assert.InDelta(t, 0.71, res.X, 1e-5)
}

// TestMinimize_MaxIterBound verifies that maxIter caps both iterations and
// objective evaluations.
func TestMinimize_MaxIterBound(t *testing.T) {
	calls := 0
	f := mixing.ObjectiveFunc(func(x float64) float64 {
		calls++
		return math.Abs(x - 0.5)
	})

	res, err := mixing.Minimize(f, 0, 1, 1e-12, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Iterations)
	// two initial probes, one per iteration, one for the returned midpoint
	assert.Equal(t, 8, res.Evaluations)
	assert.Equal(t, calls, res.Evaluations)
}

// TestMinimize_BoundaryMinimum checks a monotone objective converges to the edge.
func TestMinimize_BoundaryMinimum(t *testing.T) {
	res, err := mixing.Minimize(mixing.ObjectiveFunc(func(x float64) float64 { return -x }), 0, 1, 1e-7, 200)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.X, 1e-6)
}

func TestMinimize_Preconditions(t *testing.T) {
	f := quadratic(0.5)

	_, err := mixing.Minimize(f, 1, 1, 1e-6, 10)
	assert.ErrorIs(t, err, mixing.ErrInterval)

	_, err = mixing.Minimize(f, 1, 0, 1e-6, 10)
	assert.ErrorIs(t, err, mixing.ErrInterval)

	_, err = mixing.Minimize(f, 0, 1, 0, 10)
	assert.ErrorIs(t, err, mixing.ErrTolerance)

	_, err = mixing.Minimize(f, 0, 1, math.NaN(), 10)
	assert.ErrorIs(t, err, mixing.ErrTolerance)

	_, err = mixing.Minimize(f, 0, 1, 1e-6, 0)
	assert.ErrorIs(t, err, mixing.ErrMaxIter)
}

// TestMinimize_Deterministic checks repeated runs are bit-identical.
func TestMinimize_Deterministic(t *testing.T) {
	a, err := mixing.Minimize(quadratic(0.123), 0, 1, 1e-7, 300)
	require.NoError(t, err)
	b, err := mixing.Minimize(quadratic(0.123), 0, 1, 1e-7, 300)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
