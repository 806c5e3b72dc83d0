package mixing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/hymix-go/pkg/hymix/mixing"
	"github.com/ukaji3/hymix-go/pkg/hymix/models"
)

func TestSquaredResidual_Mean(t *testing.T) {
	m, err := mixing.NewLinear(models.CoefficientSet{A: []float64{10, 0}, B: []float64{0, 10}})
	require.NoError(t, err)

	obj := mixing.NewSquaredResidual(m, []float64{7, 3}, false)
	assert.InDelta(t, 0.0, obj.Eval(0.7), 1e-12)
	// x=0.5 predicts [5,5]: residuals -2, 2
	assert.InDelta(t, 4.0, obj.Eval(0.5), 1e-12)
}

func TestSquaredResidual_Missing(t *testing.T) {
	m, err := mixing.NewLinear(models.CoefficientSet{A: []float64{10, 0}, B: []float64{0, 10}})
	require.NoError(t, err)
	obs := []float64{7, math.NaN()}

	// missing compared against 0: x=0.5 gives residuals -2 and 5
	substituted := mixing.NewSquaredResidual(m, obs, false)
	assert.InDelta(t, (4.0+25.0)/2, substituted.Eval(0.5), 1e-12)

	excluded := mixing.NewSquaredResidual(m, obs, true)
	assert.InDelta(t, 4.0, excluded.Eval(0.5), 1e-12)

	allMissing := mixing.NewSquaredResidual(m, []float64{math.NaN(), math.NaN()}, true)
	assert.Equal(t, 0.0, allMissing.Eval(0.5))
}
