package mixing

import "math"

// SquaredResidual is the mean squared residual between a model and one
// sample's observations, as a function of the mixing fraction.
type SquaredResidual struct {
	Model    Model
	Observed []float64
	// ExcludeMissing drops NaN observations from the mean. When false they
	// are compared against 0, which biases the fit towards zero.
	ExcludeMissing bool
}

// NewSquaredResidual builds the objective for one sample.
func NewSquaredResidual(m Model, observed []float64, excludeMissing bool) *SquaredResidual {
	return &SquaredResidual{Model: m, Observed: observed, ExcludeMissing: excludeMissing}
}

// Eval implements Objective.
func (o *SquaredResidual) Eval(x float64) float64 {
	n := o.Model.Len()
	var sum float64
	count := 0
	for i := 0; i < n; i++ {
		obs := o.observed(i)
		if math.IsNaN(obs) {
			if o.ExcludeMissing {
				continue
			}
			obs = 0
		}
		pred, _ := o.Model.Predict(i, x)
		r := pred - obs
		sum += r * r
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// observed returns Observed[i], or NaN past the end of a short row.
func (o *SquaredResidual) observed(i int) float64 {
	if i < len(o.Observed) {
		return o.Observed[i]
	}
	return math.NaN()
}
