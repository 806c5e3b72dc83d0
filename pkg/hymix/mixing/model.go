// Package mixing fits two-end-member mixing fractions to sample observations.
package mixing

import (
	"math"

	"github.com/ukaji3/hymix-go/pkg/hymix/models"
)

// Model predicts an observation vector for a mixing fraction x.
type Model interface {
	// Len returns the number of predicted positions.
	Len() int
	// Predict returns the value at position i for fraction x. The second
	// return value reports whether a sentinel 0 was substituted.
	Predict(i int, x float64) (float64, bool)
}

// Linear is the additive model a[i]*x + b[i]*(1-x).
type Linear struct {
	A []float64
	B []float64
}

// NewLinear builds a linear model over the full coefficient set.
func NewLinear(cs models.CoefficientSet) (Linear, error) {
	if cs.N() == 0 {
		return Linear{}, shapeErrorf("empty coefficient set")
	}
	if len(cs.B) != cs.N() {
		return Linear{}, shapeErrorf("coefficient rows differ in length (%d vs %d)", len(cs.A), len(cs.B))
	}
	return Linear{A: cs.A, B: cs.B}, nil
}

// Len implements Model.
func (m Linear) Len() int {
	return len(m.A)
}

// Predict implements Model.
func (m Linear) Predict(i int, x float64) (float64, bool) {
	return finite(m.A[i]*x + m.B[i]*(1-x))
}

// Isotope is the rational model for gas mixing: the isotope signature of a
// mixture is the component-weighted average of the end-member signatures.
type Isotope struct {
	// ComponentA and ComponentB are the mixing weights (first half).
	ComponentA []float64
	ComponentB []float64
	// IsotopeA and IsotopeB are the signatures (second half).
	IsotopeA []float64
	IsotopeB []float64
}

// NewIsotope splits cs into component and isotope halves.
// It fails when the coefficient count is zero or odd.
func NewIsotope(cs models.CoefficientSet) (Isotope, error) {
	n := cs.N()
	if n == 0 {
		return Isotope{}, shapeErrorf("empty coefficient set")
	}
	if len(cs.B) != n {
		return Isotope{}, shapeErrorf("coefficient rows differ in length (%d vs %d)", n, len(cs.B))
	}
	if n%2 != 0 {
		return Isotope{}, shapeErrorf("gas coefficient count must be even, got %d", n)
	}
	comp, iso := cs.Half()
	return Isotope{
		ComponentA: comp.A,
		ComponentB: comp.B,
		IsotopeA:   iso.A,
		IsotopeB:   iso.B,
	}, nil
}

// Len implements Model.
func (m Isotope) Len() int {
	return len(m.ComponentA)
}

// Predict implements Model.
//
// A zero component denominator yields 0. This is a deliberate degenerate-case
// policy, not a failure; callers must not treat the zero as a fit error.
func (m Isotope) Predict(j int, x float64) (float64, bool) {
	den := x*m.ComponentA[j] + (1-x)*m.ComponentB[j]
	if den == 0 {
		return 0, true
	}
	num := x*m.ComponentA[j]*m.IsotopeA[j] + (1-x)*m.ComponentB[j]*m.IsotopeB[j]
	return finite(num / den)
}

// PredictAll evaluates m at every position and returns the vector with the
// number of sentinel substitutions.
func PredictAll(m Model, x float64) ([]float64, int) {
	out := make([]float64, m.Len())
	var degenerate int
	for i := range out {
		v, sentinel := m.Predict(i, x)
		if sentinel {
			degenerate++
		}
		out[i] = v
	}
	return out, degenerate
}

// finite coerces NaN and ±Inf to 0.
func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true
	}
	return v, false
}
