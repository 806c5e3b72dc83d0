package mixing

import "math"

// goldenRatio is (sqrt(5)-1)/2, the bracket shrink factor.
var goldenRatio = (math.Sqrt(5) - 1) / 2

// Objective is a scalar function of one variable.
type Objective interface {
	Eval(x float64) float64
}

// ObjectiveFunc adapts a plain function to Objective.
type ObjectiveFunc func(x float64) float64

// Eval calls f(x).
func (f ObjectiveFunc) Eval(x float64) float64 {
	return f(x)
}

// Result is the outcome of a golden-section search.
type Result struct {
	// X is the midpoint of the final bracket.
	X float64
	// FX is the objective value at X.
	FX float64
	// Iterations is the number of bracket reductions performed.
	Iterations int
	// Evaluations is the total number of objective calls, including the
	// two initial probes and the final midpoint.
	Evaluations int
}

// Bracket is the search state after one iteration.
type Bracket struct {
	Iter int
	A    float64
	B    float64
}

// Width returns B - A.
func (b Bracket) Width() float64 {
	return b.B - b.A
}

// Minimize runs a golden-section search for a minimum of f on [a, b].
//
// The search stops once the bracket is no wider than tol or after maxIter
// reductions, whichever comes first. f is assumed unimodal on [a, b]; if it
// is not, the result is some local minimum and no error is reported.
func Minimize(f Objective, a, b, tol float64, maxIter int) (Result, error) {
	return MinimizeTrace(f, a, b, tol, maxIter, nil)
}

// MinimizeTrace is Minimize with a callback invoked after every iteration.
func MinimizeTrace(f Objective, a, b, tol float64, maxIter int, onIter func(Bracket)) (Result, error) {
	if !(a < b) {
		return Result{}, ErrInterval
	}
	if !(tol > 0) {
		return Result{}, ErrTolerance
	}
	if maxIter < 1 {
		return Result{}, ErrMaxIter
	}

	c := b - goldenRatio*(b-a)
	d := a + goldenRatio*(b-a)
	fc, fd := f.Eval(c), f.Eval(d)
	evals := 2

	iter := 0
	for (b-a) > tol && iter < maxIter {
		if fc < fd {
			// Minimum lies in [a, d]; old c becomes the new d.
			b = d
			d, fd = c, fc
			c = b - goldenRatio*(b-a)
			fc = f.Eval(c)
		} else {
			a = c
			c, fc = d, fd
			d = a + goldenRatio*(b-a)
			fd = f.Eval(d)
		}
		evals++
		iter++
		if onIter != nil {
			onIter(Bracket{Iter: iter, A: a, B: b})
		}
	}

	x := (a + b) / 2
	return Result{
		X:           x,
		FX:          f.Eval(x),
		Iterations:  iter,
		Evaluations: evals + 1,
	}, nil
}
