package mixing

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/ukaji3/hymix-go/pkg/hymix/models"
	"gonum.org/v1/gonum/floats"
)

// Config tunes the bounded search and batch behaviour.
type Config struct {
	// Tol is the golden-section bracket tolerance.
	Tol float64
	// MaxIter bounds the number of bracket reductions.
	MaxIter int
	// ExcludeMissing drops NaN observations from the fit instead of
	// treating them as 0.
	ExcludeMissing bool
	// Workers is the number of samples fitted concurrently. Values below 2
	// fit sequentially.
	Workers int
}

// DefaultLinearConfig returns the search tuning for the additive model.
func DefaultLinearConfig() Config {
	return Config{Tol: 1e-7, MaxIter: 200}
}

// DefaultIsotopeConfig returns the search tuning for the rational model.
// The rational form is more sensitive, so it gets more iterations.
func DefaultIsotopeConfig() Config {
	return Config{Tol: 1e-7, MaxIter: 300}
}

// Fitter fits every sample row of a batch against one coefficient set.
// It holds no mutable state. Unset Tol or MaxIter fall back to the
// defaults of the model being fitted.
type Fitter struct {
	Config Config
}

// NewFitter returns a Fitter with the given configuration.
func NewFitter(cfg Config) *Fitter {
	return &Fitter{Config: cfg}
}

// ClosedForm fits the additive model by unconstrained linear least squares.
//
// With A = a-b and Y = obs-b the optimum is x = dot(A,Y)/dot(A,A). When every
// a[i] equals b[i] the denominator is 0 and x falls back to 0. The result is
// not clamped to [0, 1].
func (f *Fitter) ClosedForm(cs models.CoefficientSet, samples [][]float64) ([]models.FitResult, models.Diagnostics, error) {
	m, err := NewLinear(cs)
	if err != nil {
		return nil, models.Diagnostics{}, err
	}
	if err := checkSamples(samples); err != nil {
		return nil, models.Diagnostics{}, err
	}

	n := m.Len()
	diff := make([]float64, n)
	floats.SubTo(diff, m.A, m.B)
	denom := floats.Dot(diff, diff)

	results := f.run(len(samples), func(k int) models.FitResult {
		obs := normalize(samples[k], n)
		x, degenerate := closedForm(m, diff, denom, obs, f.Config.ExcludeMissing)
		return finish(m, x, obs, degenerate)
	})
	return results, summarize(results), nil
}

// Nonlinear fits the additive model by golden-section search over [0, 1].
func (f *Fitter) Nonlinear(cs models.CoefficientSet, samples [][]float64) ([]models.FitResult, models.Diagnostics, error) {
	m, err := NewLinear(cs)
	if err != nil {
		return nil, models.Diagnostics{}, err
	}
	return f.search(m, 0, samples, DefaultLinearConfig())
}

// Isotope fits the rational gas model by golden-section search over [0, 1].
// Observations are taken from the second half of every sample row.
func (f *Fitter) Isotope(cs models.CoefficientSet, samples [][]float64) ([]models.FitResult, models.Diagnostics, error) {
	m, err := NewIsotope(cs)
	if err != nil {
		return nil, models.Diagnostics{}, err
	}
	return f.search(m, m.Len(), samples, DefaultIsotopeConfig())
}

func (f *Fitter) search(m Model, offset int, samples [][]float64, defaults Config) ([]models.FitResult, models.Diagnostics, error) {
	if err := checkSamples(samples); err != nil {
		return nil, models.Diagnostics{}, err
	}
	tol, maxIter := f.Config.Tol, f.Config.MaxIter
	if tol <= 0 {
		tol = defaults.Tol
	}
	if maxIter <= 0 {
		maxIter = defaults.MaxIter
	}

	n := m.Len()
	var searchErr error
	var once sync.Once
	results := f.run(len(samples), func(k int) models.FitResult {
		obs := normalize(window(samples[k], offset), n)
		res, err := Minimize(NewSquaredResidual(m, obs, f.Config.ExcludeMissing), 0, 1, tol, maxIter)
		if err != nil {
			once.Do(func() { searchErr = err })
			return models.FitResult{}
		}
		return finish(m, res.X, obs, false)
	})
	if searchErr != nil {
		return nil, models.Diagnostics{}, searchErr
	}
	return results, summarize(results), nil
}

// run evaluates fit for every index, preserving order.
func (f *Fitter) run(count int, fit func(k int) models.FitResult) []models.FitResult {
	results := make([]models.FitResult, count)
	workers := f.Config.Workers
	if workers < 2 || count < 2 {
		for k := range results {
			results[k] = fit(k)
		}
		return results
	}
	if workers > count {
		workers = count
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				results[k] = fit(k)
			}
		}()
	}
	for k := range results {
		jobs <- k
	}
	close(jobs)
	wg.Wait()
	return results
}

func closedForm(m Linear, diff []float64, denom float64, obs []float64, excludeMissing bool) (float64, bool) {
	n := m.Len()
	a := diff
	y := make([]float64, 0, n)
	if excludeMissing {
		a = make([]float64, 0, n)
		for i, v := range obs {
			if math.IsNaN(v) {
				continue
			}
			a = append(a, diff[i])
			y = append(y, v-m.B[i])
		}
		denom = floats.Dot(a, a)
	} else {
		for i, v := range obs {
			if math.IsNaN(v) {
				v = 0
			}
			y = append(y, v-m.B[i])
		}
	}
	// Degenerate: every a[i] == b[i]. Sentinel x = 0, not an error.
	if denom == 0 {
		return 0, true
	}
	return finite(floats.Dot(a, y) / denom)
}

func finish(m Model, x float64, obs []float64, degenerate bool) models.FitResult {
	pred, sentinels := PredictAll(m, x)
	return models.FitResult{
		X:          x,
		Observed:   obs,
		Predicted:  pred,
		Degenerate: degenerate || sentinels > 0,
	}
}

func summarize(results []models.FitResult) models.Diagnostics {
	var d models.Diagnostics
	for _, r := range results {
		if r.Degenerate {
			d.DegenerateSamples++
		}
		if r.X < 0 || r.X > 1 {
			d.OutOfRange++
		}
		for _, v := range r.Observed {
			if math.IsNaN(v) {
				d.MissingValues++
			}
		}
	}
	return d
}

func checkSamples(samples [][]float64) error {
	if len(samples) == 0 {
		return shapeErrorf("no sample rows")
	}
	return nil
}

// window returns row[offset:], or nil when the row is too short.
func window(row []float64, offset int) []float64 {
	if offset >= len(row) {
		return nil
	}
	return row[offset:]
}

// normalize copies the first n values of row, padding with NaN.
func normalize(row []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i < len(row) {
			out[i] = row[i]
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// ResolveNames returns count display names taken from header[offset:],
// falling back to "<prefix>-<k>" (1-based) for blank or missing cells.
func ResolveNames(header []string, offset, count int, prefix string) []string {
	names := make([]string, count)
	for k := range names {
		var name string
		if i := offset + k; i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("%s-%d", prefix, k+1)
		}
		names[k] = name
	}
	return names
}
