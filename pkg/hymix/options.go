// Package hymix estimates two-end-member mixing fractions from Excel workbooks.
package hymix

import "github.com/ukaji3/hymix-go/pkg/hymix/mixing"

// Kind selects the mixing model.
type Kind string

const (
	// KindOil mixes a single attribute vector additively.
	KindOil Kind = "oil"
	// KindGas mixes isotope signatures weighted by component abundance.
	KindGas Kind = "gas"
)

// Method selects the fitting strategy.
type Method string

const (
	// MethodLinear solves the additive model in closed form (oil only).
	MethodLinear Method = "linear"
	// MethodNonlinear runs a bounded golden-section search over [0, 1].
	MethodNonlinear Method = "nonlinear"
)

// Options configures estimation behavior.
type Options struct {
	// Kind specifies the mixing model (oil, gas).
	Kind Kind
	// Method specifies the fitting strategy. Gas is always nonlinear.
	Method Method
	// Tol overrides the search tolerance when positive.
	Tol float64
	// MaxIter overrides the search iteration limit when positive.
	MaxIter int
	// ExcludeMissing drops empty sample cells from the fit instead of
	// reading them as 0.
	ExcludeMissing bool
	// Workers is the number of samples fitted concurrently.
	Workers int
	// CoefficientSheet is the index of the end-member sheet.
	CoefficientSheet int
	// SampleSheet is the index of the sample sheet.
	SampleSheet int
}

// DefaultOptions returns default estimation options.
func DefaultOptions() Options {
	return Options{
		Kind:             KindOil,
		Method:           MethodLinear,
		CoefficientSheet: 0,
		SampleSheet:      1,
	}
}

// EffectiveMethod returns the method actually used for the kind.
func (o Options) EffectiveMethod() Method {
	if o.Kind == KindGas {
		return MethodNonlinear
	}
	if o.Method == "" {
		return MethodLinear
	}
	return o.Method
}

// FitConfig returns the search configuration for the fitter.
func (o Options) FitConfig() mixing.Config {
	cfg := mixing.DefaultLinearConfig()
	if o.Kind == KindGas {
		cfg = mixing.DefaultIsotopeConfig()
	}
	if o.Tol > 0 {
		cfg.Tol = o.Tol
	}
	if o.MaxIter > 0 {
		cfg.MaxIter = o.MaxIter
	}
	cfg.ExcludeMissing = o.ExcludeMissing
	cfg.Workers = o.Workers
	return cfg
}

// Validate checks that kind and method are known.
func (o Options) Validate() error {
	switch o.Kind {
	case KindOil, KindGas:
	default:
		return &OptionError{Field: "kind", Value: string(o.Kind)}
	}
	switch o.Method {
	case "", MethodLinear, MethodNonlinear:
	default:
		return &OptionError{Field: "method", Value: string(o.Method)}
	}
	if o.CoefficientSheet < 0 || o.SampleSheet < 0 {
		return &OptionError{Field: "sheet", Value: "negative index"}
	}
	return nil
}
