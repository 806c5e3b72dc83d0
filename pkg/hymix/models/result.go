package models

// FitResult is the outcome of fitting one sample row.
type FitResult struct {
	// X is the fitted fraction of end-member A. Closed-form fits are not
	// clamped, so X may fall outside [0, 1].
	X float64 `json:"x"`
	// Observed holds the measured values used for the fit (NaN when missing).
	Observed []float64 `json:"observed"`
	// Predicted holds the model values at X, same length as Observed.
	Predicted []float64 `json:"predicted"`
	// Degenerate is true when any sentinel fallback was used for this sample.
	Degenerate bool `json:"degenerate,omitempty"`
}

// Diagnostics counts per-batch numeric degeneracies.
type Diagnostics struct {
	// DegenerateSamples is the number of samples that hit a sentinel branch.
	DegenerateSamples int `json:"degenerate_samples"`
	// OutOfRange is the number of fitted fractions outside [0, 1].
	OutOfRange int `json:"out_of_range"`
	// MissingValues is the number of NaN observations across all samples.
	MissingValues int `json:"missing_values"`
}

// Report is the full output of an estimation run.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// Kind is the mixing domain ("oil" or "gas").
	Kind string `json:"kind"`
	// Method is the fitting method ("linear" or "nonlinear").
	Method string `json:"method"`
	// VarNames are the display names of the fitted positions.
	VarNames []string `json:"var_names"`
	// Results holds one entry per sample, in input row order.
	Results []FitResult `json:"results"`
	// Diagnostics summarises degenerate fits.
	Diagnostics Diagnostics `json:"diagnostics"`
}
