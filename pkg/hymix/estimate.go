package hymix

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/hymix-go/pkg/hymix/mixing"
	"github.com/ukaji3/hymix-go/pkg/hymix/models"
	"github.com/ukaji3/hymix-go/pkg/hymix/parser"
	"github.com/xuri/excelize/v2"
)

// Estimate fits every sample of the workbook at path.
func Estimate(path string, opts Options) (*models.Report, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, ErrFileNotFound
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	report, err := EstimateWorkbook(f, opts)
	if err != nil {
		return nil, err
	}
	report.BookName = filepath.Base(path)
	return report, nil
}

// EstimateReader is Estimate for an in-memory workbook.
func EstimateReader(r io.Reader, opts Options) (*models.Report, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return EstimateWorkbook(f, opts)
}

// EstimateWorkbook fits the samples of an open workbook.
func EstimateWorkbook(f *excelize.File, opts Options) (*models.Report, error) {
	sheets, err := parser.ReadSheets(f)
	if err != nil {
		return nil, err
	}
	return EstimateSheets(sheets, opts)
}

// EstimateSheets fits samples from already-read sheets. Any shape problem
// aborts the whole batch before fitting; per-sample degeneracies do not.
func EstimateSheets(sheets []models.Sheet, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(sheets) < 2 || opts.CoefficientSheet >= len(sheets) || opts.SampleSheet >= len(sheets) {
		return nil, ErrTooFewSheets
	}
	coefSheet := sheets[opts.CoefficientSheet]
	sampleSheet := sheets[opts.SampleSheet]

	cs, err := parser.ExtractCoefficients(coefSheet.Rows)
	if err != nil {
		return nil, NewSheetError(coefSheet.Name, "coefficients", err)
	}
	n := cs.N()
	if n == 0 {
		return nil, NewSheetError(coefSheet.Name, "coefficients",
			&mixing.ShapeError{Detail: "empty coefficient set"})
	}
	if opts.Kind == KindGas && n%2 != 0 {
		return nil, NewSheetError(coefSheet.Name, "coefficients",
			&mixing.ShapeError{Detail: "gas coefficient count must be even"})
	}

	header, samples := parser.ExtractSamples(sampleSheet.Rows, n)
	if len(samples) == 0 {
		return nil, NewSheetError(sampleSheet.Name, "samples", ErrNoSamples)
	}

	method := opts.EffectiveMethod()
	fitter := mixing.NewFitter(opts.FitConfig())

	var (
		results  []models.FitResult
		diag     models.Diagnostics
		varNames []string
	)
	switch {
	case opts.Kind == KindGas:
		results, diag, err = fitter.Isotope(cs, samples)
		varNames = mixing.ResolveNames(header, n/2, n/2, "isotope")
	case method == MethodNonlinear:
		results, diag, err = fitter.Nonlinear(cs, samples)
		varNames = mixing.ResolveNames(header, 0, n, "param")
	default:
		results, diag, err = fitter.ClosedForm(cs, samples)
		varNames = mixing.ResolveNames(header, 0, n, "param")
	}
	if err != nil {
		return nil, NewSheetError(coefSheet.Name, "coefficients", err)
	}

	return &models.Report{
		Kind:        string(opts.Kind),
		Method:      string(method),
		VarNames:    varNames,
		Results:     results,
		Diagnostics: diag,
	}, nil
}

// ListSheets describes every sheet of the workbook at path.
func ListSheets(path string) ([]models.SheetInfo, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, ErrFileNotFound
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets, err := parser.ReadSheets(f)
	if err != nil {
		return nil, err
	}
	return parser.DescribeSheets(sheets), nil
}
