package output

import (
	"encoding/json"
	"math"

	"github.com/ukaji3/hymix-go/pkg/hymix/models"
)

// jsonResult mirrors models.FitResult with missing values as null, since
// encoding/json rejects NaN.
type jsonResult struct {
	X          *float64   `json:"x"`
	Observed   []*float64 `json:"observed"`
	Predicted  []*float64 `json:"predicted"`
	Degenerate bool       `json:"degenerate,omitempty"`
}

type jsonReport struct {
	BookName    string             `json:"book_name,omitempty"`
	Kind        string             `json:"kind"`
	Method      string             `json:"method"`
	VarNames    []string           `json:"var_names"`
	Results     []jsonResult       `json:"results"`
	Diagnostics models.Diagnostics `json:"diagnostics"`
}

// ToJSON serializes a report, optionally indented.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	out := jsonReport{
		BookName:    report.BookName,
		Kind:        report.Kind,
		Method:      report.Method,
		VarNames:    report.VarNames,
		Results:     make([]jsonResult, 0, len(report.Results)),
		Diagnostics: report.Diagnostics,
	}
	for _, r := range report.Results {
		out.Results = append(out.Results, jsonResult{
			X:          nullable(r.X),
			Observed:   nullableAll(r.Observed),
			Predicted:  nullableAll(r.Predicted),
			Degenerate: r.Degenerate,
		})
	}

	if pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func nullableAll(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		out[i] = nullable(v)
	}
	return out
}
