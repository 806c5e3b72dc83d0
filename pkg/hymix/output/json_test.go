package output

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/hymix-go/pkg/hymix/models"
)

func TestToJSON_MissingAsNull(t *testing.T) {
	report := &models.Report{
		Kind:     "oil",
		Method:   "linear",
		VarNames: []string{"C1", "C2"},
		Results: []models.FitResult{
			{X: 0.5, Observed: []float64{4, math.NaN()}, Predicted: []float64{5, 5}},
		},
		Diagnostics: models.Diagnostics{MissingValues: 1},
	}

	data, err := ToJSON(report, false)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	results := decoded["results"].([]interface{})
	first := results[0].(map[string]interface{})
	assert.Equal(t, []interface{}{4.0, nil}, first["observed"])
	assert.Equal(t, 0.5, first["x"])
	assert.Equal(t, 1.0, decoded["diagnostics"].(map[string]interface{})["missing_values"])

	pretty, err := ToJSON(report, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"kind\": \"oil\"")
}
