package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSamples_WithHeader(t *testing.T) {
	rows := [][]string{
		{"C1", "C2", "d13C"},
		{"7", "3", "-35.2", "ignored"},
		{"", "abc"},
		{"1.5", "", "2"},
	}

	header, samples := ExtractSamples(rows, 3)
	assert.Equal(t, rows[0], header)
	require.Len(t, samples, 2)
	assert.Equal(t, []float64{7, 3, -35.2}, samples[0])
	assert.Equal(t, 1.5, samples[1][0])
	assert.True(t, math.IsNaN(samples[1][1]))
	assert.Equal(t, 2.0, samples[1][2])
}

func TestExtractSamples_NoHeader(t *testing.T) {
	rows := [][]string{
		{"7", "3"},
		{"8"},
	}

	header, samples := ExtractSamples(rows, 2)
	assert.Nil(t, header)
	require.Len(t, samples, 2)
	assert.Equal(t, []float64{7, 3}, samples[0])
	assert.True(t, math.IsNaN(samples[1][1]))
}

func TestExtractSamples_Empty(t *testing.T) {
	header, samples := ExtractSamples(nil, 2)
	assert.Nil(t, header)
	assert.Empty(t, samples)

	_, samples = ExtractSamples([][]string{{"name"}}, 2)
	assert.Empty(t, samples)
}
