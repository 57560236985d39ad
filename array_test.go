package paroot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatArrayInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []int32
		expected string
	}{
		{name: "nil", values: nil, expected: "[]"},
		{name: "empty", values: []int32{}, expected: "[]"},
		{name: "single", values: []int32{7}, expected: "[7]"},
		{name: "several", values: []int32{1, 2, 3}, expected: "[1, 2, 3]"},
		{name: "negative and extremes", values: []int32{-5, math.MaxInt32, math.MinInt32}, expected: "[-5, 2147483647, -2147483648]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatArrayInt(tt.values))
		})
	}
}

func TestFormatArrayFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []float32
		expected string
	}{
		{name: "empty", values: nil, expected: "[]"},
		{name: "two decimals", values: []float32{1.5, -2}, expected: "[1.50, -2.00]"},
		{name: "widened before rounding", values: []float32{1.1, 0.1}, expected: "[1.10, 0.10]"},
		{name: "large", values: []float32{1e6}, expected: "[1000000.00]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatArrayFloat(tt.values))
		})
	}
}

func TestFormatArrayDouble(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []float64
		expected string
	}{
		{name: "empty", values: []float64{}, expected: "[]"},
		{name: "two decimals", values: []float64{1.5, -2.0}, expected: "[1.50, -2.00]"},
		{name: "exact halves round to even", values: []float64{0.125, 0.375}, expected: "[0.12, 0.38]"},
		{name: "binary representation decides", values: []float64{2.675}, expected: "[2.67]"},
		{name: "zero", values: []float64{0}, expected: "[0.00]"},
		{name: "infinity", values: []float64{math.Inf(1), math.Inf(-1)}, expected: "[+Inf, -Inf]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatArrayDouble(tt.values))
		})
	}
}

func TestReaderPrintArray(t *testing.T) {
	t.Parallel()

	r, out := newForTesting(t, newMockSource(""))

	require.NoError(t, r.PrintArrayInt(nil))
	require.NoError(t, r.PrintArrayInt([]int32{1, 2, 3}))
	require.NoError(t, r.PrintArrayFloat([]float32{0.5}))
	require.NoError(t, r.PrintArrayDouble([]float64{1.5, -2.0}))

	assert.Equal(t, "[]\n[1, 2, 3]\n[0.50]\n[1.50, -2.00]\n", out.String())
}

func TestReaderPrintArrayIsNeverColored(t *testing.T) {
	t.Parallel()

	r, out := newForTesting(t, newMockSource(""), WithColorScheme(ThemeDark), WithForceColor(true))

	require.NoError(t, r.PrintArrayInt([]int32{4}))
	assert.Equal(t, "[4]\n", out.String())
}

func TestReaderPrintArrayWriteError(t *testing.T) {
	t.Parallel()

	r, _ := newForTesting(t, newMockSource(""))
	r.renderer = newRenderer(failingWriter{}, nil)

	assert.Error(t, r.PrintArrayDouble([]float64{1}))
}
