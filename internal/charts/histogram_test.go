package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counts(bins []Bin) []int {
	out := make([]int, len(bins))
	for i, b := range bins {
		out[i] = b.Count
	}
	return out
}

func TestHistogram(t *testing.T) {
	bins := Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}, 5)
	require.Len(t, bins, 5)

	assert.Equal(t, []int{2, 2, 2, 2, 2}, counts(bins))
	assert.InDelta(t, 0.0, bins[0].Min, 1e-9)
	assert.InDelta(t, 2.0, bins[0].Max, 1e-9)
	assert.InDelta(t, 10.0, bins[4].Max, 1e-9)
}

func TestHistogram_MaxInLastBin(t *testing.T) {
	bins := Histogram([]float64{1, 2}, 3)
	require.Len(t, bins, 3)
	assert.Equal(t, []int{1, 0, 1}, counts(bins))
}

func TestHistogram_Constant(t *testing.T) {
	bins := Histogram([]float64{4, 4, 4}, 30)
	require.Len(t, bins, 1)
	assert.Equal(t, 3, bins[0].Count)
}

func TestHistogram_SkipsNonFinite(t *testing.T) {
	bins := Histogram([]float64{math.NaN(), math.Inf(1), 1, 3}, 2)
	require.Len(t, bins, 2)
	assert.Equal(t, []int{1, 1}, counts(bins))
}

func TestHistogram_Empty(t *testing.T) {
	assert.Nil(t, Histogram(nil, 10))
	assert.Nil(t, Histogram([]float64{math.NaN()}, 10))
	assert.Nil(t, Histogram([]float64{1, 2}, 0))
}

func TestHistogram_Unsorted(t *testing.T) {
	bins := Histogram([]float64{10, 0, 8, 2, 5}, 5)
	require.Len(t, bins, 5)
	assert.Equal(t, []int{1, 1, 1, 0, 2}, counts(bins))
	assert.InDelta(t, 10.0, bins[4].Max, 1e-9)
}

// Every finite value lands in exactly one bin.
func TestHistogram_ConservesCount(t *testing.T) {
	values := []float64{0.12, 0.5, 0.51, 0.7, 0.33, 0.99, 1.5, 0.01, 0.66}
	total := 0
	for _, b := range Histogram(values, 30) {
		total += b.Count
	}
	assert.Equal(t, len(values), total)
}
