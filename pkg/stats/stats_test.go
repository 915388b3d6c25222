package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestMedian(t *testing.T) {
	t.Run("odd length", func(t *testing.T) {
		assert.Equal(t, 3.0, Median([]float64{5, 3, 1}))
	})
	t.Run("even length", func(t *testing.T) {
		assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
	})
	t.Run("input not mutated", func(t *testing.T) {
		x := []float64{3, 1, 2}
		Median(x)
		assert.Equal(t, []float64{3, 1, 2}, x)
	})
}

func TestMode(t *testing.T) {
	assert.Equal(t, 4.0, Mode([]float64{1, 4, 4, 2, 4, 1}))
	assert.Zero(t, Mode(nil))
}

func TestVariance(t *testing.T) {
	assert.InDelta(t, 1.25, Variance([]float64{5, 4, 2, 3}), 1e-9)
	assert.Zero(t, Variance(nil))
}

func TestStd(t *testing.T) {
	assert.InDelta(t, 0.8165, Std([]float64{1, 2, 3}), 1e-4)
	assert.Zero(t, Std([]float64{2, 2, 2}))
}

func TestDropNaN(t *testing.T) {
	got := DropNaN([]float64{1, math.NaN(), 3, math.NaN()})
	assert.Equal(t, []float64{1, 3}, got)

	t.Run("clean input is unchanged", func(t *testing.T) {
		assert.Equal(t, []float64{1, 2}, DropNaN([]float64{1, 2}))
	})
}
