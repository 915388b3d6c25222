package dataprep

import (
	"math"

	"github.com/Clutch-254/event-feedback-analysis/pkg/stats"
)

// ImputeMedian replaces NaN entries with the median of the present values.
// Returns the number of filled entries and the value used.
func ImputeMedian(col []float64) (filled int, median float64) {
	median = stats.Median(stats.DropNaN(col))
	for i, v := range col {
		if math.IsNaN(v) {
			col[i] = median
			filled++
		}
	}
	return filled, median
}

// ImputeMode replaces NaN entries with the most frequent present value.
func ImputeMode(col []float64) (filled int, mode float64) {
	mode = stats.Mode(stats.DropNaN(col))
	for i, v := range col {
		if math.IsNaN(v) {
			col[i] = mode
			filled++
		}
	}
	return filled, mode
}
