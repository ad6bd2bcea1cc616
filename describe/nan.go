package describe

import (
	"math"

	"github.com/bunkerlabs/bunkerstats/seq"
	"github.com/bunkerlabs/bunkerstats/welford"
)

// MeanNaN returns the mean of the valid (non-NaN) subset of xs, or NaN when
// no valid observation exists.
// Complexity: O(n), no allocations.
func MeanNaN(xs []float64) float64 {
	var sum float64
	count := 0
	for _, x := range xs {
		if seq.IsValid(x) {
			sum += x
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}

	return sum / float64(count)
}

// VarNaN returns the unbiased sample variance of the valid subset of xs,
// or NaN when fewer than two valid observations exist.
// Complexity: O(n), no allocations.
func VarNaN(xs []float64) float64 {
	var acc welford.Accumulator
	for _, x := range xs {
		if seq.IsValid(x) {
			acc.Add(x)
		}
	}

	return acc.Variance()
}

// StdNaN returns the sample standard deviation of the valid subset of xs.
func StdNaN(xs []float64) float64 {
	return math.Sqrt(VarNaN(xs))
}
