package seq

import (
	"math"
	"sort"
)

// SortedCopy returns an ascending copy of xs without mutating the input.
// NaN values sort last so that NaN-free prefixes stay usable for order
// statistics; callers of quantile helpers are expected to pass NaN-free data.
// Complexity: O(n·log n).
func SortedCopy(xs []float64) []float64 {
	cp := make([]float64, len(xs))
	copy(cp, xs)
	sort.Slice(cp, func(i, j int) bool {
		// total order: NaN compares greater than everything
		if math.IsNaN(cp[j]) {
			return !math.IsNaN(cp[i])
		}
		if math.IsNaN(cp[i]) {
			return false
		}

		return cp[i] < cp[j]
	})

	return cp
}

// QuantileFromSorted evaluates the q-quantile of an ascending slice by linear
// interpolation between order statistics: position q·(n−1), interpolated
// between the floor and ceil ranks. q ≤ 0 yields the first element and
// q ≥ 1 the last; an empty slice yields NaN.
// Complexity: O(1).
func QuantileFromSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}

	pos := q * float64(n-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	w := pos - float64(lower)

	return sorted[lower]*(1-w) + sorted[upper]*w
}

// Median returns the middle value of xs (interpolated for even lengths),
// or NaN for an empty input. The input is not mutated.
// Complexity: O(n·log n).
func Median(xs []float64) float64 {
	return QuantileFromSorted(SortedCopy(xs), 0.5)
}
