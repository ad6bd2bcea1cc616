package seq

import "math"

// IsValid reports whether v is an actual observation (not the NaN sentinel).
// Every NaN-aware statistic in the module is defined in terms of this single
// predicate; a NaN-free input is simply the all-valid degenerate case.
func IsValid(v float64) bool {
	return !math.IsNaN(v)
}

// ValidCount returns the number of non-NaN observations in xs.
// Complexity: O(n).
func ValidCount(xs []float64) int {
	n := 0
	for _, v := range xs {
		if IsValid(v) {
			n++
		}
	}

	return n
}

// ValidValues appends the non-NaN observations of xs to dst and returns it.
// Pass nil to allocate fresh storage.
// Complexity: O(n).
func ValidValues(xs []float64, dst []float64) []float64 {
	for _, v := range xs {
		if IsValid(v) {
			dst = append(dst, v)
		}
	}

	return dst
}
