package describe

import "math"

// IQROutliers flags elements outside the Tukey fences
// [Q1 − k·IQR, Q3 + k·IQR]. The conventional fence multiplier is k = 1.5.
// Complexity: O(n·log n).
func IQROutliers(xs []float64, k float64) []bool {
	q1, q3, iqr := IQR(xs)
	low := q1 - k*iqr
	high := q3 + k*iqr

	out := make([]bool, len(xs))
	for i, x := range xs {
		out[i] = x < low || x > high
	}

	return out
}

// ZscoreOutliers flags elements whose standardized score exceeds threshold in
// absolute value, using the sample mean and n−1 standard deviation. A
// degenerate input (zero variance) flags nothing.
// Complexity: O(n).
func ZscoreOutliers(xs []float64, threshold float64) []bool {
	m := Mean(xs)
	s := Std(xs)

	out := make([]bool, len(xs))
	if math.IsNaN(s) || s == 0 {
		return out
	}
	for i, x := range xs {
		out[i] = math.Abs((x-m)/s) > threshold
	}

	return out
}
