package describe

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/bunkerlabs/bunkerstats/seq"
	"github.com/bunkerlabs/bunkerstats/welford"
)

// ErrBadProportion indicates a trimming proportion outside [0, 1).
var ErrBadProportion = errors.New("describe: proportion must be in [0, 1)")

// Mean returns the arithmetic mean of xs, or NaN for an empty input.
// Complexity: O(n).
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}

	return floats.Sum(xs) / float64(len(xs))
}

// Var returns the unbiased (n−1 denominator) sample variance of xs via the
// Welford accumulator, or NaN when fewer than two points are present.
// Complexity: O(n).
func Var(xs []float64) float64 {
	_, v, _ := welford.Summarize(xs)

	return v
}

// Std returns the sample standard deviation of xs.
func Std(xs []float64) float64 {
	return math.Sqrt(Var(xs))
}

// Zscore standardizes xs elementwise: (x − mean) / std.
// A degenerate input (fewer than two points or zero variance) yields an
// all-NaN output rather than ±Inf artifacts.
// Complexity: O(n).
func Zscore(xs []float64) []float64 {
	out := make([]float64, len(xs))
	m, v, _ := welford.Summarize(xs)
	s := math.Sqrt(v)
	if math.IsNaN(s) || s == 0 {
		for i := range out {
			out[i] = math.NaN()
		}

		return out
	}
	for i, x := range xs {
		out[i] = (x - m) / s
	}

	return out
}

// Percentile returns the q-quantile of xs with linear interpolation between
// order statistics (position q·(n−1)). q outside [0, 1] clamps to the
// extremes; an empty input yields NaN.
// Complexity: O(n·log n).
func Percentile(xs []float64, q float64) float64 {
	return seq.QuantileFromSorted(seq.SortedCopy(xs), q)
}

// Median returns the 50th percentile of xs.
func Median(xs []float64) float64 {
	return seq.Median(xs)
}

// IQR returns the lower quartile, upper quartile and their spread Q3−Q1.
// Complexity: O(n·log n) for one shared sort.
func IQR(xs []float64) (q1, q3, iqr float64) {
	sorted := seq.SortedCopy(xs)
	q1 = seq.QuantileFromSorted(sorted, 0.25)
	q3 = seq.QuantileFromSorted(sorted, 0.75)

	return q1, q3, q3 - q1
}

// MAD returns the median absolute deviation from the median. No consistency
// correction is applied; pair with RobustScale for scaled deviations.
// Complexity: O(n·log n).
func MAD(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	med := seq.Median(xs)
	devs := make([]float64, len(xs))
	for i, x := range xs {
		devs[i] = math.Abs(x - med)
	}

	return seq.Median(devs)
}

// TrimmedMean sorts xs, discards proportion/2 of the elements from each tail
// and returns the mean of the remainder. Returns NaN when trimming removes
// the entire sequence (or the input is empty), and ErrBadProportion when
// proportion is outside [0, 1).
// Complexity: O(n·log n).
func TrimmedMean(xs []float64, proportion float64) (float64, error) {
	if proportion < 0 || proportion >= 1 {
		return 0, ErrBadProportion
	}
	n := len(xs)
	if n == 0 {
		return math.NaN(), nil
	}

	k := int(float64(n) * proportion / 2)
	if 2*k >= n {
		return math.NaN(), nil
	}
	sorted := seq.SortedCopy(xs)

	return Mean(sorted[k : n-k]), nil
}
