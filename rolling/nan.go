package rolling

import (
	"math"

	"github.com/bunkerlabs/bunkerstats/seq"
)

// Default minimum-valid-count policies for the NaN-aware kernels: a mean is
// defined from one valid point, a variance-type statistic from two. Pass
// minPeriods > 0 to tighten (e.g. pandas' min_periods=window behavior).
const (
	defaultMinPeriodsMean = 1
	defaultMinPeriodsVar  = 2
)

// nanAccum slides valid-count, valid-sum and valid-sumSq across the window
// [max(0, i−w+1), i], adding and removing only non-NaN elements.
type nanAccum struct {
	xs     []float64
	window int
	count  int
	sum    float64
	sumSq  float64
}

// step advances the accumulator to position i and returns the window's valid
// count. Call with strictly increasing i starting at 0.
func (a *nanAccum) step(i int) int {
	if in := a.xs[i]; seq.IsValid(in) {
		a.count++
		a.sum += in
		a.sumSq += in * in
	}
	if i >= a.window {
		if gone := a.xs[i-a.window]; seq.IsValid(gone) {
			a.count--
			a.sum -= gone
			a.sumSq -= gone * gone
		}
	}

	return a.count
}

// MeanNaN returns the NaN-aware rolling mean. The window at position i spans
// [max(0, i−w+1), i]; positions whose valid count is below minPeriods
// (default 1 when minPeriods ≤ 0) are NaN.
// Complexity: O(n).
func MeanNaN(xs []float64, window, minPeriods int) ([]float64, error) {
	if err := validate(xs, window); err != nil {
		return nil, err
	}
	if minPeriods <= 0 {
		minPeriods = defaultMinPeriodsMean
	}

	out := make([]float64, len(xs))
	acc := nanAccum{xs: xs, window: window}
	for i := range xs {
		if n := acc.step(i); n >= minPeriods {
			out[i] = acc.sum / float64(n)
		} else {
			out[i] = math.NaN()
		}
	}

	return out, nil
}

// VarNaN returns the NaN-aware rolling unbiased variance. Positions whose
// valid count is below minPeriods (default 2 when minPeriods ≤ 0, and never
// effectively below 2) are NaN.
// Complexity: O(n).
func VarNaN(xs []float64, window, minPeriods int) ([]float64, error) {
	if err := validate(xs, window); err != nil {
		return nil, err
	}
	if minPeriods <= 0 {
		minPeriods = defaultMinPeriodsVar
	}

	out := make([]float64, len(xs))
	acc := nanAccum{xs: xs, window: window}
	for i := range xs {
		n := acc.step(i)
		if n < minPeriods || n < 2 {
			out[i] = math.NaN()

			continue
		}
		out[i] = windowVariance(acc.sum, acc.sumSq, float64(n))
	}

	return out, nil
}

// StdNaN returns the NaN-aware rolling sample standard deviation.
// Complexity: O(n).
func StdNaN(xs []float64, window, minPeriods int) ([]float64, error) {
	out, err := VarNaN(xs, window, minPeriods)
	if err != nil {
		return nil, err
	}
	for i, v := range out {
		out[i] = math.Sqrt(v)
	}

	return out, nil
}

// ZscoreNaN returns the NaN-aware rolling z-score of the current element
// against its window's valid subset. The output is NaN wherever x[i] itself
// is NaN, the valid count is below minPeriods (default 2 when ≤ 0), or the
// windowed variance is zero.
// Complexity: O(n).
func ZscoreNaN(xs []float64, window, minPeriods int) ([]float64, error) {
	if err := validate(xs, window); err != nil {
		return nil, err
	}
	if minPeriods <= 0 {
		minPeriods = defaultMinPeriodsVar
	}

	out := make([]float64, len(xs))
	acc := nanAccum{xs: xs, window: window}
	for i, x := range xs {
		n := acc.step(i)
		if !seq.IsValid(x) || n < minPeriods || n < 2 {
			out[i] = math.NaN()

			continue
		}
		nf := float64(n)
		s := math.Sqrt(windowVariance(acc.sum, acc.sumSq, nf))
		if s == 0 {
			out[i] = math.NaN()

			continue
		}
		out[i] = (x - acc.sum/nf) / s
	}

	return out, nil
}
