package pairwise

import (
	"math"

	"github.com/bunkerlabs/bunkerstats/seq"
)

// defaultMinPairs is the minimum-valid-pair policy for the rolling NaN-aware
// kernels when the caller passes minPeriods ≤ 0: covariance-type statistics
// need two pairs.
const defaultMinPairs = 2

// pairValid reports whether index i holds a valid pair (both sides non-NaN).
func pairValid(x, y []float64, i int) bool {
	return seq.IsValid(x[i]) && seq.IsValid(y[i])
}

// CovNaN returns the unbiased covariance over the pairwise-valid subset:
// only indices where BOTH x and y are valid contribute. Fewer than two valid
// pairs yield NaN.
// Complexity: O(n).
func CovNaN(x, y []float64) (float64, error) {
	if err := validatePair(x, y); err != nil {
		return 0, err
	}

	// first pass: pairwise-valid means
	var sx, sy float64
	n := 0
	for i := range x {
		if pairValid(x, y, i) {
			sx += x[i]
			sy += y[i]
			n++
		}
	}
	if n < 2 {
		return math.NaN(), nil
	}
	mx := sx / float64(n)
	my := sy / float64(n)

	var acc float64
	for i := range x {
		if pairValid(x, y, i) {
			acc += (x[i] - mx) * (y[i] - my)
		}
	}

	return acc / float64(n-1), nil
}

// CorrNaN returns the Pearson correlation over the pairwise-valid subset.
// The standard deviations are those of the pairwise-valid observations, not
// of each sequence's own valid subset. Fewer than two valid pairs, or zero
// variance on either side, yield NaN.
// Complexity: O(n).
func CorrNaN(x, y []float64) (float64, error) {
	if err := validatePair(x, y); err != nil {
		return 0, err
	}

	var sx, sy float64
	n := 0
	for i := range x {
		if pairValid(x, y, i) {
			sx += x[i]
			sy += y[i]
			n++
		}
	}
	if n < 2 {
		return math.NaN(), nil
	}
	mx := sx / float64(n)
	my := sy / float64(n)

	var sxy, sxx, syy float64
	for i := range x {
		if !pairValid(x, y, i) {
			continue
		}
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN(), nil
	}

	return sxy / math.Sqrt(sxx*syy), nil
}

// pairAccum slides valid-pair count and the five running sums across the
// window [max(0, i−w+1), i], adding and removing a pair's contribution only
// when both of its elements are valid.
type pairAccum struct {
	x, y                  []float64
	window                int
	n                     int
	sx, sy, sxy, sxx, syy float64
}

// step advances the accumulator to position i and returns the valid-pair
// count of the current window.
func (a *pairAccum) step(i int) int {
	if pairValid(a.x, a.y, i) {
		xi, yi := a.x[i], a.y[i]
		a.n++
		a.sx += xi
		a.sy += yi
		a.sxy += xi * yi
		a.sxx += xi * xi
		a.syy += yi * yi
	}
	if i >= a.window && pairValid(a.x, a.y, i-a.window) {
		xg, yg := a.x[i-a.window], a.y[i-a.window]
		a.n--
		a.sx -= xg
		a.sy -= yg
		a.sxy -= xg * yg
		a.sxx -= xg * xg
		a.syy -= yg * yg
	}

	return a.n
}

// RollingCovNaN returns the NaN-aware rolling covariance: per window, only
// valid pairs contribute, tracked by a distinct valid-pair count. The window
// at position i spans [max(0, i−w+1), i]; positions with fewer valid pairs
// than minPeriods (default 2 when minPeriods ≤ 0, never effectively below 2)
// are NaN.
// Complexity: O(n).
func RollingCovNaN(x, y []float64, window, minPeriods int) ([]float64, error) {
	if err := validateWindow(x, y, window); err != nil {
		return nil, err
	}
	if minPeriods <= 0 {
		minPeriods = defaultMinPairs
	}

	out := make([]float64, len(x))
	acc := pairAccum{x: x, y: y, window: window}
	for i := range x {
		n := acc.step(i)
		if n < minPeriods || n < 2 {
			out[i] = math.NaN()

			continue
		}
		out[i] = windowCov(acc.sx, acc.sy, acc.sxy, float64(n))
	}

	return out, nil
}

// RollingCorrNaN returns the NaN-aware rolling Pearson correlation over the
// valid pairs of each window, with the same valid-pair-count policy as
// RollingCovNaN. Degenerate windows are NaN.
// Complexity: O(n).
func RollingCorrNaN(x, y []float64, window, minPeriods int) ([]float64, error) {
	if err := validateWindow(x, y, window); err != nil {
		return nil, err
	}
	if minPeriods <= 0 {
		minPeriods = defaultMinPairs
	}

	out := make([]float64, len(x))
	acc := pairAccum{x: x, y: y, window: window}
	for i := range x {
		n := acc.step(i)
		if n < minPeriods || n < 2 {
			out[i] = math.NaN()

			continue
		}
		out[i] = windowCorr(acc.sx, acc.sy, acc.sxy, acc.sxx, acc.syy, float64(n))
	}

	return out, nil
}
