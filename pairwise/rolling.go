package pairwise

import "math"

// validateWindow checks the rolling contract after the pair contract.
func validateWindow(x, y []float64, window int) error {
	if err := validatePair(x, y); err != nil {
		return err
	}
	if window <= 0 || window > len(x) {
		return ErrBadWindow
	}

	return nil
}

// windowCov derives the unbiased covariance from windowed sums,
// NaN for n < 2.
func windowCov(sx, sy, sxy, n float64) float64 {
	if n < 2 {
		return math.NaN()
	}

	return (sxy - sx*sy/n) / (n - 1)
}

// windowCorr derives the windowed correlation from the five running sums,
// NaN when either windowed variance degenerates (guarding rounding below
// zero as zero variance).
func windowCorr(sx, sy, sxy, sxx, syy, n float64) float64 {
	if n < 2 {
		return math.NaN()
	}
	cxy := sxy - sx*sy/n
	cxx := sxx - sx*sx/n
	cyy := syy - sy*sy/n
	if cxx <= 0 || cyy <= 0 {
		return math.NaN()
	}

	return cxy / math.Sqrt(cxx*cyy)
}

// RollingCov returns the same-length rolling covariance of the pair over the
// given window: running sums of x, y and x·y slide in O(1) per step, and
// positions before the first full window are NaN. A window of 1 yields all
// NaN (covariance needs two pairs).
// Complexity: O(n).
func RollingCov(x, y []float64, window int) ([]float64, error) {
	if err := validateWindow(x, y, window); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	w := float64(window)
	var sx, sy, sxy float64
	for i := range x {
		sx += x[i]
		sy += y[i]
		sxy += x[i] * y[i]
		if i >= window {
			sx -= x[i-window]
			sy -= y[i-window]
			sxy -= x[i-window] * y[i-window]
		}
		if i < window-1 {
			out[i] = math.NaN()

			continue
		}
		out[i] = windowCov(sx, sy, sxy, w)
	}

	return out, nil
}

// RollingCorr returns the same-length rolling Pearson correlation of the
// pair, sliding all five running sums (x, y, xy, x², y²) in one pass.
// Degenerate windows (zero variance on either side) are NaN.
// Complexity: O(n).
func RollingCorr(x, y []float64, window int) ([]float64, error) {
	if err := validateWindow(x, y, window); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	w := float64(window)
	var sx, sy, sxy, sxx, syy float64
	for i := range x {
		xi, yi := x[i], y[i]
		sx += xi
		sy += yi
		sxy += xi * yi
		sxx += xi * xi
		syy += yi * yi
		if i >= window {
			xg, yg := x[i-window], y[i-window]
			sx -= xg
			sy -= yg
			sxy -= xg * yg
			sxx -= xg * xg
			syy -= yg * yg
		}
		if i < window-1 {
			out[i] = math.NaN()

			continue
		}
		out[i] = windowCorr(sx, sy, sxy, sxx, syy, w)
	}

	return out, nil
}
