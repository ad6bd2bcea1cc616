package rolling

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyInput indicates an empty input sequence.
var ErrEmptyInput = errors.New("rolling: input sequence must be non-empty")

// ErrBadWindow indicates a window size outside 1..len(xs).
var ErrBadWindow = errors.New("rolling: window must satisfy 1 ≤ window ≤ len(xs)")

// ErrBadAlpha indicates an EWMA smoothing factor outside (0, 1].
var ErrBadAlpha = errors.New("rolling: alpha must satisfy 0 < alpha ≤ 1")

// validate checks the shared window contract for the plain kernels.
func validate(xs []float64, window int) error {
	if len(xs) == 0 {
		return ErrEmptyInput
	}
	if window <= 0 || window > len(xs) {
		return ErrBadWindow
	}

	return nil
}

// nanPrefix fills out[0 : upto] with NaN.
func nanPrefix(out []float64, upto int) {
	for i := 0; i < upto && i < len(out); i++ {
		out[i] = math.NaN()
	}
}

// Mean returns the same-length rolling mean of xs over the given window.
// Positions before the first full window are NaN.
// Complexity: O(n), O(1) per step.
func Mean(xs []float64, window int) ([]float64, error) {
	if err := validate(xs, window); err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	nanPrefix(out, window-1)

	w := float64(window)
	sum := floats.Sum(xs[:window])
	out[window-1] = sum / w
	for i := window; i < len(xs); i++ {
		sum += xs[i] - xs[i-window]
		out[i] = sum / w
	}

	return out, nil
}

// windowVariance derives the unbiased variance from windowed sum and sumSq,
// clamping tiny negative rounding artifacts to zero. NaN for window < 2.
func windowVariance(sum, sumSq, w float64) float64 {
	if w < 2 {
		return math.NaN()
	}
	v := (sumSq - sum*sum/w) / (w - 1)
	if v < 0 {
		v = 0
	}

	return v
}

// Var returns the same-length rolling unbiased variance of xs.
// A window of 1 yields all NaN (variance needs two points).
// Complexity: O(n).
func Var(xs []float64, window int) ([]float64, error) {
	if err := validate(xs, window); err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	nanPrefix(out, window-1)

	w := float64(window)
	var sum, sumSq float64
	for _, x := range xs[:window] {
		sum += x
		sumSq += x * x
	}
	out[window-1] = windowVariance(sum, sumSq, w)
	for i := window; i < len(xs); i++ {
		in, gone := xs[i], xs[i-window]
		sum += in - gone
		sumSq += in*in - gone*gone
		out[i] = windowVariance(sum, sumSq, w)
	}

	return out, nil
}

// Std returns the same-length rolling sample standard deviation of xs.
// Complexity: O(n).
func Std(xs []float64, window int) ([]float64, error) {
	out, err := Var(xs, window)
	if err != nil {
		return nil, err
	}
	for i, v := range out {
		out[i] = math.Sqrt(v)
	}

	return out, nil
}

// MeanStd returns the rolling mean and standard deviation in a single pass
// over shared sliding accumulators.
// Complexity: O(n).
func MeanStd(xs []float64, window int) (means, stds []float64, err error) {
	if err = validate(xs, window); err != nil {
		return nil, nil, err
	}

	means = make([]float64, len(xs))
	stds = make([]float64, len(xs))
	nanPrefix(means, window-1)
	nanPrefix(stds, window-1)

	w := float64(window)
	var sum, sumSq float64
	for _, x := range xs[:window] {
		sum += x
		sumSq += x * x
	}
	means[window-1] = sum / w
	stds[window-1] = math.Sqrt(windowVariance(sum, sumSq, w))
	for i := window; i < len(xs); i++ {
		in, gone := xs[i], xs[i-window]
		sum += in - gone
		sumSq += in*in - gone*gone
		means[i] = sum / w
		stds[i] = math.Sqrt(windowVariance(sum, sumSq, w))
	}

	return means, stds, nil
}

// Zscore returns the rolling z-score (x[i] − mean[i]) / std[i] of the current
// element against its own window. Zero windowed variance yields NaN at that
// position rather than ±Inf.
// Complexity: O(n).
func Zscore(xs []float64, window int) ([]float64, error) {
	means, stds, err := MeanStd(xs, window)
	if err != nil {
		return nil, err
	}

	out := means // reuse: means is consumed position-by-position
	for i := range out {
		s := stds[i]
		if math.IsNaN(s) || s == 0 {
			out[i] = math.NaN()

			continue
		}
		out[i] = (xs[i] - means[i]) / s
	}

	return out, nil
}

// EWMA returns the exponentially weighted moving average with smoothing
// factor alpha: out[0] = x[0], out[i] = α·x[i] + (1−α)·out[i−1]. No bias
// adjustment is applied.
// Complexity: O(n).
func EWMA(xs []float64, alpha float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}
	if alpha <= 0 || alpha > 1 {
		return nil, ErrBadAlpha
	}

	out := make([]float64, len(xs))
	out[0] = xs[0]
	for i := 1; i < len(xs); i++ {
		out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
	}

	return out, nil
}
