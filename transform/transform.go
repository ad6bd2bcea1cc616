package transform

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyInput indicates an empty input sequence.
var ErrEmptyInput = errors.New("transform: input sequence must be non-empty")

// ErrBadPeriods indicates a lag below 1.
var ErrBadPeriods = errors.New("transform: periods must be ≥ 1")

// Diff returns the lagged difference out[i] = xs[i] − xs[i−periods].
// The first periods positions are NaN; a lag of len(xs) or more yields an
// all-NaN sequence.
// Complexity: O(n).
func Diff(xs []float64, periods int) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}
	if periods < 1 {
		return nil, ErrBadPeriods
	}

	out := make([]float64, len(xs))
	for i := range xs {
		if i < periods {
			out[i] = math.NaN()

			continue
		}
		out[i] = xs[i] - xs[i-periods]
	}

	return out, nil
}

// PctChange returns the lagged relative change out[i] = xs[i]/xs[i−periods] − 1.
// The first periods positions are NaN, and a zero base (±Inf result) is
// converted to NaN rather than propagated.
// Complexity: O(n).
func PctChange(xs []float64, periods int) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}
	if periods < 1 {
		return nil, ErrBadPeriods
	}

	out := make([]float64, len(xs))
	for i := range xs {
		if i < periods {
			out[i] = math.NaN()

			continue
		}
		v := xs[i]/xs[i-periods] - 1
		if math.IsInf(v, 0) {
			v = math.NaN()
		}
		out[i] = v
	}

	return out, nil
}

// CumSum returns the running prefix sum of xs.
// Complexity: O(n).
func CumSum(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}

	return floats.CumSum(make([]float64, len(xs)), xs), nil
}

// CumMean returns the running prefix mean out[i] = (Σ_{k≤i} xs[k]) / (i+1).
// Complexity: O(n).
func CumMean(xs []float64) ([]float64, error) {
	out, err := CumSum(xs)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] /= float64(i + 1)
	}

	return out, nil
}
