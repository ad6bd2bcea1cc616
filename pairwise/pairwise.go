package pairwise

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyInput indicates an empty input sequence.
var ErrEmptyInput = errors.New("pairwise: input sequences must be non-empty")

// ErrLengthMismatch indicates that the two sequences differ in length.
var ErrLengthMismatch = errors.New("pairwise: sequences must have equal length")

// ErrBadWindow indicates a window size outside 1..len(x).
var ErrBadWindow = errors.New("pairwise: window must satisfy 1 ≤ window ≤ len(x)")

// validatePair checks the shared pair contract.
func validatePair(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return ErrEmptyInput
	}
	if len(x) != len(y) {
		return ErrLengthMismatch
	}

	return nil
}

// Cov returns the unbiased sample covariance Σ(xᵢ−mx)(yᵢ−my)/(n−1).
// Fewer than two observations yield NaN.
// Complexity: O(n).
func Cov(x, y []float64) (float64, error) {
	if err := validatePair(x, y); err != nil {
		return 0, err
	}
	n := len(x)
	if n < 2 {
		return math.NaN(), nil
	}

	mx := floats.Sum(x) / float64(n)
	my := floats.Sum(y) / float64(n)
	var acc float64
	for i := 0; i < n; i++ {
		acc += (x[i] - mx) * (y[i] - my)
	}

	return acc / float64(n-1), nil
}

// covCorr computes covariance and correlation in one pass over centered
// products, returning NaN correlation when either side has zero variance.
func covCorr(x, y []float64) (cov, corr float64) {
	n := float64(len(x))
	mx := floats.Sum(x) / n
	my := floats.Sum(y) / n

	var sxy, sxx, syy float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	cov = sxy / (n - 1)
	if sxx == 0 || syy == 0 {
		return cov, math.NaN()
	}

	return cov, sxy / math.Sqrt(sxx*syy)
}

// Corr returns the Pearson correlation coefficient cov/(std_x·std_y).
// Zero variance on either side yields NaN; fewer than two observations
// yield NaN.
// Complexity: O(n).
func Corr(x, y []float64) (float64, error) {
	if err := validatePair(x, y); err != nil {
		return 0, err
	}
	if len(x) < 2 {
		return math.NaN(), nil
	}
	_, corr := covCorr(x, y)

	return corr, nil
}
