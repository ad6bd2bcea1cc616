package transform

import "github.com/bunkerlabs/bunkerstats/seq"

// ECDF returns the empirical cumulative distribution function of xs as two
// parallel slices: values sorted ascending and cumulative rank probabilities
// (i+1)/n. The probability sequence is non-decreasing and ends exactly at 1.
// Complexity: O(n·log n).
func ECDF(xs []float64) (values, probs []float64, err error) {
	if len(xs) == 0 {
		return nil, nil, ErrEmptyInput
	}

	values = seq.SortedCopy(xs)
	probs = make([]float64, len(xs))
	n := float64(len(xs))
	for i := range probs {
		probs[i] = float64(i+1) / n
	}

	return values, probs, nil
}
