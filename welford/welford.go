package welford

import "math"

// Accumulator maintains running count, mean and the sum of squared deviations
// (M2) under Welford's one-pass update. The zero value is ready to use.
type Accumulator struct {
	count int
	mean  float64
	m2    float64
}

// Add incorporates one observation into the running statistics.
// Complexity: O(1).
func (a *Accumulator) Add(x float64) {
	a.count++
	delta := x - a.mean
	a.mean += delta / float64(a.count)
	delta2 := x - a.mean
	a.m2 += delta * delta2
}

// Count returns the number of observations added so far.
func (a *Accumulator) Count() int { return a.count }

// Mean returns the running mean, or NaN before the first observation.
func (a *Accumulator) Mean() float64 {
	if a.count == 0 {
		return math.NaN()
	}

	return a.mean
}

// Variance returns the unbiased sample variance M2/(count−1),
// or NaN when fewer than two observations have been added.
func (a *Accumulator) Variance() float64 {
	if a.count < 2 {
		return math.NaN()
	}

	return a.m2 / float64(a.count-1)
}

// Std returns the sample standard deviation, or NaN when Variance is NaN.
func (a *Accumulator) Std() float64 {
	return math.Sqrt(a.Variance())
}

// Summarize runs the accumulator over xs in one pass and returns
// (mean, sample variance, count). Mean is NaN for an empty input and
// variance is NaN when count < 2.
// Complexity: O(n), no allocations.
func Summarize(xs []float64) (mean, variance float64, n int) {
	var acc Accumulator
	for _, x := range xs {
		acc.Add(x)
	}

	return acc.Mean(), acc.Variance(), acc.Count()
}
