package welford_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/bunkerlabs/bunkerstats/welford"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

// twoPassVariance is the direct reference: mean first, then squared deviations.
func twoPassVariance(xs []float64) (float64, float64) {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}

	return mean, ss / float64(len(xs)-1)
}

// TestAccumulator_EmptyAndSingle verifies the NaN contract below two points.
func TestAccumulator_EmptyAndSingle(t *testing.T) {
	var acc welford.Accumulator
	assert.Equal(t, 0, acc.Count(), "zero value starts empty")
	assert.True(t, math.IsNaN(acc.Mean()), "mean of nothing is NaN")
	assert.True(t, math.IsNaN(acc.Variance()), "variance of nothing is NaN")

	acc.Add(5)
	assert.Equal(t, 5.0, acc.Mean(), "mean of one point is the point")
	assert.True(t, math.IsNaN(acc.Variance()), "variance needs two points")
	assert.True(t, math.IsNaN(acc.Std()), "std follows variance")
}

// TestAccumulator_MatchesTwoPass checks the 1e-9 relative tolerance property
// on random data.
func TestAccumulator_MatchesTwoPass(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	xs := make([]float64, 10_000)
	for i := range xs {
		xs[i] = rng.NormFloat64()*3 + 10
	}

	mean, variance, n := welford.Summarize(xs)
	refMean, refVar := twoPassVariance(xs)

	assert.Equal(t, len(xs), n, "count matches input length")
	assert.InEpsilon(t, refMean, mean, 1e-9, "mean matches two-pass")
	assert.InEpsilon(t, refVar, variance, 1e-9, "variance matches two-pass")

	// cross-check against gonum's implementation as an independent reference
	assert.InEpsilon(t, stat.Mean(xs, nil), mean, 1e-12, "mean matches gonum")
	assert.InEpsilon(t, stat.Variance(xs, nil), variance, 1e-9, "variance matches gonum")
}

// TestAccumulator_LargeOffset is the catastrophic-cancellation regression:
// a huge common offset must not destroy the variance.
func TestAccumulator_LargeOffset(t *testing.T) {
	base := []float64{4, 7, 13, 16}
	offset := 1e9
	shifted := make([]float64, len(base))
	for i, x := range base {
		shifted[i] = x + offset
	}

	_, variance, _ := welford.Summarize(shifted)
	_, refVar := twoPassVariance(base) // variance is shift-invariant

	assert.InEpsilon(t, refVar, variance, 1e-9, "offset by 1e9 keeps full precision")
}

// TestAccumulator_IncrementalEqualsBatch verifies Add-by-Add equals Summarize.
func TestAccumulator_IncrementalEqualsBatch(t *testing.T) {
	xs := []float64{2.5, -1, 0, 3.75, 9}

	var acc welford.Accumulator
	for _, x := range xs {
		acc.Add(x)
	}
	mean, variance, n := welford.Summarize(xs)

	assert.Equal(t, n, acc.Count())
	assert.Equal(t, mean, acc.Mean(), "incremental mean equals batch")
	assert.Equal(t, variance, acc.Variance(), "incremental variance equals batch")
}

// BenchmarkSummarize measures the one-pass kernel on 100k points.
func BenchmarkSummarize(b *testing.B) {
	xs := make([]float64, 100_000)
	for i := range xs {
		xs[i] = float64(i%97) * 0.5
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		welford.Summarize(xs)
	}
}
