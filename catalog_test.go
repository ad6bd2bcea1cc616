package bunkerstats_test

import (
	"fmt"
	"math"
	"testing"

	bunkerstats "github.com/bunkerlabs/bunkerstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFacade_EndToEnd drives one function of each family through the root
// re-exports, so a rename in any subpackage breaks here first.
func TestFacade_EndToEnd(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.InDelta(t, 5.0, bunkerstats.Mean(xs), 1e-12, "descriptive mean")
	assert.InDelta(t, 32.0/7.0, bunkerstats.Var(xs), 1e-9, "unbiased variance")

	var acc bunkerstats.Accumulator
	for _, x := range xs {
		acc.Add(x)
	}
	assert.InDelta(t, bunkerstats.Mean(xs), acc.Mean(), 1e-12, "streaming mean agrees")

	means, err := bunkerstats.RollingMean(xs, 4)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(means[2]), "NaN prefix before the first full window")
	assert.InDelta(t, 3.5, means[3], 1e-12, "first full window mean")

	corr, err := bunkerstats.Corr(xs, xs)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, corr, 1e-12, "self correlation")

	res, err := bunkerstats.OneSampleTTest(xs, 5.0, bunkerstats.TwoSided)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Statistic, 1e-12, "mean equals the null mean")
	assert.InDelta(t, 1.0, res.PValue, 1e-12, "null-true p-value")
}

// ExampleSummarize shows the one-import surface of the root package.
func ExampleSummarize() {
	mean, variance, n := bunkerstats.Summarize([]float64{1, 2, 3, 4, 5})
	fmt.Printf("mean=%.1f variance=%.1f n=%d\n", mean, variance, n)
	// Output: mean=3.0 variance=2.5 n=5
}
