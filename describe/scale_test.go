package describe_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/bunkerlabs/bunkerstats/describe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinMaxScale_RangeAndDegenerate checks the [0,1] mapping and the
// constant-input contract.
func TestMinMaxScale_RangeAndDegenerate(t *testing.T) {
	scaled, minV, maxV := describe.MinMaxScale([]float64{5, 10, 7.5, 0})
	assert.Equal(t, 0.0, minV, "observed minimum")
	assert.Equal(t, 10.0, maxV, "observed maximum")
	assert.InDeltaSlice(t, []float64{0.5, 1, 0.75, 0}, scaled, 1e-12, "(x−min)/(max−min)")

	scaled, _, _ = describe.MinMaxScale([]float64{3, 3, 3})
	for i, v := range scaled {
		assert.True(t, math.IsNaN(v), "constant input scales to NaN at %d", i)
	}

	scaled, minV, maxV = describe.MinMaxScale(nil)
	assert.Nil(t, scaled, "empty input yields nil output")
	assert.True(t, math.IsNaN(minV) && math.IsNaN(maxV), "empty extremes are NaN")
}

// TestRobustScale_MedianMADAndEpsilon covers the median/MAD transform and the
// zero-MAD epsilon substitution.
func TestRobustScale_MedianMADAndEpsilon(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 9}
	scaled, median, mad := describe.RobustScale(xs, 1.4826)

	assert.Equal(t, 3.0, median, "median of the sample")
	assert.Equal(t, 1.0, mad, "MAD of the sample")
	for i, x := range xs {
		assert.InDelta(t, (x-3.0)/1.4826, scaled[i], 1e-12, "scaled value at %d", i)
	}

	// non-positive factor selects the 1.4826 default
	defScaled, _, _ := describe.RobustScale(xs, 0)
	assert.InDeltaSlice(t, scaled, defScaled, 1e-15, "factor 0 means the default factor")

	// zero MAD: denominator becomes 1e-12, results stay finite
	scaled, _, mad = describe.RobustScale([]float64{2, 2, 2, 2, 100}, 1.4826)
	assert.Equal(t, 0.0, mad, "MAD collapses on a near-constant sample")
	for i, v := range scaled {
		assert.False(t, math.IsInf(v, 0), "epsilon keeps value %d finite", i)
	}
	assert.InDelta(t, 98/1e-12, scaled[4], 1e3, "outlier scales by the epsilon denominator")
}

// TestWinsorize_ClipsToQuantiles verifies tail clipping and validation.
func TestWinsorize_ClipsToQuantiles(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}

	out, err := describe.Winsorize(xs, 0.1, 0.9)
	require.NoError(t, err)

	low := describe.Percentile(xs, 0.1)
	high := describe.Percentile(xs, 0.9)
	for i, v := range out {
		assert.GreaterOrEqual(t, v, low, "no value below the lower quantile at %d", i)
		assert.LessOrEqual(t, v, high, "no value above the upper quantile at %d", i)
	}
	assert.Equal(t, high, out[len(out)-1], "the extreme is clipped, not removed")
	assert.Equal(t, xs[4], out[4], "interior values pass through")

	_, err = describe.Winsorize(xs, 0.9, 0.1)
	assert.ErrorIs(t, err, describe.ErrBadQuantile, "inverted bounds must error")
	_, err = describe.Winsorize(xs, -0.1, 0.9)
	assert.ErrorIs(t, err, describe.ErrBadQuantile, "negative bound must error")
}

// TestQuantileBins_RangeBoundaryAndCoverage pins the binning contract:
// indices in [0, nBins−1], boundary values to the lower bin, and no empty
// bins on a large uniform sample.
func TestQuantileBins_RangeBoundaryAndCoverage(t *testing.T) {
	const nBins = 5

	rng := rand.New(rand.NewSource(11))
	xs := make([]float64, 10*nBins*20)
	for i := range xs {
		xs[i] = rng.Float64()
	}

	bins, err := describe.QuantileBins(xs, nBins)
	require.NoError(t, err)
	require.Len(t, bins, len(xs))

	counts := make([]int, nBins)
	for i, b := range bins {
		require.GreaterOrEqual(t, b, 0, "bin at %d below range", i)
		require.Less(t, b, nBins, "bin at %d above range", i)
		counts[b]++
	}
	for b, c := range counts {
		assert.Positive(t, c, "uniform input must populate bin %d", b)
	}

	// boundary behavior: with values 0..9 and two bins the interior edge is
	// 4.5, so 0..4 land in bin 0 and 5..9 in bin 1; the minimum maps to 0
	small, err := describe.QuantileBins([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}, small, "interior edge splits symmetrically")

	_, err = describe.QuantileBins(xs, 0)
	assert.ErrorIs(t, err, describe.ErrBadBins, "zero bins must error")

	empty, err := describe.QuantileBins(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, empty, "empty input yields empty bins")
}

// TestOutliers_IQRAndZscore covers both flagging rules, including the worked
// ten-point sample where exactly 50 and −20 are outliers.
func TestOutliers_IQRAndZscore(t *testing.T) {
	xs := []float64{10, 12, 11, 13, 9, 8, 50, -20, 10, 11}

	iqrMask := describe.IQROutliers(xs, 1.5)
	expected := []bool{false, false, false, false, false, false, true, true, false, false}
	assert.Equal(t, expected, iqrMask, "exactly 50 and −20 breach the Tukey fences")

	// mean 11.4, std ≈16.70: z(50) ≈ 2.31 breaches 2.0, z(−20) ≈ −1.88 does not
	zMask := describe.ZscoreOutliers(xs, 2.0)
	assert.True(t, zMask[6], "50 is a z-score outlier at threshold 2")
	for i, flagged := range zMask {
		if i == 6 {
			continue
		}
		assert.False(t, flagged, "index %d within threshold", i)
	}

	for i, flagged := range describe.ZscoreOutliers([]float64{4, 4, 4}, 1) {
		assert.False(t, flagged, "zero variance flags nothing at %d", i)
	}
}
