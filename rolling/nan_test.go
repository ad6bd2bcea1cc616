package rolling_test

import (
	"math"
	"testing"

	"github.com/bunkerlabs/bunkerstats/rolling"
	"github.com/bunkerlabs/bunkerstats/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// naiveWindowNaN recomputes the valid subset of the window ending at i.
func naiveWindowNaN(xs []float64, window, i int) []float64 {
	lo := i - window + 1
	if lo < 0 {
		lo = 0
	}

	return seq.ValidValues(xs[lo:i+1], nil)
}

// withNaNs sprinkles NaN into a copy of xs at every k-th index.
func withNaNs(xs []float64, k int) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	for i := 0; i < len(out); i += k {
		out[i] = math.NaN()
	}

	return out
}

// TestMeanNaN_PartialWindowsAndValidSubset checks min_periods=1 semantics:
// values appear from position 0 and track the valid subset of each window.
func TestMeanNaN_PartialWindowsAndValidSubset(t *testing.T) {
	xs := withNaNs(randSeq(400, 10), 7)
	const w = 20

	got, err := rolling.MeanNaN(xs, w, 0)
	require.NoError(t, err)
	require.Len(t, got, len(xs))

	for i := range xs {
		valid := naiveWindowNaN(xs, w, i)
		if len(valid) == 0 {
			assert.True(t, math.IsNaN(got[i]), "no valid point at %d", i)

			continue
		}
		assert.InDelta(t, stat.Mean(valid, nil), got[i], 1e-9, "valid-subset mean at %d", i)
	}

	// partial head window: position 0 is already defined when x[0] is valid
	head, err := rolling.MeanNaN([]float64{2, 4, 6, 8}, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, head[0], "window [0,0]")
	assert.Equal(t, 3.0, head[1], "window [0,1]")
	assert.Equal(t, 4.0, head[2], "window [0,2]")
	assert.Equal(t, 6.0, head[3], "window [1,3]")
}

// TestVarStdNaN_ValidCountPolicy verifies the default minimum of two valid
// points and the valid-subset variance.
func TestVarStdNaN_ValidCountPolicy(t *testing.T) {
	xs := withNaNs(randSeq(300, 11), 5)
	const w = 15

	vars, err := rolling.VarNaN(xs, w, 0)
	require.NoError(t, err)
	stds, err := rolling.StdNaN(xs, w, 0)
	require.NoError(t, err)

	for i := range xs {
		valid := naiveWindowNaN(xs, w, i)
		if len(valid) < 2 {
			assert.True(t, math.IsNaN(vars[i]), "fewer than 2 valid points at %d", i)

			continue
		}
		ref := stat.Variance(valid, nil)
		assert.InEpsilon(t, ref, vars[i], 1e-9, "valid-subset variance at %d", i)
		assert.InEpsilon(t, math.Sqrt(ref), stds[i], 1e-9, "valid-subset std at %d", i)
	}
}

// TestNaNRolling_MinPeriodsOverride checks that a caller-supplied minimum
// suppresses early partial windows.
func TestNaNRolling_MinPeriodsOverride(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6}
	const w = 4

	got, err := rolling.MeanNaN(xs, w, w) // pandas min_periods=window
	require.NoError(t, err)
	for i := 0; i < w-1; i++ {
		assert.True(t, math.IsNaN(got[i]), "partial window suppressed at %d", i)
	}
	ref, err := rolling.Mean(xs, w)
	require.NoError(t, err)
	assert.InDeltaSlice(t, ref[w-1:], got[w-1:], 1e-12, "full windows agree with the plain kernel")
}

// TestZscoreNaN_CurrentElementRules: NaN inputs stay NaN, valid inputs are
// standardized against the window's valid subset.
func TestZscoreNaN_CurrentElementRules(t *testing.T) {
	xs := withNaNs(randSeq(250, 12), 6)
	const w = 12

	got, err := rolling.ZscoreNaN(xs, w, 0)
	require.NoError(t, err)

	for i, x := range xs {
		if math.IsNaN(x) {
			assert.True(t, math.IsNaN(got[i]), "NaN input stays NaN at %d", i)

			continue
		}
		valid := naiveWindowNaN(xs, w, i)
		if len(valid) < 2 {
			assert.True(t, math.IsNaN(got[i]), "insufficient valid points at %d", i)

			continue
		}
		ref := (x - stat.Mean(valid, nil)) / stat.StdDev(valid, nil)
		assert.InDelta(t, ref, got[i], 1e-9, "NaN-aware z-score at %d", i)
	}
}

// TestNaNRolling_AllNaNInput propagates NaN everywhere without error.
func TestNaNRolling_AllNaNInput(t *testing.T) {
	xs := []float64{math.NaN(), math.NaN(), math.NaN()}

	got, err := rolling.MeanNaN(xs, 2, 0)
	require.NoError(t, err)
	for i, v := range got {
		assert.True(t, math.IsNaN(v), "all-NaN input yields NaN at %d", i)
	}
}
