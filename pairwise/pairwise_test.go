package pairwise_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/bunkerlabs/bunkerstats/pairwise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// correlatedPair builds a noisy linear pair for reference checks.
func correlatedPair(n int, seed int64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64() * 3
		y[i] = 0.5*x[i] + rng.NormFloat64()*0.2
	}

	return x, y
}

// TestCovCorr_MatchGonum checks the static pair statistics against gonum.
func TestCovCorr_MatchGonum(t *testing.T) {
	x, y := correlatedPair(2_000, 1)

	cov, err := pairwise.Cov(x, y)
	require.NoError(t, err)
	assert.InEpsilon(t, stat.Covariance(x, y, nil), cov, 1e-9, "covariance matches gonum")

	corr, err := pairwise.Corr(x, y)
	require.NoError(t, err)
	assert.InEpsilon(t, stat.Correlation(x, y, nil), corr, 1e-9, "correlation matches gonum")
	assert.Greater(t, corr, 0.9, "strongly dependent pair correlates highly")
}

// TestCovCorr_SymmetryAndSelfCorrelation pins cov(x,y)=cov(y,x) and
// corr(x,x)=1 for non-constant x.
func TestCovCorr_SymmetryAndSelfCorrelation(t *testing.T) {
	x, y := correlatedPair(500, 2)

	cxy, err := pairwise.Cov(x, y)
	require.NoError(t, err)
	cyx, err := pairwise.Cov(y, x)
	require.NoError(t, err)
	assert.Equal(t, cxy, cyx, "covariance is symmetric")

	self, err := pairwise.Corr(x, x)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, self, 1e-12, "corr(x,x)=1 for non-constant x")
}

// TestCovCorr_DegenerateInputs covers zero variance and tiny samples.
func TestCovCorr_DegenerateInputs(t *testing.T) {
	constant := []float64{3, 3, 3}
	varying := []float64{1, 2, 3}

	corr, err := pairwise.Corr(constant, varying)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(corr), "zero variance yields NaN, not ±Inf")

	cov, err := pairwise.Cov([]float64{1}, []float64{2})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(cov), "single pair cannot produce covariance")
}

// TestPair_Validation covers the argument contract.
func TestPair_Validation(t *testing.T) {
	_, err := pairwise.Cov([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, pairwise.ErrLengthMismatch, "length mismatch must error")

	_, err = pairwise.Corr(nil, nil)
	assert.ErrorIs(t, err, pairwise.ErrEmptyInput, "empty pair must error")

	_, err = pairwise.RollingCov([]float64{1, 2}, []float64{1, 2}, 3)
	assert.ErrorIs(t, err, pairwise.ErrBadWindow, "window beyond length must error")
}

// TestRollingCovCorr_MatchPerWindowReference checks every full window against
// gonum on the window slice, plus the NaN prefix.
func TestRollingCovCorr_MatchPerWindowReference(t *testing.T) {
	x, y := correlatedPair(400, 3)
	const w = 25

	covs, err := pairwise.RollingCov(x, y, w)
	require.NoError(t, err)
	corrs, err := pairwise.RollingCorr(x, y, w)
	require.NoError(t, err)
	require.Len(t, covs, len(x), "same-length covariance output")
	require.Len(t, corrs, len(x), "same-length correlation output")

	for i := 0; i < w-1; i++ {
		assert.True(t, math.IsNaN(covs[i]), "cov NaN prefix at %d", i)
		assert.True(t, math.IsNaN(corrs[i]), "corr NaN prefix at %d", i)
	}
	for i := w - 1; i < len(x); i++ {
		xr, yr := x[i-w+1:i+1], y[i-w+1:i+1]
		assert.InDelta(t, stat.Covariance(xr, yr, nil), covs[i], 1e-9, "windowed covariance at %d", i)
		assert.InDelta(t, stat.Correlation(xr, yr, nil), corrs[i], 1e-9, "windowed correlation at %d", i)
	}
}

// TestRollingCorr_DegenerateWindow: constant stretches yield NaN.
func TestRollingCorr_DegenerateWindow(t *testing.T) {
	x := []float64{1, 1, 1, 1, 2, 3}
	y := []float64{5, 4, 3, 2, 1, 0}

	corrs, err := pairwise.RollingCorr(x, y, 3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(corrs[2]), "constant x window has no correlation")
	assert.True(t, math.IsNaN(corrs[3]), "still constant at position 3")
	assert.InDelta(t, -1.0, corrs[5], 1e-9, "perfectly anti-correlated tail window")
}

// BenchmarkRollingCorr measures the five-sum kernel on 100k points.
func BenchmarkRollingCorr(b *testing.B) {
	x, y := correlatedPair(100_000, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pairwise.RollingCorr(x, y, 50); err != nil {
			b.Fatalf("RollingCorr failed: %v", err)
		}
	}
}
