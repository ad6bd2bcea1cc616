package describe

import (
	"errors"
	"math"
	"sort"

	"github.com/bunkerlabs/bunkerstats/seq"
)

// ErrBadQuantile indicates winsorization bounds outside 0 ≤ lower ≤ upper ≤ 1.
var ErrBadQuantile = errors.New("describe: quantile bounds must satisfy 0 ≤ lower ≤ upper ≤ 1")

// ErrBadBins indicates a non-positive bin count.
var ErrBadBins = errors.New("describe: bin count must be ≥ 1")

// madZeroEps replaces a zero MAD denominator in RobustScale so that constant
// stretches scale to large finite values instead of ±Inf.
const madZeroEps = 1e-12

// defaultMADFactor is the normal-consistency constant 1/Φ⁻¹(3/4).
const defaultMADFactor = 1.4826

// MinMaxScale maps xs into [0, 1] as (x − min) / (max − min) and returns the
// scaled sequence together with the observed min and max. A constant input
// (max == min) yields an all-NaN scaled sequence; an empty input yields
// (nil, NaN, NaN).
// Complexity: O(n).
func MinMaxScale(xs []float64) (scaled []float64, minV, maxV float64) {
	if len(xs) == 0 {
		return nil, math.NaN(), math.NaN()
	}
	minV, maxV = xs[0], xs[0]
	for _, x := range xs {
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
	}

	scaled = make([]float64, len(xs))
	span := maxV - minV
	if span == 0 {
		for i := range scaled {
			scaled[i] = math.NaN()
		}

		return scaled, minV, maxV
	}
	for i, x := range xs {
		scaled[i] = (x - minV) / span
	}

	return scaled, minV, maxV
}

// RobustScale centers xs on the median and scales by MAD·factor, returning
// the scaled sequence, the median and the (uncorrected) MAD. A non-positive
// factor selects the normal-consistency default 1.4826. When the MAD is
// exactly zero the denominator is substituted with 1e-12 instead of dividing
// by zero. An empty input yields (nil, NaN, NaN).
// Complexity: O(n·log n).
func RobustScale(xs []float64, factor float64) (scaled []float64, median, mad float64) {
	if len(xs) == 0 {
		return nil, math.NaN(), math.NaN()
	}
	if factor <= 0 {
		factor = defaultMADFactor
	}
	median = seq.Median(xs)
	mad = MAD(xs)

	denom := mad * factor
	if mad == 0 {
		denom = madZeroEps
	}
	scaled = make([]float64, len(xs))
	for i, x := range xs {
		scaled[i] = (x - median) / denom
	}

	return scaled, median, mad
}

// Winsorize clips xs to the [lowerQ, upperQ] quantile values: anything below
// the lower quantile becomes that quantile, anything above the upper quantile
// becomes that quantile. Returns ErrBadQuantile for inverted or out-of-range
// bounds.
// Complexity: O(n·log n).
func Winsorize(xs []float64, lowerQ, upperQ float64) ([]float64, error) {
	if lowerQ < 0 || upperQ > 1 || lowerQ > upperQ {
		return nil, ErrBadQuantile
	}
	if len(xs) == 0 {
		return []float64{}, nil
	}

	sorted := seq.SortedCopy(xs)
	low := seq.QuantileFromSorted(sorted, lowerQ)
	high := seq.QuantileFromSorted(sorted, upperQ)

	out := make([]float64, len(xs))
	for i, x := range xs {
		switch {
		case x < low:
			out[i] = low
		case x > high:
			out[i] = high
		default:
			out[i] = x
		}
	}

	return out, nil
}

// QuantileBins assigns each element of xs an integer bin in [0, nBins−1]
// based on nBins+1 quantile edges of the data. A value sitting exactly on an
// interior edge is assigned to the lower bin. Returns ErrBadBins when
// nBins < 1; an empty input yields an empty bin slice.
// Complexity: O(n·log n) for edges plus O(n·log nBins) for assignment.
func QuantileBins(xs []float64, nBins int) ([]int, error) {
	if nBins < 1 {
		return nil, ErrBadBins
	}
	if len(xs) == 0 {
		return []int{}, nil
	}

	sorted := seq.SortedCopy(xs)
	// interior edges e_1..e_{nBins-1}; e_0 and e_nBins are the extremes and
	// never separate values from their bins
	interior := make([]float64, nBins-1)
	for i := 1; i < nBins; i++ {
		interior[i-1] = seq.QuantileFromSorted(sorted, float64(i)/float64(nBins))
	}

	bins := make([]int, len(xs))
	for i, x := range xs {
		// bin = number of interior edges strictly below x, so boundary
		// values collapse into the lower bin
		bins[i] = sort.Search(len(interior), func(j int) bool { return interior[j] >= x })
	}

	return bins, nil
}
