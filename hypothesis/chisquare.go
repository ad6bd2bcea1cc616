package hypothesis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/bunkerlabs/bunkerstats/seq"
)

// ErrLengthMismatch indicates observed/expected slices of different lengths.
var ErrLengthMismatch = errors.New("hypothesis: observed and expected must have equal length")

// ErrBadExpected indicates a non-positive expected count.
var ErrBadExpected = errors.New("hypothesis: expected counts must be positive")

// ErrBadTable indicates a contingency table the test cannot use: fewer than
// two rows or columns, a negative cell, or an empty marginal.
var ErrBadTable = errors.New("hypothesis: contingency table must be at least 2×2 with non-negative cells and non-empty marginals")

// ChiSquareResult carries a chi-square test outcome.
type ChiSquareResult struct {
	Statistic float64
	PValue    float64
	DF        int
}

// ChiSquareGOF tests observed counts against expected counts:
// χ² = Σ(oᵢ−eᵢ)²/eᵢ with df = k−1. The upper tail of the chi-squared
// distribution gives the p-value. Fewer than two categories is
// ErrInsufficientData; a non-positive expected count is ErrBadExpected.
// Complexity: O(k).
func ChiSquareGOF(obs, exp []float64) (ChiSquareResult, error) {
	if len(obs) != len(exp) {
		return ChiSquareResult{}, ErrLengthMismatch
	}
	if len(obs) < 2 {
		return ChiSquareResult{}, ErrInsufficientData
	}

	var stat float64
	for i := range obs {
		if exp[i] <= 0 {
			return ChiSquareResult{}, ErrBadExpected
		}
		d := obs[i] - exp[i]
		stat += d * d / exp[i]
	}
	df := len(obs) - 1
	p := distuv.ChiSquared{K: float64(df)}.Survival(stat)

	return ChiSquareResult{Statistic: stat, PValue: p, DF: df}, nil
}

// ChiSquareIndependence tests independence of the two factors of an r×c
// contingency table. Expected counts come from the row/column marginal
// proportions; df = (r−1)(c−1). Tables smaller than 2×2, with negative
// cells or with an empty marginal are ErrBadTable.
// Complexity: O(r·c).
func ChiSquareIndependence(table *seq.Matrix) (ChiSquareResult, error) {
	if table == nil || table.Rows() < 2 || table.Cols() < 2 {
		return ChiSquareResult{}, ErrBadTable
	}
	r, c := table.Rows(), table.Cols()

	rowSums := make([]float64, r)
	colSums := make([]float64, c)
	var total float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := table.At(i, j)
			if err != nil {
				return ChiSquareResult{}, err
			}
			if v < 0 {
				return ChiSquareResult{}, ErrBadTable
			}
			rowSums[i] += v
			colSums[j] += v
			total += v
		}
	}
	if total == 0 {
		return ChiSquareResult{}, ErrBadTable
	}
	for _, s := range rowSums {
		if s == 0 {
			return ChiSquareResult{}, ErrBadTable
		}
	}
	for _, s := range colSums {
		if s == 0 {
			return ChiSquareResult{}, ErrBadTable
		}
	}

	var stat float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			expected := rowSums[i] * colSums[j] / total
			v, _ := table.At(i, j) // bounds already walked above
			d := v - expected
			stat += d * d / expected
		}
	}
	df := (r - 1) * (c - 1)
	p := distuv.ChiSquared{K: float64(df)}.Survival(stat)
	if math.IsNaN(stat) {
		p = math.NaN()
	}

	return ChiSquareResult{Statistic: stat, PValue: p, DF: df}, nil
}
