package hypothesis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/bunkerlabs/bunkerstats/welford"
)

// ErrBadAlternative indicates an Alternative outside the defined enum.
var ErrBadAlternative = errors.New("hypothesis: alternative must be TwoSided, Greater or Less")

// ErrInsufficientData indicates a sample too small to carry the test.
var ErrInsufficientData = errors.New("hypothesis: sample too small for this test")

// Alternative selects which tail of the sampling distribution forms the
// p-value.
type Alternative int

const (
	// TwoSided tests departure in either direction.
	TwoSided Alternative = iota
	// Greater tests whether the first sample tends larger.
	Greater
	// Less tests whether the first sample tends smaller.
	Less
)

// String returns the conventional name of the alternative.
func (a Alternative) String() string {
	switch a {
	case TwoSided:
		return "two-sided"
	case Greater:
		return "greater"
	case Less:
		return "less"
	default:
		return "unknown"
	}
}

// validateAlt rejects values outside the enum before any computation.
func validateAlt(alt Alternative) error {
	if alt < TwoSided || alt > Less {
		return ErrBadAlternative
	}

	return nil
}

// continuousDist is the slice of distuv behaviour the p-value helper needs.
type continuousDist interface {
	CDF(x float64) float64
	Survival(x float64) float64
}

// pValue maps a test statistic to a p-value under the chosen alternative.
// Two-sided doubling assumes a symmetric null distribution.
func pValue(dist continuousDist, stat float64, alt Alternative) (float64, error) {
	if math.IsNaN(stat) {
		return math.NaN(), nil
	}
	switch alt {
	case TwoSided:
		return math.Min(1, 2*dist.Survival(math.Abs(stat))), nil
	case Greater:
		return dist.Survival(stat), nil
	case Less:
		return dist.CDF(stat), nil
	default:
		return 0, ErrBadAlternative
	}
}

// TTestResult carries a t-test outcome.
type TTestResult struct {
	Statistic float64
	PValue    float64
	DF        float64
}

// OneSampleTTest tests whether the mean of xs differs from mu:
// t = (mean − mu)/(std/√n) with df = n−1. A zero-variance sample yields a
// NaN statistic and p-value. Fewer than two observations is
// ErrInsufficientData.
// Complexity: O(n).
func OneSampleTTest(xs []float64, mu float64, alt Alternative) (TTestResult, error) {
	if err := validateAlt(alt); err != nil {
		return TTestResult{}, err
	}
	mean, variance, n := welford.Summarize(xs)
	if n < 2 {
		return TTestResult{}, ErrInsufficientData
	}

	df := float64(n - 1)
	stat := math.NaN()
	if variance > 0 {
		stat = (mean - mu) / math.Sqrt(variance/float64(n))
	}
	p, err := pValue(distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}, stat, alt)
	if err != nil {
		return TTestResult{}, err
	}

	return TTestResult{Statistic: stat, PValue: p, DF: df}, nil
}

// TwoSampleTTest tests whether the means of two independent samples differ.
// With equalVar the pooled-variance form applies, df = n1+n2−2; otherwise
// Welch's form with the Welch-Satterthwaite df. Either sample below two
// observations is ErrInsufficientData; zero variance on both sides yields
// NaN.
// Complexity: O(n1+n2).
func TwoSampleTTest(x, y []float64, equalVar bool, alt Alternative) (TTestResult, error) {
	if err := validateAlt(alt); err != nil {
		return TTestResult{}, err
	}
	m1, v1, n1 := welford.Summarize(x)
	m2, v2, n2 := welford.Summarize(y)
	if n1 < 2 || n2 < 2 {
		return TTestResult{}, ErrInsufficientData
	}
	f1, f2 := float64(n1), float64(n2)

	var stat, df float64
	if equalVar {
		df = f1 + f2 - 2
		pooled := ((f1-1)*v1 + (f2-1)*v2) / df
		denom := math.Sqrt(pooled * (1/f1 + 1/f2))
		stat = math.NaN()
		if denom > 0 {
			stat = (m1 - m2) / denom
		}
	} else {
		a := v1 / f1
		b := v2 / f2
		denom := math.Sqrt(a + b)
		stat = math.NaN()
		df = math.NaN()
		if denom > 0 {
			stat = (m1 - m2) / denom
			df = (a + b) * (a + b) / (a*a/(f1-1) + b*b/(f2-1))
		}
	}
	if math.IsNaN(stat) {
		return TTestResult{Statistic: math.NaN(), PValue: math.NaN(), DF: df}, nil
	}

	p, err := pValue(distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}, stat, alt)
	if err != nil {
		return TTestResult{}, err
	}

	return TTestResult{Statistic: stat, PValue: p, DF: df}, nil
}
