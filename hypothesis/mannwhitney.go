package hypothesis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// MannWhitneyResult carries a Mann-Whitney U test outcome. U is the
// statistic of the first sample: 0 when every x sits below every y,
// n1·n2 when every x sits above.
type MannWhitneyResult struct {
	U      float64
	PValue float64
}

// midRanks assigns 1-based ranks to the combined sample, averaging ranks
// inside tie groups, and returns the tie-correction term Σ(t³−t).
func midRanks(combined []float64) (ranks []float64, tieTerm float64) {
	n := len(combined)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return combined[idx[a]] < combined[idx[b]] })

	ranks = make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && combined[idx[j]] == combined[idx[i]] {
			j++
		}
		// tie group [i, j): each member gets the average rank
		avg := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		t := float64(j - i)
		tieTerm += t*t*t - t
		i = j
	}

	return ranks, tieTerm
}

// MannWhitneyU performs the Mann-Whitney U rank test on two independent
// samples. Ties receive averaged mid-ranks; U derives from x's rank-sum as
// U = R1 − n1(n1+1)/2. The p-value uses the tie-corrected normal
// approximation with a 0.5 continuity correction; when every observation is
// tied the p-value is NaN. Empty samples are ErrInsufficientData.
// Complexity: O((n1+n2)·log(n1+n2)).
func MannWhitneyU(x, y []float64, alt Alternative) (MannWhitneyResult, error) {
	if err := validateAlt(alt); err != nil {
		return MannWhitneyResult{}, err
	}
	n1, n2 := len(x), len(y)
	if n1 == 0 || n2 == 0 {
		return MannWhitneyResult{}, ErrInsufficientData
	}

	combined := make([]float64, 0, n1+n2)
	combined = append(combined, x...)
	combined = append(combined, y...)
	ranks, tieTerm := midRanks(combined)

	var r1 float64
	for i := 0; i < n1; i++ {
		r1 += ranks[i]
	}
	f1, f2 := float64(n1), float64(n2)
	u := r1 - f1*(f1+1)/2

	total := f1 + f2
	mu := f1 * f2 / 2
	sigma2 := f1 * f2 / 12 * ((total + 1) - tieTerm/(total*(total-1)))
	if sigma2 <= 0 {
		return MannWhitneyResult{U: u, PValue: math.NaN()}, nil
	}
	sigma := math.Sqrt(sigma2)

	// continuity correction shrinks |U − mu| by half a step
	var p float64
	switch alt {
	case TwoSided:
		z := (math.Abs(u-mu) - 0.5) / sigma
		p = math.Min(1, 2*distuv.UnitNormal.Survival(z))
	case Greater:
		z := (u - mu - 0.5) / sigma
		p = distuv.UnitNormal.Survival(z)
	case Less:
		z := (u - mu + 0.5) / sigma
		p = distuv.UnitNormal.CDF(z)
	}

	return MannWhitneyResult{U: u, PValue: p}, nil
}
