package transform

import (
	"errors"
	"math"

	"github.com/bunkerlabs/bunkerstats/seq"
	"github.com/bunkerlabs/bunkerstats/welford"
)

// ErrBadGrid indicates a KDE grid with fewer than two points.
var ErrBadGrid = errors.New("transform: KDE grid must have at least 2 points")

// KDEOptions configures the Gaussian kernel density estimate.
//
// Fields:
//   - GridSize — number of evenly spaced evaluation points (≥ 2).
//   - Bandwidth — kernel bandwidth; any non-positive value selects the
//     robust Silverman rule of thumb 0.9·min(s, IQR/1.34)·n^(−1/5).
//   - Cut — how many bandwidths the grid extends beyond [min, max], so the
//     density tails are not truncated at the data edges.
type KDEOptions struct {
	GridSize  int
	Bandwidth float64
	Cut       float64
}

// DefaultKDEOptions returns the default KDE configuration:
// a 512-point grid, rule-of-thumb bandwidth, 3-bandwidth padding.
func DefaultKDEOptions() KDEOptions {
	return KDEOptions{GridSize: 512, Bandwidth: 0, Cut: 3}
}

// silvermanBandwidth derives the rule-of-thumb bandwidth from the sample
// spread. The robust form 0.9·min(s, IQR/1.34)·n^(−1/5) resists heavy tails;
// when the IQR degenerates to zero it falls back to 1.06·s·n^(−1/5), and for
// constant data (s = 0) to a fixed unit bandwidth so the estimate stays a
// proper density.
func silvermanBandwidth(xs []float64) float64 {
	_, variance, n := welford.Summarize(xs)
	s := math.Sqrt(variance)
	if n < 2 || s == 0 || math.IsNaN(s) {
		return 1.0
	}

	sorted := seq.SortedCopy(xs)
	iqr := seq.QuantileFromSorted(sorted, 0.75) - seq.QuantileFromSorted(sorted, 0.25)
	scale := s
	if iqr > 0 && iqr/1.34 < scale {
		scale = iqr / 1.34
	}
	factor := 0.9
	if iqr == 0 {
		factor = 1.06
	}

	return factor * scale * math.Pow(float64(n), -1.0/5.0)
}

// KDE returns a Gaussian kernel density estimate of xs evaluated on an
// evenly spaced grid. A nil opts selects DefaultKDEOptions. The grid spans
// [min − Cut·bw, max + Cut·bw]; the density is the kernel-sum average
// Σ φ((g−xᵢ)/bw) / (n·bw) and integrates to approximately 1 over the grid.
// Complexity: O(n·GridSize).
func KDE(xs []float64, opts *KDEOptions) (grid, density []float64, err error) {
	if len(xs) == 0 {
		return nil, nil, ErrEmptyInput
	}
	o := DefaultKDEOptions()
	if opts != nil {
		o = *opts
	}
	if o.GridSize < 2 {
		return nil, nil, ErrBadGrid
	}
	if o.Cut < 0 {
		o.Cut = 0
	}

	bw := o.Bandwidth
	if bw <= 0 {
		bw = silvermanBandwidth(xs)
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	lo -= o.Cut * bw
	hi += o.Cut * bw

	grid = make([]float64, o.GridSize)
	density = make([]float64, o.GridSize)
	step := (hi - lo) / float64(o.GridSize-1)
	norm := 1.0 / (bw * math.Sqrt(2*math.Pi) * float64(len(xs)))
	for i := range grid {
		g := lo + float64(i)*step
		grid[i] = g
		var sum float64
		for _, x := range xs {
			z := (g - x) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		density[i] = norm * sum
	}

	return grid, density, nil
}
