package pairwise

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/bunkerlabs/bunkerstats/seq"
)

// MatrixOptions configures the symmetric matrix kernels.
//
// Fields:
//   - Workers — upper bound on goroutines fanned across rows of the p×p
//     output. 0 (or any non-positive value) selects runtime.GOMAXPROCS;
//     1 runs sequentially. Results never depend on the worker count.
type MatrixOptions struct {
	Workers int
}

// DefaultMatrixOptions returns the default matrix configuration
// (Workers = 0, i.e. one worker per available CPU).
func DefaultMatrixOptions() MatrixOptions {
	return MatrixOptions{Workers: 0}
}

// columnStats extracts the columns of m along with per-column means, and the
// centered sum of squares needed by the correlation kernel.
func columnStats(m *seq.Matrix) (cols [][]float64, means, css []float64) {
	p := m.Cols()
	cols = make([][]float64, p)
	means = make([]float64, p)
	css = make([]float64, p)
	rows := float64(m.Rows())
	for j := 0; j < p; j++ {
		col, _ := m.Col(j, nil) // bounds are loop-guaranteed
		cols[j] = col
		means[j] = floats.Sum(col) / rows
		var ss float64
		for _, v := range col {
			d := v - means[j]
			ss += d * d
		}
		css[j] = ss
	}

	return cols, means, css
}

// CovMatrix returns the full symmetric p×p covariance matrix over the
// columns of m with the unbiased n−1 denominator. Each upper-triangle entry
// is computed once and mirrored. Fewer than two rows yield an all-NaN matrix.
// Complexity: O(n·p²), parallel over the row index of the output.
func CovMatrix(m *seq.Matrix, opts *MatrixOptions) (*seq.Matrix, error) {
	if m == nil || m.Rows() == 0 {
		return nil, ErrEmptyInput
	}
	p := m.Cols()
	out, err := seq.NewMatrix(p, p)
	if err != nil {
		return nil, err
	}
	if m.Rows() < 2 {
		for i := 0; i < p; i++ {
			for j := 0; j < p; j++ {
				_ = out.Set(i, j, math.NaN())
			}
		}

		return out, nil
	}

	cols, means, _ := columnStats(m)
	denom := float64(m.Rows() - 1)
	workers := 0
	if opts != nil {
		workers = opts.Workers
	}
	seq.ParallelColumns(workers, p, func(i int) {
		mi := means[i]
		for j := i; j < p; j++ {
			mj := means[j]
			var acc float64
			for k, v := range cols[i] {
				acc += (v - mi) * (cols[j][k] - mj)
			}
			c := acc / denom
			_ = out.Set(i, j, c)
			_ = out.Set(j, i, c)
		}
	})

	return out, nil
}

// CorrMatrix returns the full symmetric p×p Pearson correlation matrix over
// the columns of m. The diagonal is exactly 1 by definition, not recomputed;
// entries involving a zero-variance column are NaN. Fewer than two rows
// yield NaN off-diagonal entries.
// Complexity: O(n·p²), parallel over the row index of the output.
func CorrMatrix(m *seq.Matrix, opts *MatrixOptions) (*seq.Matrix, error) {
	if m == nil || m.Rows() == 0 {
		return nil, ErrEmptyInput
	}
	p := m.Cols()
	out, err := seq.NewMatrix(p, p)
	if err != nil {
		return nil, err
	}
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			if i == j {
				_ = out.Set(i, j, 1)
			} else {
				_ = out.Set(i, j, math.NaN())
			}
		}
	}
	if m.Rows() < 2 {
		return out, nil
	}

	cols, means, css := columnStats(m)
	workers := 0
	if opts != nil {
		workers = opts.Workers
	}
	seq.ParallelColumns(workers, p, func(i int) {
		mi := means[i]
		for j := i + 1; j < p; j++ {
			if css[i] == 0 || css[j] == 0 {
				continue // zero-variance column: entry stays NaN
			}
			mj := means[j]
			var acc float64
			for k, v := range cols[i] {
				acc += (v - mi) * (cols[j][k] - mj)
			}
			c := acc / math.Sqrt(css[i]*css[j])
			_ = out.Set(i, j, c)
			_ = out.Set(j, i, c)
		}
	})

	return out, nil
}
