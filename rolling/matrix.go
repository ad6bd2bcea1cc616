package rolling

import (
	"github.com/bunkerlabs/bunkerstats/seq"
)

// MatrixOptions configures the per-column matrix kernels.
//
// Fields:
//   - Workers — upper bound on goroutines used across columns. 0 (or any
//     non-positive value) selects runtime.GOMAXPROCS; 1 runs sequentially.
//     Worker count never changes results: columns are fully independent.
type MatrixOptions struct {
	Workers int
}

// DefaultMatrixOptions returns the default matrix configuration
// (Workers = 0, i.e. one worker per available CPU).
func DefaultMatrixOptions() MatrixOptions {
	return MatrixOptions{Workers: 0}
}

// columnKernel applies fn to every column of m independently and assembles a
// same-shape result matrix. fn receives a private copy of the column and must
// return a same-length output. Window validation runs once against the row
// count before any work is scheduled.
func columnKernel(m *seq.Matrix, window int, opts *MatrixOptions, fn func(col []float64) []float64) (*seq.Matrix, error) {
	if m == nil || m.Rows() == 0 {
		return nil, ErrEmptyInput
	}
	if window <= 0 || window > m.Rows() {
		return nil, ErrBadWindow
	}
	workers := 0
	if opts != nil {
		workers = opts.Workers
	}

	out, err := seq.NewMatrix(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	seq.ParallelColumns(workers, m.Cols(), func(j int) {
		col, _ := m.Col(j, nil) // bounds are loop-guaranteed
		_ = out.SetCol(j, fn(col))
	})

	return out, nil
}

// MatrixMean applies the rolling mean to each column of m independently,
// preserving shape. See MatrixOptions for parallelism control.
// Complexity: O(rows·cols).
func MatrixMean(m *seq.Matrix, window int, opts *MatrixOptions) (*seq.Matrix, error) {
	return columnKernel(m, window, opts, func(col []float64) []float64 {
		out, _ := Mean(col, window) // validated once in columnKernel

		return out
	})
}

// MatrixVar applies the rolling unbiased variance per column.
// Complexity: O(rows·cols).
func MatrixVar(m *seq.Matrix, window int, opts *MatrixOptions) (*seq.Matrix, error) {
	return columnKernel(m, window, opts, func(col []float64) []float64 {
		out, _ := Var(col, window)

		return out
	})
}

// MatrixStd applies the rolling standard deviation per column.
// Complexity: O(rows·cols).
func MatrixStd(m *seq.Matrix, window int, opts *MatrixOptions) (*seq.Matrix, error) {
	return columnKernel(m, window, opts, func(col []float64) []float64 {
		out, _ := Std(col, window)

		return out
	})
}

// MatrixZscore applies the rolling z-score per column.
// Complexity: O(rows·cols).
func MatrixZscore(m *seq.Matrix, window int, opts *MatrixOptions) (*seq.Matrix, error) {
	return columnKernel(m, window, opts, func(col []float64) []float64 {
		out, _ := Zscore(col, window)

		return out
	})
}
