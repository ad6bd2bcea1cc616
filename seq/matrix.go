package seq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("seq: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("seq: index out of bounds")

// ErrRaggedRows indicates that the input rows do not all share one length.
var ErrRaggedRows = errors.New("seq: rows must all have the same length")

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense row-major n×p grid of float64 observations.
// Rows are observations, columns are variables; each column is logically an
// independent numeric sequence for column-wise statistics.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Matrix struct {
	r, c int
	data []float64
}

// NewMatrix creates an r×c Matrix initialized to zeros.
// Returns ErrInvalidDimensions when rows or cols is non-positive.
// Complexity: O(r·c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// MatrixFromRows builds a Matrix by copying the given row slices.
// Returns ErrInvalidDimensions on an empty input and ErrRaggedRows when the
// rows differ in length. The input slices are not retained.
// Complexity: O(r·c).
func MatrixFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
	}

	m := &Matrix{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows (observations). Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns (variables). Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col) with bounds checking.
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) with bounds checking.
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Col copies column j into dst and returns it. When dst is nil or too short a
// fresh slice of length Rows() is allocated. Returns ErrIndexOutOfBounds for
// an invalid column index.
// Complexity: O(r).
func (m *Matrix) Col(j int, dst []float64) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf("Col", 0, j, ErrIndexOutOfBounds)
	}
	if len(dst) < m.r {
		dst = make([]float64, m.r)
	}
	dst = dst[:m.r]
	for i := 0; i < m.r; i++ {
		dst[i] = m.data[i*m.c+j]
	}

	return dst, nil
}

// SetCol writes src into column j. Returns ErrIndexOutOfBounds for an invalid
// column index and ErrRaggedRows when len(src) != Rows().
// Complexity: O(r).
func (m *Matrix) SetCol(j int, src []float64) error {
	if j < 0 || j >= m.c {
		return matrixErrorf("SetCol", 0, j, ErrIndexOutOfBounds)
	}
	if len(src) != m.r {
		return ErrRaggedRows
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = src[i]
	}

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r·c).
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
