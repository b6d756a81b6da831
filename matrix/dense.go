// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Zero-sized shapes are allowed (an instance with no sources still needs an
// empty weight table); negative ones are rejected with ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Fill builds an r×c Dense whose (i,j) entry is f(i,j).
// Stage 1 (Validate): shape via NewDense.
// Stage 2 (Execute): evaluate f row by row, rejecting NaN/Inf results.
// Complexity: O(r*c) calls to f.
func Fill(rows, cols int, f func(i, j int) float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = f(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("Fill", i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Row returns row i as a slice aliasing the backing storage. Writes through
// the slice mutate the matrix. It panics if i is out of range, like a slice
// index would.
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(denseErrorf("Row", i, 0, ErrOutOfRange))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// ColMax returns the maximum of column j and the first row achieving it.
// An empty column yields (-Inf, -1).
// Complexity: O(r).
func (m *Dense) ColMax(j int) (float64, int, error) {
	if j < 0 || j >= m.c {
		return 0, -1, denseErrorf("ColMax", 0, j, ErrOutOfRange)
	}
	best, arg := math.Inf(-1), -1
	var i int
	for i = 0; i < m.r; i++ {
		if v := m.data[i*m.c+j]; v > best {
			best, arg = v, i
		}
	}

	return best, arg, nil
}
