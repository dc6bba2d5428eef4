// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support copy-based submatrix extraction (Induced) and row/column snapshots.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxInduce = "Induced"
	ctxRow    = "Row"
	ctxCol    = "Col"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is allowed for empty datasets.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer and apply options.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := NewOptions(opts...)
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseFrom wraps a copy of data (row-major, len rows*cols).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, ErrInvalidDimensions
	}
	d, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	copy(d.data, data)
	return d, nil
}

// NewDenseRows builds a matrix from row slices of equal length.
func NewDenseRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return NewDense(0, 0)
	}
	c := len(rows[0])
	d, err := NewDense(len(rows), c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, denseErrorf("Rows", i, len(row), ErrDimensionMismatch)
		}
		copy(d.data[i*c:(i+1)*c], row)
	}
	return d, nil
}

// NewIdentity returns the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}
	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(i, j int) (int, bool) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, false
	}
	return i*m.c + j, true
}

// At returns the element at (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	k, ok := m.indexOf(i, j)
	if !ok {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	return m.data[k], nil
}

// Set assigns v at (i, j).
func (m *Dense) Set(i, j int, v float64) error {
	k, ok := m.indexOf(i, j)
	if !ok {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[k] = v
	return nil
}

// Get is At without the error: out-of-range indices yield NaN.
// Hot loops over validated shapes use it to avoid error plumbing.
func (m *Dense) Get(i, j int) float64 {
	k, ok := m.indexOf(i, j)
	if !ok {
		return math.NaN()
	}
	return m.data[k]
}

// Clone returns a deep copy.
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy is Clone with the concrete type.
func (m *Dense) Copy() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	copy(out.data, m.data)
	return out
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}
	return out, nil
}

// RawData exposes the row-major buffer. Mutations write through.
func (m *Dense) RawData() []float64 { return m.data }

// Induced materializes the submatrix at the given row and column indices.
// Implementation:
//   - Stage 1: validate every index against bounds.
//   - Stage 2: copy in the requested order; duplicates are allowed.
//
// Complexity:
//   - Time O(len(rows)*len(cols)), Space the same.
func (m *Dense) Induced(rows, cols []int) (*Dense, error) {
	for _, i := range rows {
		if i < 0 || i >= m.r {
			return nil, denseErrorf(ctxInduce, i, 0, ErrOutOfRange)
		}
	}
	for _, j := range cols {
		if j < 0 || j >= m.c {
			return nil, denseErrorf(ctxInduce, 0, j, ErrOutOfRange)
		}
	}
	out := &Dense{r: len(rows), c: len(cols), data: make([]float64, len(rows)*len(cols)), validateNaNInf: m.validateNaNInf}
	for a, i := range rows {
		base := i * m.c
		for b, j := range cols {
			out.data[a*out.c+b] = m.data[base+j]
		}
	}
	return out, nil
}

// String renders rows as "[a, b]" lines.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// toDense returns m as *Dense, copying through At when it is another implementation.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}
	return out, nil
}
