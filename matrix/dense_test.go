// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdata/matrix"
)

const epsTight = 1e-12

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)
	return m
}

func TestNewDense_Shapes(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	z, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Rows())
	assert.Equal(t, 3, z.Cols())

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AccessorsAndBounds(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.True(t, math.IsNaN(m.Get(5, 5)))

	require.NoError(t, m.Set(0, 0, math.NaN()), "NaN is a legal missing value by default")

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)
	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, col)

	strict, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestDense_Induced(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	sub, err := m.Induced([]int{2, 0}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 2}, sub.RawData())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n[7, 8, 9]\n", m.String())
}

func TestTransposeMulScale(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 2, at.Rows())
	assert.Equal(t, []float64{1, 3, 5, 2, 4, 6}, at.RawData())

	g, err := matrix.Mul(at, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{35, 44, 44, 56}, g.RawData())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	s, err := matrix.Scale(g, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{17.5, 22, 22, 28}, s.RawData())

	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7, 11}, y)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	// Zero leading pivot requires row exchange.
	a := mustRows(t, [][]float64{{0, 1}, {2, 3}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, id.RawData(), prod.RawData(), epsTight)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{math.NaN()}}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSymmetric(mustRows(t, [][]float64{{1, 2}, {2, 1}}), 0))
	require.ErrorIs(t,
		matrix.ValidateSymmetric(mustRows(t, [][]float64{{1, 2}, {3, 1}}), 0.5),
		matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}
