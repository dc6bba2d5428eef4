// SPDX-License-Identifier: MIT

package covariance

import (
	"log/slog"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/matrix"
	"github.com/katalvlaran/lvdata/variable"
)

// CovarianceMatrix is a dense symmetric covariance matrix over a variable list.
type CovarianceMatrix struct {
	header
	m *matrix.Dense
}

// FromDataSet computes the global-complete covariance of ds.
// Implementation:
//   - Stage 1: reject discrete columns; expand case multipliers into repeated rows.
//   - Stage 2: keep only rows with no missing value; their count is the sample size.
//   - Stage 3: centre and form Xcᵀ·Xc / (n-1), or / n without bias correction.
//
// Complexity: Time O(n·p²), Space O(n·p + p²).
func FromDataSet(ds *dataset.DataSet, opts ...Option) (*CovarianceMatrix, error) {
	o := newOptions(opts)
	if !ds.IsContinuous() {
		return nil, ErrNotContinuous
	}
	src := ds
	if ds.HasMultipliers() {
		var err error
		if src, err = ds.ExpandMultipliers(); err != nil {
			return nil, errors.Wrap(err, "covariance: expand multipliers")
		}
	}

	p := src.NumCols()
	complete := make([]float64, 0, src.NumRows()*p)
	dropped := 0
	row := make([]float64, p)
	for i := 0; i < src.NumRows(); i++ {
		ok := true
		for j := 0; j < p; j++ {
			f, err := src.GetDouble(i, j)
			if err != nil {
				return nil, errors.Wrap(err, "covariance")
			}
			if math.IsNaN(f) {
				ok = false
				break
			}
			row[j] = f
		}
		if !ok {
			dropped++
			continue
		}
		complete = append(complete, row...)
	}
	n := len(complete) / max(p, 1)
	if p == 0 {
		n = src.NumRows()
	}
	minRows := 1
	if o.biasCorrected {
		minRows = 2
	}
	if n < minRows {
		return nil, errors.Wrapf(ErrSampleSize, "%d complete rows", n)
	}
	if dropped > 0 {
		o.logger.Debug("covariance: rows with missing values dropped",
			slog.Int("dropped", dropped), slog.Int("kept", n))
	}

	X, err := matrix.NewDenseFrom(n, p, complete)
	if err != nil {
		return nil, errors.Wrap(err, "covariance")
	}
	cov, _, err := matrix.Covariance(X, o.biasCorrected)
	if err != nil {
		return nil, errors.Wrap(err, "covariance")
	}
	name := o.name
	if name == "" {
		name = ds.Name()
	}
	return &CovarianceMatrix{
		header: newHeader(name, ds.Variables(), n, ds.Knowledge()),
		m:      cov,
	}, nil
}

// New wraps precomputed covariances without recomputation. m must be square with one
// row per variable and symmetric up to NaN entries; n must be positive.
func New(vars []variable.Variable, m matrix.Matrix, n int, opts ...Option) (*CovarianceMatrix, error) {
	o := newOptions(opts)
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, errors.Wrap(err, "covariance")
	}
	if m.Rows() != len(vars) || m.Cols() != len(vars) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%dx%d matrix for %d variables", m.Rows(), m.Cols(), len(vars))
	}
	if n <= 0 {
		return nil, errors.Wrapf(ErrSampleSize, "%d", n)
	}
	if err := variable.ValidateNames(vars); err != nil {
		return nil, errors.Wrap(err, "covariance")
	}
	if !variable.AllContinuous(vars) {
		return nil, ErrNotContinuous
	}
	if err := matrix.ValidateSymmetric(m, 1e-9); err != nil {
		return nil, errors.Wrap(err, "covariance")
	}
	d, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, errors.Wrap(err, "covariance")
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			_ = d.Set(i, j, v)
		}
	}
	return &CovarianceMatrix{header: newHeader(o.name, vars, n, nil), m: d}, nil
}

// Value returns entry (i, j), or NaN when out of range.
func (c *CovarianceMatrix) Value(i, j int) float64 { return c.m.Get(i, j) }

// SetValue writes v at (i, j) and (j, i).
func (c *CovarianceMatrix) SetValue(i, j int, v float64) error {
	if !c.inRange(i) || !c.inRange(j) {
		return errors.Wrapf(ErrIndexOutOfRange, "(%d,%d) of %d", i, j, len(c.vars))
	}
	_ = c.m.Set(i, j, v)
	_ = c.m.Set(j, i, v)
	return nil
}

// Matrix returns a copy of the covariances.
func (c *CovarianceMatrix) Matrix() *matrix.Dense { return c.m.Copy() }

// Submatrix returns the covariances of the given variables, values unchanged.
func (c *CovarianceMatrix) Submatrix(indices ...int) (*CovarianceMatrix, error) {
	if err := c.checkIndices(indices); err != nil {
		return nil, err
	}
	sub, err := c.m.Induced(indices, indices)
	if err != nil {
		return nil, errors.Wrap(err, "covariance")
	}
	vars := make([]variable.Variable, len(indices))
	for k, i := range indices {
		vars[k] = c.vars[i]
	}
	out := &CovarianceMatrix{header: newHeader(c.name, vars, c.sampleSize, c.knowledge), m: sub}
	return out, nil
}

// SubmatrixByName returns the covariances of the named variables.
func (c *CovarianceMatrix) SubmatrixByName(names ...string) (*CovarianceMatrix, error) {
	idx, err := c.indicesOf(names)
	if err != nil {
		return nil, err
	}
	return c.Submatrix(idx...)
}

// IsSingular reports whether inversion fails. A matrix with NaN entries is singular.
func (c *CovarianceMatrix) IsSingular() bool {
	if c.Dimension() == 0 {
		return false
	}
	_, err := matrix.Inverse(c.m)
	return err != nil
}

// Correlation returns the correlation matrix over the same variables and sample size.
func (c *CovarianceMatrix) Correlation() (*CovarianceMatrix, error) {
	r, err := matrix.Correlation(c.m)
	if err != nil {
		return nil, errors.Wrap(err, "covariance")
	}
	return &CovarianceMatrix{header: newHeader(c.name, c.vars, c.sampleSize, c.knowledge), m: r}, nil
}

// IsPositiveDefinite reports whether a Cholesky factorization exists.
func (c *CovarianceMatrix) IsPositiveDefinite() (bool, error) {
	return matrix.IsPositiveDefinite(c.m)
}

// ConditionNumber returns the 2-norm condition number.
func (c *CovarianceMatrix) ConditionNumber() (float64, error) {
	return matrix.ConditionNumber(c.m)
}

// Copy returns an independent deep copy.
func (c *CovarianceMatrix) Copy() *CovarianceMatrix {
	out := &CovarianceMatrix{header: newHeader(c.name, c.vars, c.sampleSize, c.knowledge), m: c.m.Copy()}
	for k := range c.selected {
		out.selected[k] = struct{}{}
	}
	return out
}
