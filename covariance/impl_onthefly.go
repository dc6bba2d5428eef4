// SPDX-License-Identifier: MIT

package covariance

import (
	"context"
	"log/slog"
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/matrix"
	"github.com/katalvlaran/lvdata/variable"
)

// OnTheFly keeps centred column vectors and cached variances and computes
// off-diagonal pairwise-complete covariances on demand.
// Reads are safe for concurrent use; the value never changes after construction
// apart from header bookkeeping (name, knowledge, selection).
type OnTheFly struct {
	header
	vectors   [][]float64
	variances []float64
	rows      int
}

// NewOnTheFly centres every column of ds and computes the variances in parallel.
// Implementation:
//   - Stage 1: reject discrete columns; expand case multipliers; copy column vectors.
//   - Stage 2: split the variables into chunks; each errgroup task centres its
//     vectors on their NaN-skipping mean and writes their variances into disjoint slots.
//   - Stage 3: wait for every task; a cancelled ctx stops unstarted chunks and is returned.
//
// Complexity: Time O(n·p) split over workers, Space O(n·p).
func NewOnTheFly(ctx context.Context, ds *dataset.DataSet, opts ...Option) (*OnTheFly, error) {
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
	vectors, err := dataset.ContinuousColumns(src)
	if err != nil {
		return nil, errors.Wrap(err, "covariance")
	}

	p := len(vectors)
	variances := make([]float64, p)
	chunk := o.chunkSize
	if chunk == 0 {
		chunk = max(1, (p+o.workers-1)/o.workers)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for from := 0; from < p; from += chunk {
		to := min(from+chunk, p)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := from; i < to; i++ {
				center(vectors[i])
				variances[i] = sumOfSquares(vectors[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "covariance: variances")
	}

	vars := src.Variables()
	for i, v := range variances {
		if v == 0 {
			o.logger.Warn("covariance: zero variance", slog.String("variable", vars[i].Name()))
		}
	}
	name := o.name
	if name == "" {
		name = ds.Name()
	}
	return &OnTheFly{
		header:    newHeader(name, vars, src.NumRows(), ds.Knowledge()),
		vectors:   vectors,
		variances: variances,
		rows:      src.NumRows(),
	}, nil
}

// center subtracts the NaN-skipping mean in place.
func center(v []float64) {
	sum, n := 0.0, 0
	for _, f := range v {
		if !math.IsNaN(f) {
			sum += f
			n++
		}
	}
	if n == 0 {
		return
	}
	mean := sum / float64(n)
	for k := range v {
		v[k] -= mean
	}
}

// sumOfSquares returns Σv²/(count-1) over present entries, NaN below two entries.
func sumOfSquares(v []float64) float64 {
	d, n := 0.0, 0
	for _, f := range v {
		if math.IsNaN(f) {
			continue
		}
		d += f * f
		n++
	}
	if n < 2 {
		return math.NaN()
	}
	return d / float64(n-1)
}

// crossProduct returns Σv1·v2/(count-1) over rows where both are present; rows nil
// means every row. NaN below two such rows.
func crossProduct(v1, v2 []float64, rows []int) float64 {
	d, n := 0.0, 0
	add := func(k int) {
		a, b := v1[k], v2[k]
		if math.IsNaN(a) || math.IsNaN(b) {
			return
		}
		d += a * b
		n++
	}
	if rows == nil {
		for k := range v1 {
			add(k)
		}
	} else {
		for _, k := range rows {
			add(k)
		}
	}
	if n < 2 {
		return math.NaN()
	}
	return d / float64(n-1)
}

// Value returns the cached variance for i == j and the pairwise-complete covariance
// otherwise. Out-of-range indices give NaN.
func (c *OnTheFly) Value(i, j int) float64 {
	if !c.inRange(i) || !c.inRange(j) {
		return math.NaN()
	}
	if i == j {
		return c.variances[i]
	}
	return crossProduct(c.vectors[i], c.vectors[j], nil)
}

// ValueRows returns the pairwise-complete covariance of (i, j) restricted to rows.
// Vectors stay centred on the full-data means.
func (c *OnTheFly) ValueRows(i, j int, rows []int) (float64, error) {
	if err := c.checkIndices([]int{i, j}); err != nil {
		return math.NaN(), err
	}
	if err := c.checkRows(rows); err != nil {
		return math.NaN(), err
	}
	if rows == nil {
		rows = []int{}
	}
	return crossProduct(c.vectors[i], c.vectors[j], rows), nil
}

func (c *OnTheFly) checkRows(rows []int) error {
	for _, r := range rows {
		if r < 0 || r >= c.rows {
			return errors.Wrapf(ErrIndexOutOfRange, "row %d of %d", r, c.rows)
		}
	}
	return nil
}

// Variances returns a copy of the cached variances.
func (c *OnTheFly) Variances() []float64 { return append([]float64(nil), c.variances...) }

// Submatrix materializes the covariances of the given variables.
func (c *OnTheFly) Submatrix(indices ...int) (*CovarianceMatrix, error) {
	if err := c.checkIndices(indices); err != nil {
		return nil, err
	}
	return c.build(indices, func(i, j int) float64 { return c.Value(i, j) })
}

// SubmatrixRows materializes the covariances of the given variables over rows only.
func (c *OnTheFly) SubmatrixRows(indices, rows []int) (*CovarianceMatrix, error) {
	if err := c.checkIndices(indices); err != nil {
		return nil, err
	}
	if err := c.checkRows(rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []int{}
	}
	return c.build(indices, func(i, j int) float64 {
		return crossProduct(c.vectors[i], c.vectors[j], rows)
	})
}

// SubmatrixByName materializes the covariances of the named variables.
func (c *OnTheFly) SubmatrixByName(names ...string) (*CovarianceMatrix, error) {
	idx, err := c.indicesOf(names)
	if err != nil {
		return nil, err
	}
	return c.Submatrix(idx...)
}

// Materialize computes every entry into an eager matrix.
func (c *OnTheFly) Materialize() (*CovarianceMatrix, error) {
	idx := make([]int, len(c.vars))
	for i := range idx {
		idx[i] = i
	}
	return c.Submatrix(idx...)
}

func (c *OnTheFly) build(indices []int, value func(i, j int) float64) (*CovarianceMatrix, error) {
	k := len(indices)
	m, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, errors.Wrap(err, "covariance")
	}
	vars := make([]variable.Variable, k)
	for a, i := range indices {
		vars[a] = c.vars[i]
		for b := a; b < k; b++ {
			v := value(i, indices[b])
			_ = m.Set(a, b, v)
			_ = m.Set(b, a, v)
		}
	}
	return &CovarianceMatrix{header: newHeader(c.name, vars, c.sampleSize, c.knowledge), m: m}, nil
}
