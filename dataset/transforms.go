// SPDX-License-Identifier: MIT

package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/databox"
)

// Concatenate stacks the rows of sets, which must share an identical variable list.
// Knowledge and name come from the first set.
func Concatenate(sets ...*DataSet) (*DataSet, error) {
	if len(sets) == 0 {
		return nil, errors.Wrap(ErrSchemaMismatch, "concatenate: no datasets")
	}
	first := sets[0]
	rows := 0
	for k, s := range sets {
		if len(s.vars) != len(first.vars) {
			return nil, errors.Wrapf(ErrSchemaMismatch, "concatenate: dataset %d has %d columns, want %d", k, len(s.vars), len(first.vars))
		}
		for j, v := range s.vars {
			if !v.Equal(first.vars[j]) {
				return nil, errors.Wrapf(ErrSchemaMismatch, "concatenate: dataset %d column %d is %s, want %s", k, j, v, first.vars[j])
			}
		}
		rows += s.NumRows()
	}
	out := first.derive(first.vars, first.box.Like(rows, len(first.vars), kindsOf(first.vars)))
	at := 0
	for _, s := range sets {
		for i := 0; i < s.NumRows(); i++ {
			for j := range s.vars {
				out.box.Set(at, j, s.box.Get(i, j))
			}
			if id, ok := s.caseIDs[i]; ok {
				out.caseIDs[at] = id
			}
			if m, ok := s.multipliers[i]; ok {
				out.multipliers[at] = m
			}
			at++
		}
	}
	return out, nil
}

// BootstrapSample draws n rows of ds with replacement.
func BootstrapSample(ds *DataSet, n int, rng *rand.Rand) (*DataSet, error) {
	if rng == nil {
		return nil, ErrNilRandom
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeIndex, "sample size %d", n)
	}
	if ds.NumRows() == 0 && n > 0 {
		return nil, errors.Wrap(ErrRowOutOfRange, "bootstrap from an empty dataset")
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = rng.IntN(ds.NumRows())
	}
	return ds.SubsetRows(rows...)
}

// ShuffleColumns returns ds with its columns in random order.
func ShuffleColumns(ds *DataSet, rng *rand.Rand) (*DataSet, error) {
	if rng == nil {
		return nil, ErrNilRandom
	}
	return ds.SubsetColumnsByIndex(rng.Perm(ds.NumCols())...)
}

// ShuffleRows returns ds with its rows in random order.
func ShuffleRows(ds *DataSet, rng *rand.Rand) (*DataSet, error) {
	if rng == nil {
		return nil, ErrNilRandom
	}
	return ds.SubsetRows(rng.Perm(ds.NumRows())...)
}

// Means returns the NaN-skipping mean of each continuous column. Discrete columns and
// columns without observations yield NaN.
func Means(ds *DataSet) []float64 {
	out := make([]float64, ds.NumCols())
	for j, v := range ds.vars {
		out[j] = math.NaN()
		if !v.IsContinuous() {
			continue
		}
		out[j] = columnMean(ds.box, j)
	}
	return out
}

func columnMean(b databox.Box, j int) float64 {
	sum, n := 0.0, 0
	for i := 0; i < b.NumRows(); i++ {
		f := b.Get(i, j)
		if math.IsNaN(f) {
			continue
		}
		sum += f
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Demean returns a copy with every continuous column centred on zero.
// Missing cells stay missing; discrete columns are untouched.
func Demean(ds *DataSet) *DataSet {
	out := ds.Copy()
	means := Means(ds)
	for j, v := range ds.vars {
		if !v.IsContinuous() {
			continue
		}
		for i := 0; i < out.NumRows(); i++ {
			out.box.Set(i, j, out.box.Get(i, j)-means[j])
		}
	}
	return out
}

// Standardize returns a copy with every continuous column centred and scaled to unit
// sample standard deviation. Constant columns are only centred.
func Standardize(ds *DataSet) *DataSet {
	out := Demean(ds)
	for j, v := range out.vars {
		if !v.IsContinuous() {
			continue
		}
		ss, n := 0.0, 0
		for i := 0; i < out.NumRows(); i++ {
			f := out.box.Get(i, j)
			if math.IsNaN(f) {
				continue
			}
			ss += f * f
			n++
		}
		if n < 2 || ss == 0 {
			continue
		}
		sd := math.Sqrt(ss / float64(n-1))
		for i := 0; i < out.NumRows(); i++ {
			out.box.Set(i, j, out.box.Get(i, j)/sd)
		}
	}
	return out
}

// ContinuousColumns returns copies of every column as vectors. All columns must be
// continuous.
func ContinuousColumns(ds *DataSet) ([][]float64, error) {
	if !ds.IsContinuous() {
		return nil, ErrNotContinuous
	}
	if vb, ok := ds.box.(*databox.VerticalDoubleBox); ok {
		return vb.Columns(), nil
	}
	out := make([][]float64, ds.NumCols())
	for j := range out {
		out[j], _ = ds.Column(j)
	}
	return out, nil
}
