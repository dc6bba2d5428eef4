// SPDX-License-Identifier: MIT

package dataset

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/databox"
	"github.com/katalvlaran/lvdata/knowledge"
	"github.com/katalvlaran/lvdata/matrix"
	"github.com/katalvlaran/lvdata/variable"
)

// DataSet is a rectangular table of cells typed by its variables.
// It is not safe for concurrent mutation.
type DataSet struct {
	name      string
	vars      []variable.Variable
	box       databox.Box
	precision int

	knowledge   *knowledge.Knowledge
	selected    map[string]struct{}
	caseIDs     map[int]string
	multipliers map[int]int
}

// New returns an all-missing dataset with rows rows over vars.
// Storage defaults to VerticalDouble for all-continuous, Int for all-discrete and
// Mixed otherwise.
func New(vars []variable.Variable, rows int, opts ...Option) (*DataSet, error) {
	if rows < 0 {
		return nil, errors.Wrapf(ErrNegativeIndex, "rows %d", rows)
	}
	if err := variable.ValidateNames(vars); err != nil {
		return nil, errors.Wrap(err, "dataset")
	}
	cfg := config{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := defaultStorage(vars)
	if cfg.storageSet {
		s = cfg.storage
	}
	if s == databox.Int && !variable.AllDiscrete(vars) {
		return nil, errors.Wrap(ErrTypeMismatch, "int storage requires discrete variables")
	}
	return newWithBox(vars, databox.New(s, rows, len(vars), kindsOf(vars)), cfg), nil
}

// FromMatrix wraps m as an all-continuous dataset. Variables default to X1..Xn when
// vars is nil.
func FromMatrix(vars []variable.Variable, m matrix.Matrix, opts ...Option) (*DataSet, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	if vars == nil {
		vars = variable.ContinuousList(variable.DefaultNames(m.Cols())...)
	}
	if len(vars) != m.Cols() {
		return nil, errors.Wrapf(ErrSchemaMismatch, "%d variables for %d columns", len(vars), m.Cols())
	}
	if !variable.AllContinuous(vars) {
		return nil, errors.Wrap(ErrTypeMismatch, "matrix data requires continuous variables")
	}
	ds, err := New(vars, m.Rows(), opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			ds.box.Set(i, j, v)
		}
	}
	return ds, nil
}

// FromBox wraps an existing box. The box is owned by the dataset afterwards.
func FromBox(vars []variable.Variable, box databox.Box, opts ...Option) (*DataSet, error) {
	if box.NumCols() != len(vars) {
		return nil, errors.Wrapf(ErrSchemaMismatch, "%d variables for %d columns", len(vars), box.NumCols())
	}
	if err := variable.ValidateNames(vars); err != nil {
		return nil, errors.Wrap(err, "dataset")
	}
	cfg := config{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newWithBox(vars, box, cfg), nil
}

func newWithBox(vars []variable.Variable, box databox.Box, cfg config) *DataSet {
	ds := &DataSet{
		name:        cfg.name,
		vars:        slices.Clone(vars),
		box:         box,
		precision:   cfg.precision,
		knowledge:   knowledge.New(),
		selected:    make(map[string]struct{}),
		caseIDs:     make(map[int]string),
		multipliers: make(map[int]int),
	}
	if cfg.knowledge != nil {
		ds.knowledge = cfg.knowledge.Copy()
	}
	return ds
}

func defaultStorage(vars []variable.Variable) databox.Storage {
	switch {
	case variable.AllContinuous(vars):
		return databox.VerticalDouble
	case variable.AllDiscrete(vars):
		return databox.Int
	default:
		return databox.Mixed
	}
}

func kindsOf(vars []variable.Variable) []variable.Kind {
	out := make([]variable.Kind, len(vars))
	for j, v := range vars {
		out[j] = v.Kind()
	}
	return out
}

// Name returns the dataset name.
func (ds *DataSet) Name() string { return ds.name }

// SetName renames the dataset.
func (ds *DataSet) SetName(name string) { ds.name = name }

// NumRows returns the number of rows.
func (ds *DataSet) NumRows() int { return ds.box.NumRows() }

// NumCols returns the number of columns.
func (ds *DataSet) NumCols() int { return len(ds.vars) }

// Storage returns the underlying storage strategy.
func (ds *DataSet) Storage() databox.Storage { return ds.box.Storage() }

// Precision returns the number of decimals used by Equal.
func (ds *DataSet) Precision() int { return ds.precision }

// Variables returns a copy of the variable list.
func (ds *DataSet) Variables() []variable.Variable { return slices.Clone(ds.vars) }

// VariableNames returns the column names in order.
func (ds *DataSet) VariableNames() []string { return variable.Names(ds.vars) }

// Variable returns the variable of column col.
func (ds *DataSet) Variable(col int) (variable.Variable, error) {
	if err := ds.checkCol(col); err != nil {
		return variable.Variable{}, err
	}
	return ds.vars[col], nil
}

// VariableByName returns the variable called name.
func (ds *DataSet) VariableByName(name string) (variable.Variable, bool) {
	return variable.ByName(ds.vars, name)
}

// ColumnIndex returns the column of the variable called name, or -1.
func (ds *DataSet) ColumnIndex(name string) int { return variable.IndexByName(ds.vars, name) }

// IsContinuous reports that every column is continuous.
func (ds *DataSet) IsContinuous() bool { return variable.AllContinuous(ds.vars) }

// IsDiscrete reports that every column is discrete.
func (ds *DataSet) IsDiscrete() bool { return variable.AllDiscrete(ds.vars) }

// IsMixed reports that both kinds occur.
func (ds *DataSet) IsMixed() bool { return !ds.IsContinuous() && !ds.IsDiscrete() }

// SetVariable replaces the variable of column col. The kind must not change and a
// discrete replacement must keep at least as many categories.
func (ds *DataSet) SetVariable(col int, v variable.Variable) error {
	if err := ds.checkCol(col); err != nil {
		return err
	}
	old := ds.vars[col]
	if old.Kind() != v.Kind() {
		return errors.Wrapf(ErrTypeMismatch, "column %d is %s", col, old.Kind())
	}
	if v.IsDiscrete() && v.NumCategories() < old.NumCategories() {
		return errors.Wrapf(ErrSchemaMismatch, "column %d: %d categories replaced by %d", col, old.NumCategories(), v.NumCategories())
	}
	if j := ds.ColumnIndex(v.Name()); j >= 0 && j != col {
		return errors.Wrapf(ErrDuplicateVariable, "%q", v.Name())
	}
	ds.vars[col] = v
	if old.Name() != v.Name() {
		if _, ok := ds.selected[old.Name()]; ok {
			delete(ds.selected, old.Name())
			ds.selected[v.Name()] = struct{}{}
		}
	}
	return nil
}

// Box exposes the underlying storage. Writes through it bypass type checks.
func (ds *DataSet) Box() databox.Box { return ds.box }

func (ds *DataSet) checkCol(col int) error {
	if col < 0 {
		return errors.Wrapf(ErrNegativeIndex, "column %d", col)
	}
	if col >= len(ds.vars) {
		return errors.Wrapf(ErrColumnOutOfRange, "column %d of %d", col, len(ds.vars))
	}
	return nil
}

func (ds *DataSet) checkCell(row, col int) error {
	if row < 0 {
		return errors.Wrapf(ErrNegativeIndex, "row %d", row)
	}
	return ds.checkCol(col)
}
