// SPDX-License-Identifier: MIT

package dataset

import (
	"maps"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/databox"
	"github.com/katalvlaran/lvdata/variable"
)

// AddVariable appends an all-missing column for v.
func (ds *DataSet) AddVariable(v variable.Variable) error {
	return ds.AddVariableAt(len(ds.vars), v)
}

// AddVariableAt inserts an all-missing column for v before column index.
func (ds *DataSet) AddVariableAt(index int, v variable.Variable) error {
	if index < 0 {
		return errors.Wrapf(ErrNegativeIndex, "column %d", index)
	}
	if index > len(ds.vars) {
		return errors.Wrapf(ErrColumnOutOfRange, "insert at %d of %d", index, len(ds.vars))
	}
	if ds.ColumnIndex(v.Name()) >= 0 {
		return errors.Wrapf(ErrDuplicateVariable, "%q", v.Name())
	}
	if v.Name() == "" {
		return errors.Wrap(variable.ErrEmptyName, "dataset")
	}

	vars := slices.Insert(slices.Clone(ds.vars), index, v)
	kinds := kindsOf(vars)
	src := ds.box
	if src.Storage() == databox.Int && v.IsContinuous() {
		src = ds.rebox(databox.Mixed)
	}
	rows := src.NumRows()
	if index == len(ds.vars) {
		ds.box = src.Resize(rows, len(vars), kinds)
	} else {
		dst := src.Like(rows, len(vars), kinds)
		for j := range ds.vars {
			to := j
			if j >= index {
				to = j + 1
			}
			for i := 0; i < rows; i++ {
				dst.Set(i, to, src.Get(i, j))
			}
		}
		ds.box = dst
	}
	ds.vars = vars
	return nil
}

// rebox copies the current cells into storage s.
func (ds *DataSet) rebox(s databox.Storage) databox.Box {
	out := databox.New(s, ds.box.NumRows(), len(ds.vars), kindsOf(ds.vars))
	databox.Fill(out, ds.box)
	return out
}

// RemoveColumn deletes column col.
func (ds *DataSet) RemoveColumn(col int) error {
	if err := ds.checkCol(col); err != nil {
		return err
	}
	keep := make([]int, 0, len(ds.vars)-1)
	for j := range ds.vars {
		if j != col {
			keep = append(keep, j)
		}
	}
	delete(ds.selected, ds.vars[col].Name())
	ds.box = ds.box.Select(allIndices(ds.box.NumRows()), keep)
	ds.vars = slices.Delete(ds.vars, col, col+1)
	return nil
}

// RemoveVariable deletes the column of the variable called name.
func (ds *DataSet) RemoveVariable(name string) error {
	j := ds.ColumnIndex(name)
	if j < 0 {
		return errors.Wrapf(ErrUnknownVariable, "%q", name)
	}
	return ds.RemoveColumn(j)
}

// RemoveRows deletes the given rows. Case IDs and multipliers follow their rows.
func (ds *DataSet) RemoveRows(rows []int) error {
	drop := make(map[int]struct{}, len(rows))
	for _, r := range rows {
		if r < 0 {
			return errors.Wrapf(ErrNegativeIndex, "row %d", r)
		}
		if r >= ds.box.NumRows() {
			return errors.Wrapf(ErrRowOutOfRange, "row %d of %d", r, ds.box.NumRows())
		}
		drop[r] = struct{}{}
	}
	keep := make([]int, 0, ds.box.NumRows()-len(drop))
	for i := 0; i < ds.box.NumRows(); i++ {
		if _, ok := drop[i]; !ok {
			keep = append(keep, i)
		}
	}
	ds.box = ds.box.Select(keep, allIndices(len(ds.vars)))
	ds.caseIDs, ds.multipliers = ds.remapRows(keep)
	return nil
}

// SetNumRows truncates or extends the dataset to n rows; new rows are missing.
func (ds *DataSet) SetNumRows(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrNegativeIndex, "rows %d", n)
	}
	ds.box = ds.box.Resize(n, len(ds.vars), kindsOf(ds.vars))
	maps.DeleteFunc(ds.caseIDs, func(r int, _ string) bool { return r >= n })
	maps.DeleteFunc(ds.multipliers, func(r int, _ int) bool { return r >= n })
	return nil
}

// SubsetColumns returns a new dataset over the named variables in the given order.
func (ds *DataSet) SubsetColumns(names ...string) (*DataSet, error) {
	cols := make([]int, len(names))
	for k, n := range names {
		j := ds.ColumnIndex(n)
		if j < 0 {
			return nil, errors.Wrapf(ErrUnknownVariable, "%q", n)
		}
		cols[k] = j
	}
	return ds.SubsetRowsColumns(allIndices(ds.box.NumRows()), cols)
}

// SubsetColumnsByIndex returns a new dataset over the given columns.
func (ds *DataSet) SubsetColumnsByIndex(cols ...int) (*DataSet, error) {
	return ds.SubsetRowsColumns(allIndices(ds.box.NumRows()), cols)
}

// SubsetRows returns a new dataset over the given rows and all columns.
func (ds *DataSet) SubsetRows(rows ...int) (*DataSet, error) {
	return ds.SubsetRowsColumns(rows, allIndices(len(ds.vars)))
}

// SubsetRowsColumns returns a new dataset over rows x cols. Rows may repeat.
// Knowledge, precision, selection and case bookkeeping are carried over.
func (ds *DataSet) SubsetRowsColumns(rows, cols []int) (*DataSet, error) {
	for _, r := range rows {
		if r < 0 {
			return nil, errors.Wrapf(ErrNegativeIndex, "row %d", r)
		}
		if r >= ds.box.NumRows() {
			return nil, errors.Wrapf(ErrRowOutOfRange, "row %d of %d", r, ds.box.NumRows())
		}
	}
	vars := make([]variable.Variable, len(cols))
	for k, j := range cols {
		if err := ds.checkCol(j); err != nil {
			return nil, err
		}
		vars[k] = ds.vars[j]
	}
	if err := variable.ValidateNames(vars); err != nil {
		return nil, errors.Wrap(err, "dataset subset")
	}
	out := ds.derive(vars, ds.box.Select(rows, cols))
	out.caseIDs, out.multipliers = ds.remapRows(rows)
	return out, nil
}

// Like returns an empty dataset with the same variables, storage and knowledge.
func (ds *DataSet) Like() *DataSet {
	return ds.derive(ds.vars, ds.box.Like(0, len(ds.vars), kindsOf(ds.vars)))
}

// Copy returns an independent deep copy.
func (ds *DataSet) Copy() *DataSet {
	out := ds.derive(ds.vars, ds.box.Copy())
	out.caseIDs = maps.Clone(ds.caseIDs)
	out.multipliers = maps.Clone(ds.multipliers)
	return out
}

// derive builds a sibling dataset over vars and box sharing no mutable state with ds.
func (ds *DataSet) derive(vars []variable.Variable, box databox.Box) *DataSet {
	out := &DataSet{
		name:        ds.name,
		vars:        slices.Clone(vars),
		box:         box,
		precision:   ds.precision,
		knowledge:   ds.knowledge.Copy(),
		selected:    make(map[string]struct{}),
		caseIDs:     make(map[int]string),
		multipliers: make(map[int]int),
	}
	for _, v := range vars {
		if _, ok := ds.selected[v.Name()]; ok {
			out.selected[v.Name()] = struct{}{}
		}
	}
	return out
}

// remapRows maps case IDs and multipliers of the source rows onto positions 0..len(rows)-1.
func (ds *DataSet) remapRows(rows []int) (map[int]string, map[int]int) {
	ids := make(map[int]string)
	mult := make(map[int]int)
	for to, from := range rows {
		if id, ok := ds.caseIDs[from]; ok {
			ids[to] = id
		}
		if m, ok := ds.multipliers[from]; ok {
			mult[to] = m
		}
	}
	return ids, mult
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
