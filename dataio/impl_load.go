// SPDX-License-Identifier: MIT

package dataio

import (
	"context"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/knowledge"
	"github.com/katalvlaran/lvdata/tokenizer"
	"github.com/katalvlaran/lvdata/variable"
)

// Load is the second tabular pass. It reads src, which must be the same content
// Scan described, into a dataset typed by d.
//
// Cells are lenient: a continuous token that is not a number becomes missing and a
// discrete token outside the categories becomes missing. Tokens past the last column
// are ignored. A trailing /knowledge section is attached to the dataset.
func (r *Reader) Load(ctx context.Context, src io.Reader, d *Description) (*dataset.DataSet, error) {
	colMap, err := d.columnMap()
	if err != nil {
		return nil, err
	}
	l := r.lineizer(src)

	line, ok := l.NextLine()
	if !ok {
		if err := l.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyInput
	}
	if d.VariablesSection {
		for ok && !isSection(line, SectionData) {
			line, ok = l.NextLine()
		}
	}
	if ok && isSection(line, SectionData) {
		line, ok = l.NextLine()
	}
	if !ok {
		return nil, errors.Wrap(ErrEmptyInput, "dataio: no data lines")
	}
	pending, hasPending := line, !r.header

	var opts []dataset.Option
	if r.storageSet {
		opts = append(opts, dataset.WithStorage(r.storage))
	}
	ds, err := dataset.New(d.Variables, d.NumRows, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "dataio")
	}

	row := 0
	knowledgeFollows := false
	for {
		if hasPending {
			line, hasPending = pending, false
		} else if line, ok = l.NextLine(); !ok {
			break
		}
		if isSection(line, SectionKnowledge) {
			knowledgeFollows = true
			break
		}
		if err := r.loadRow(ds, d, colMap, row, line, l.LineNumber()); err != nil {
			return nil, err
		}
		row++
		if row%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	if err := l.Err(); err != nil {
		return nil, err
	}
	if row != d.NumRows {
		r.logger.Warn("dataio: row count changed between passes",
			slog.Int("scanned", d.NumRows), slog.Int("loaded", row))
		if err := ds.SetNumRows(row); err != nil {
			return nil, errors.Wrap(err, "dataio")
		}
	}

	if knowledgeFollows {
		k, err := knowledge.ParseLines(l, tokenizer.WhitespaceDelimiter, r.knowledgeOpts...)
		if err != nil {
			return nil, errors.Wrap(err, "dataio: knowledge section")
		}
		ds.SetKnowledge(k)
	}
	return ds, nil
}

func (r *Reader) loadRow(ds *dataset.DataSet, d *Description, colMap []int, row int, line string, lineNo int) error {
	tokens := r.split(line)
	for c, tok := range tokens {
		if c >= len(colMap) {
			break
		}
		switch {
		case c == d.IDIndex:
			if !r.isMissing(tok) {
				if err := ds.SetCaseID(row, tok); err != nil {
					return errors.Wrap(err, "dataio")
				}
			}
		case d.MultColumn && c == 0:
			if r.isMissing(tok) {
				continue
			}
			m, err := strconv.Atoi(tok)
			if err != nil {
				return &ParseError{Line: lineNo, Column: c + 1, Token: tok, Reason: "case multiplier is not an integer"}
			}
			if err := ds.SetMultiplier(row, m); err != nil {
				return errors.Wrapf(err, "dataio: line %d", lineNo)
			}
		default:
			if err := r.setValue(ds, row, colMap[c], tok); err != nil {
				return errors.Wrapf(err, "dataio: line %d column %d", lineNo, c+1)
			}
		}
	}
	return nil
}

func (r *Reader) setValue(ds *dataset.DataSet, row, col int, tok string) error {
	if r.isMissing(tok) {
		return nil
	}
	v, err := ds.Variable(col)
	if err != nil {
		return err
	}
	if v.IsContinuous() {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			f = math.NaN()
		}
		return ds.SetDouble(row, col, f)
	}
	i := v.IndexOf(tok)
	if i < 0 {
		i = variable.MissingDiscrete
	}
	return ds.SetInt(row, col, i)
}
