// SPDX-License-Identifier: MIT

package dataio

import (
	"bytes"
	"context"
	"log/slog"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	mmap "github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/lvdata/databox"
	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/variable"
)

// FastOption configures a FastReader.
type FastOption func(*FastReader)

// WithExcludeColumns drops the named columns while reading.
func WithExcludeColumns(names ...string) FastOption {
	return func(f *FastReader) {
		for _, n := range names {
			f.exclude[n] = struct{}{}
		}
	}
}

// WithKeepMultColumn reads a MULT column as an ordinary variable.
func WithKeepMultColumn() FastOption {
	return func(f *FastReader) { delete(f.exclude, MultColumn) }
}

// WithFastLogger sets the logger; nil keeps the discarding default.
func WithFastLogger(l *slog.Logger) FastOption {
	return func(f *FastReader) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithFastMetrics records reads on m.
func WithFastMetrics(m *Metrics) FastOption {
	return func(f *FastReader) { f.metrics = m }
}

// FastReader reads large single-byte-delimited files through a read-only memory map.
// The first line is always the header. A trailing delimiter there adds a column named
// X<column>. Quote bytes are dropped, "\r" counts as a line break, blank lines are
// skipped and an empty cell is missing. Cells must parse strictly; the first bad cell
// fails the read with a *ParseError. A MULT column is excluded unless
// WithKeepMultColumn is given.
type FastReader struct {
	delimiter byte
	exclude   map[string]struct{}
	logger    *slog.Logger
	metrics   *Metrics
}

// NewFastReader returns a FastReader splitting on delim.
func NewFastReader(delim byte, opts ...FastOption) (*FastReader, error) {
	switch delim {
	case '\n', '\r', '"', '\'':
		return nil, errors.Wrapf(ErrUnsupportedDelimiter, "%q", delim)
	}
	f := &FastReader{
		delimiter: delim,
		exclude:   map[string]struct{}{MultColumn: {}},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// ReadContinuous reads every kept column as a continuous variable.
func (f *FastReader) ReadContinuous(ctx context.Context, path string) (*dataset.DataSet, error) {
	start := time.Now()
	var ds *dataset.DataSet
	err := f.mapFile(path, func(buf []byte) error {
		var err error
		ds, err = f.continuous(ctx, buf)
		return err
	})
	f.finish(path, ds, start, err)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// ReadDiscrete reads every kept column as a discrete variable. Cells must be integers;
// the categories of a column are its distinct values in numeric order.
func (f *FastReader) ReadDiscrete(ctx context.Context, path string) (*dataset.DataSet, error) {
	start := time.Now()
	var ds *dataset.DataSet
	err := f.mapFile(path, func(buf []byte) error {
		var err error
		ds, err = f.discrete(ctx, buf)
		return err
	})
	f.finish(path, ds, start, err)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func (f *FastReader) finish(path string, ds *dataset.DataSet, start time.Time, err error) {
	rows := 0
	if ds != nil {
		ds.SetName(filepath.Base(path))
		rows = ds.NumRows()
	}
	f.metrics.observe(FormatFast, start, rows, err)
	if err == nil {
		f.logger.Info("dataio: fast read", slog.String("path", path),
			slog.Int("rows", rows), slog.Int("variables", ds.NumCols()),
			slog.Duration("elapsed", time.Since(start)))
	}
}

// mapFile maps path read-only for the duration of fn.
func (f *FastReader) mapFile(path string, fn func([]byte) error) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "dataio: open %s", path)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return errors.Wrapf(err, "dataio: stat %s", path)
	}
	if info.Size() == 0 {
		return errors.Wrapf(ErrEmptyInput, "%s", path)
	}

	buf, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return errors.Wrapf(err, "dataio: mmap %s", path)
	}
	defer func() {
		if uerr := buf.Unmap(); uerr != nil && err == nil {
			err = errors.Wrapf(uerr, "dataio: unmap %s", path)
		}
	}()
	return fn(buf)
}

// layout maps file columns to kept columns.
type layout struct {
	names []string
	keep  []int // file column -> kept column, or -1
}

// resolveLayout keeps every header cell as a column. Empty cells after the last named
// column come from trailing delimiters and are named X<column>; an empty name before
// that is a header error.
func (f *FastReader) resolveLayout(header []string) (layout, error) {
	named := len(header)
	for named > 0 && header[named-1] == "" {
		named--
	}
	out := layout{keep: make([]int, len(header))}
	for c, name := range header {
		if name == "" {
			if c < named {
				return layout{}, errors.Wrapf(ErrHeader, "line 1: empty variable name in column %d", c+1)
			}
			name = "X" + strconv.Itoa(c+1)
		}
		if _, skip := f.exclude[name]; skip {
			out.keep[c] = -1
			continue
		}
		out.keep[c] = len(out.names)
		out.names = append(out.names, name)
	}
	return out, nil
}

// continuous parses buf into column vectors.
//
// Implementation:
//   - Stage 1: count logical lines to size the columns (header excluded).
//   - Stage 2: walk the buffer once; each cell is parsed as float64 straight into its column.
func (f *FastReader) continuous(ctx context.Context, buf []byte) (*dataset.DataSet, error) {
	rows := countLines(buf) - 1
	if rows < 0 {
		return nil, ErrEmptyInput
	}
	var (
		lay     layout
		columns [][]float64
	)
	err := scanCells(buf, f.delimiter, func(line int, cells []string) error {
		if line == 1 {
			var err error
			if lay, err = f.resolveLayout(cells); err != nil {
				return err
			}
			columns = make([][]float64, len(lay.names))
			for j := range columns {
				columns[j] = make([]float64, rows)
			}
			return nil
		}
		if err := checkRow(ctx, line, cells, lay); err != nil {
			return err
		}
		row := line - 2
		for j := range columns {
			columns[j][row] = math.NaN()
		}
		for c, cell := range cells[:min(len(cells), len(lay.keep))] {
			j := lay.keep[c]
			if j < 0 || cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return &ParseError{Line: line, Column: c + 1, Token: cell, Reason: "not a number"}
			}
			columns[j][row] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	vars := variable.ContinuousList(lay.names...)
	ds, err := dataset.FromBox(vars, databox.NewVerticalDoubleBoxFrom(columns))
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "dataio"), ErrHeader)
	}
	return ds, nil
}

// discrete parses buf into integer columns, then maps each value to its category index.
func (f *FastReader) discrete(ctx context.Context, buf []byte) (*dataset.DataSet, error) {
	rows := countLines(buf) - 1
	if rows < 0 {
		return nil, ErrEmptyInput
	}
	var (
		lay     layout
		columns [][]int
		present []map[int]struct{}
	)
	err := scanCells(buf, f.delimiter, func(line int, cells []string) error {
		if line == 1 {
			var err error
			if lay, err = f.resolveLayout(cells); err != nil {
				return err
			}
			columns = make([][]int, len(lay.names))
			present = make([]map[int]struct{}, len(lay.names))
			for j := range columns {
				columns[j] = make([]int, rows)
				present[j] = make(map[int]struct{})
			}
			return nil
		}
		if err := checkRow(ctx, line, cells, lay); err != nil {
			return err
		}
		row := line - 2
		for j := range columns {
			columns[j][row] = variable.MissingDiscrete
		}
		for c, cell := range cells[:min(len(cells), len(lay.keep))] {
			j := lay.keep[c]
			if j < 0 || cell == "" {
				continue
			}
			v, err := strconv.ParseInt(cell, 10, 32)
			if err != nil {
				return &ParseError{Line: line, Column: c + 1, Token: cell, Reason: "not an integer"}
			}
			columns[j][row] = int(v)
			present[j][int(v)] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	vars := make([]variable.Variable, len(lay.names))
	box := databox.NewIntBox(rows, len(lay.names))
	for j, name := range lay.names {
		values := slices.Sorted(maps.Keys(present[j]))
		index := make(map[int]int, len(values))
		labels := make([]string, len(values))
		for k, v := range values {
			index[v] = k
			labels[k] = strconv.Itoa(v)
		}
		v, err := variable.NewDiscrete(name, labels...)
		if err != nil {
			return nil, errors.Wrap(err, "dataio")
		}
		vars[j] = v
		for i, raw := range columns[j] {
			if raw == variable.MissingDiscrete {
				box.Set(i, j, variable.MissingDiscrete)
				continue
			}
			box.Set(i, j, float64(index[raw]))
		}
	}
	ds, err := dataset.FromBox(vars, box)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "dataio"), ErrHeader)
	}
	return ds, nil
}

func checkRow(ctx context.Context, line int, cells []string, lay layout) error {
	for c := len(lay.keep); c < len(cells); c++ {
		if cells[c] != "" {
			return &ParseError{Line: line, Column: c + 1, Token: cells[c], Reason: "more cells than header columns"}
		}
	}
	if line%ctxCheckEvery == 0 {
		return ctx.Err()
	}
	return nil
}

func isQuote(c byte) bool { return c == '"' || c == '\'' }

// scanCells calls fn with the trimmed cells of every logical line of buf. Lines are
// numbered from 1; "\r" ends a line, runs of line breaks collapse and quote bytes are
// dropped. A final line without a line break is still delivered. cells is reused
// between calls.
func scanCells(buf []byte, delim byte, fn func(line int, cells []string) error) error {
	var (
		cells []string
		cell  []byte
		prev  byte = '\n'
		line  int
	)
	flush := func() {
		cells = append(cells, string(bytes.TrimSpace(cell)))
		cell = cell[:0]
	}
	for _, c := range buf {
		if isQuote(c) {
			continue
		}
		if c == '\r' {
			c = '\n'
		}
		switch {
		case c == '\n':
			if prev != '\n' {
				flush()
				line++
				if err := fn(line, cells); err != nil {
					return err
				}
				cells = cells[:0]
			}
		case c == delim:
			flush()
		default:
			cell = append(cell, c)
		}
		prev = c
	}
	if prev != '\n' {
		flush()
		line++
		return fn(line, cells)
	}
	return nil
}

// countLines counts the logical lines scanCells would deliver.
func countLines(buf []byte) int {
	var (
		prev byte = '\n'
		n    int
	)
	for _, c := range buf {
		if isQuote(c) {
			continue
		}
		if c == '\r' {
			c = '\n'
		}
		if c == '\n' && prev != '\n' {
			n++
		}
		prev = c
	}
	if prev != '\n' {
		n++
	}
	return n
}
