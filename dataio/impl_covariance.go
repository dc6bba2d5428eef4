// SPDX-License-Identifier: MIT

package dataio

import (
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/covariance"
	"github.com/katalvlaran/lvdata/knowledge"
	"github.com/katalvlaran/lvdata/matrix"
	"github.com/katalvlaran/lvdata/tokenizer"
	"github.com/katalvlaran/lvdata/variable"
)

// ReadCovariance reads a covariance file. The matrix is named after the file.
func (r *Reader) ReadCovariance(path string) (*covariance.CovarianceMatrix, error) {
	var out *covariance.CovarianceMatrix
	err := withSource(FileOpener(path), func(src io.Reader) error {
		var err error
		out, err = r.ParseCovariance(src)
		return err
	})
	if err != nil {
		return nil, err
	}
	out.SetName(filepath.Base(path))
	return out, nil
}

// ParseCovariance reads the covariance text format:
//
//	/Covariance        (optional)
//	<sample size>
//	<names>
//	<lower triangle, row i holding i+1 values; "*" is missing>
//	/knowledge ...     (optional)
//
// The upper triangle is filled symmetrically.
func (r *Reader) ParseCovariance(src io.Reader) (*covariance.CovarianceMatrix, error) {
	start := time.Now()
	c, err := r.parseCovariance(src)
	rows := 0
	if c != nil {
		rows = c.Dimension()
	}
	r.metrics.observe(FormatCovariance, start, rows, err)
	return c, err
}

func (r *Reader) parseCovariance(src io.Reader) (*covariance.CovarianceMatrix, error) {
	l := r.lineizer(src)
	line, ok := l.NextLine()
	if !ok {
		if err := l.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyInput
	}
	if strings.EqualFold(strings.TrimSpace(line), SectionCovariance) {
		if line, ok = l.NextLine(); !ok {
			return nil, errors.Wrap(ErrCovarianceFormat, "missing sample size")
		}
	}

	tokens := nonEmpty(r.split(line))
	if len(tokens) == 0 {
		return nil, errors.Wrapf(ErrCovarianceFormat, "line %d: expected the sample size", l.LineNumber())
	}
	n, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, errors.Wrapf(ErrCovarianceFormat, "line %d: expected the sample size, got %q", l.LineNumber(), tokens[0])
	}
	if len(tokens) > 1 {
		return nil, errors.Wrapf(ErrCovarianceFormat, "line %d: unexpected token %q after the sample size", l.LineNumber(), tokens[1])
	}

	line, ok = l.NextLine()
	if !ok {
		return nil, errors.Wrap(ErrCovarianceFormat, "missing variable names")
	}
	names := nonEmpty(r.split(strings.TrimSuffix(line, "\t")))
	if len(names) == 0 {
		return nil, errors.Wrapf(ErrCovarianceFormat, "line %d: expected variable names", l.LineNumber())
	}

	p := len(names)
	rows := make([][]float64, p)
	for i := range rows {
		rows[i] = make([]float64, p)
	}
	for i := 0; i < p; i++ {
		line, ok = l.NextLine()
		if !ok || isSection(line, SectionKnowledge) {
			return nil, errors.Wrapf(ErrCovarianceFormat, "expected %d matrix rows, found %d", p, i)
		}
		lineNo := l.LineNumber()
		cells := nonEmpty(r.split(line))
		if len(cells) < i+1 {
			return nil, errors.Wrapf(ErrCovarianceFormat, "line %d: expected %d values, got %d", lineNo, i+1, len(cells))
		}
		for j := 0; j <= i; j++ {
			v := math.NaN()
			if cells[j] != r.missing {
				if v, err = strconv.ParseFloat(cells[j], 64); err != nil {
					return nil, errors.Mark(
						errors.Wrapf(&ParseError{Line: lineNo, Column: j + 1, Token: cells[j], Reason: "not a number"}, "covariance"),
						ErrCovarianceFormat)
				}
			}
			rows[i][j], rows[j][i] = v, v
		}
	}
	if err := l.Err(); err != nil {
		return nil, err
	}

	k, err := knowledge.ParseLines(l, tokenizer.WhitespaceDelimiter, r.knowledgeOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "dataio: knowledge section")
	}

	m, err := matrix.NewDenseRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "dataio")
	}
	c, err := covariance.New(variable.ContinuousList(names...), m, n, covariance.WithLogger(r.logger))
	if err != nil {
		return nil, errors.Wrap(err, "dataio")
	}
	c.SetKnowledge(k)
	return c, nil
}

// ReadKnowledge reads a knowledge file.
func (r *Reader) ReadKnowledge(path string) (*knowledge.Knowledge, error) {
	var out *knowledge.Knowledge
	err := withSource(FileOpener(path), func(src io.Reader) error {
		var err error
		out, err = r.ParseKnowledge(src)
		return err
	})
	return out, err
}

// ParseKnowledge reads knowledge text, honouring the Reader's comment marker.
func (r *Reader) ParseKnowledge(src io.Reader) (*knowledge.Knowledge, error) {
	start := time.Now()
	k, err := knowledge.ParseLines(r.lineizer(src), tokenizer.WhitespaceDelimiter, r.knowledgeOpts...)
	r.metrics.observe(FormatKnowledge, start, 0, err)
	if err != nil {
		return nil, errors.Wrap(err, "dataio")
	}
	return k, nil
}
