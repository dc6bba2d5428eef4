// SPDX-License-Identifier: MIT

package dataio

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/tokenizer"
	"github.com/katalvlaran/lvdata/variable"
)

const ctxCheckEvery = 4096

// Scan is the first tabular pass. It reads src to the end (or to /knowledge) and
// describes the variables and row count.
//
// Implementation:
//   - Stage 1: an optional /variables section declares types; /data must follow it.
//   - Stage 2: the header yields names (X1..Xn without a header); the ID column is located.
//   - Stage 3: each column collects its distinct non-missing tokens; rows are counted.
//   - Stage 4: declared and known variables win; otherwise the token set decides the type.
func (r *Reader) Scan(ctx context.Context, src io.Reader) (*Description, error) {
	l := r.lineizer(src)
	if !l.HasMoreLines() {
		if err := l.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyInput
	}
	r.logParameters(FormatTabular)

	d := &Description{IDIndex: -1}
	known := slices.Clone(r.known)
	line, _ := l.NextLine()

	if isSection(line, SectionVariables) {
		d.VariablesSection = true
		last, err := r.parseVariablesSection(l, &known)
		if err != nil {
			return nil, err
		}
		line = last
	}
	if isSection(line, SectionData) {
		next, ok := l.NextLine()
		if !ok {
			return nil, errors.Wrapf(ErrEmptyInput, "line %d: no data after %s", l.LineNumber(), SectionData)
		}
		line = next
	}

	var (
		names      []string
		pending    string
		hasPending bool
	)
	if r.header {
		var err error
		if names, err = r.parseHeader(line, l.LineNumber()); err != nil {
			return nil, err
		}
	} else {
		n := len(r.split(line))
		if r.idColumn && r.idLabel == "" && n > 0 {
			n--
		}
		names = variable.DefaultNames(n)
		pending, hasPending = line, true
	}
	idIndex, err := r.locateID(&names, l.LineNumber())
	if err != nil {
		return nil, err
	}
	d.IDIndex = idIndex

	seen := make([]map[string]struct{}, len(names))
	for c := range seen {
		seen[c] = make(map[string]struct{})
	}
	collect := func(line string, lineNo int) {
		tokens := r.split(line)
		for c, tok := range tokens {
			if c >= len(seen) {
				break
			}
			if !r.isMissing(tok) {
				seen[c][tok] = struct{}{}
			}
		}
		if len(tokens) != len(names) {
			r.logger.Warn("dataio: unexpected token count",
				slog.Int("line", lineNo), slog.Int("want", len(names)), slog.Int("got", len(tokens)))
		}
		d.NumRows++
	}

	for {
		var line string
		if hasPending {
			line, hasPending = pending, false
		} else {
			var ok bool
			if line, ok = l.NextLine(); !ok {
				break
			}
		}
		if isSection(line, SectionKnowledge) {
			d.KnowledgeSection = true
			break
		}
		collect(line, l.LineNumber())
		if d.NumRows%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	if err := l.Err(); err != nil {
		return nil, err
	}

	d.Names = names
	for c, name := range names {
		if c == idIndex {
			continue
		}
		if c == 0 && name == MultColumn {
			d.MultColumn = true
			continue
		}
		if v, ok := variable.ByName(known, name); ok {
			d.Variables = append(d.Variables, v)
			continue
		}
		d.Variables = append(d.Variables, r.infer(name, seen[c]))
	}
	if err := variable.ValidateNames(d.Variables); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "dataio"), ErrHeader)
	}
	for _, v := range d.Variables {
		r.logger.Debug("dataio: variable", slog.String("name", v.Name()), slog.String("type", v.String()))
	}
	r.logger.Info("dataio: scanned", slog.Int("rows", d.NumRows), slog.Int("variables", len(d.Variables)))
	return d, nil
}

func (r *Reader) logParameters(format string) {
	r.logger.Info("dataio: load parameters",
		slog.String("format", format),
		slog.String("delimiter", r.delimiter.String()),
		slog.String("comment", r.commentMarker),
		slog.String("quote", string(r.quote)),
		slog.Bool("header", r.header),
		slog.Bool("ids", r.idColumn),
		slog.String("idLabel", r.idLabel),
		slog.String("missing", r.missing),
		slog.Int("maxIntegralDiscrete", r.maxIntegralDiscrete))
}

// parseVariablesSection reads "name: Continuous" and "name: c1,c2,..." lines up to
// /data, appending to known. Declared discrete variables do not accommodate new
// categories. It returns the /data line.
func (r *Reader) parseVariablesSection(l *tokenizer.Lineizer, known *[]variable.Variable) (string, error) {
	for {
		line, ok := l.NextLine()
		if !ok {
			if err := l.Err(); err != nil {
				return "", err
			}
			return "", errors.Wrapf(ErrVariablesSection, "a %s section must follow %s", SectionData, SectionVariables)
		}
		if isSection(line, SectionData) {
			return line, nil
		}
		lineNo := l.LineNumber()
		name, decl, _ := strings.Cut(line, ":")
		name, decl = strings.TrimSpace(name), strings.TrimSpace(decl)
		if name == "" {
			return "", errors.Wrapf(ErrVariablesSection, "line %d: expected a variable name, got an empty token", lineNo)
		}
		if _, ok := variable.ByName(*known, name); ok {
			continue
		}
		if decl == "" {
			return "", errors.Wrapf(ErrVariablesSection, "line %d: empty variable declaration for variable %s", lineNo, name)
		}
		if strings.EqualFold(decl, "continuous") {
			*known = append(*known, variable.NewContinuous(name))
			continue
		}
		cats := r.splitCategories(decl)
		for _, c := range cats {
			if c == "" {
				return "", errors.Wrapf(ErrVariablesSection, "line %d: expected a category name, got an empty token, for variable %s", lineNo, name)
			}
		}
		v, err := variable.NewDiscrete(name, cats...)
		if err != nil {
			return "", errors.Mark(errors.Wrapf(err, "line %d", lineNo), ErrVariablesSection)
		}
		*known = append(*known, v.WithAccommodation(false))
	}
}

// splitCategories splits on commas when present and on the data delimiter otherwise.
func (r *Reader) splitCategories(decl string) []string {
	if strings.Contains(decl, ",") {
		return tokenizer.Split(decl, tokenizer.CommaDelimiter, r.quote)
	}
	return r.split(decl)
}

func (r *Reader) parseHeader(line string, lineNo int) ([]string, error) {
	line = strings.TrimSuffix(line, "\t")
	tokens := r.split(line)
	seen := make(map[string]struct{}, len(tokens))
	for _, name := range tokens {
		if name == "" {
			return nil, errors.Wrapf(ErrHeader, "line %d: expected variable name, got empty token: %s", lineNo, line)
		}
		if _, dup := seen[name]; dup {
			return nil, errors.Wrapf(ErrHeader, "line %d: duplicate variable name (%s)", lineNo, name)
		}
		seen[name] = struct{}{}
	}
	return tokens, nil
}

// locateID returns the ID column position, inserting a placeholder name for an
// unlabeled leading ID column.
func (r *Reader) locateID(names *[]string, lineNo int) (int, error) {
	if !r.idColumn {
		return -1, nil
	}
	if r.idLabel == "" {
		*names = slices.Insert(*names, 0, "")
		return 0, nil
	}
	i := slices.Index(*names, r.idLabel)
	if i < 0 {
		return -1, errors.Wrapf(ErrHeader, "line %d: the given ID column label (%s) was not among the list of variables", lineNo, r.idLabel)
	}
	return i, nil
}

// infer types a column from its distinct tokens: non-integral numbers are continuous,
// integral columns with more than maxIntegralDiscrete values are continuous, anything
// else is discrete over the lexically sorted tokens.
func (r *Reader) infer(name string, tokens map[string]struct{}) variable.Variable {
	name = strings.ReplaceAll(name, " ", "_")
	integral, numeric := isIntegral(tokens), isDouble(tokens)
	switch {
	case numeric && !integral:
		return variable.NewContinuous(name)
	case integral && len(tokens) > r.maxIntegralDiscrete:
		return variable.NewContinuous(name)
	}
	v, _ := variable.NewDiscrete(name, slices.Sorted(maps.Keys(tokens))...)
	return v
}

func isIntegral(tokens map[string]struct{}) bool {
	for t := range tokens {
		if _, err := strconv.ParseInt(t, 10, 32); err != nil {
			return false
		}
	}
	return true
}

func isDouble(tokens map[string]struct{}) bool {
	for t := range tokens {
		if _, err := strconv.ParseFloat(t, 64); err != nil {
			return false
		}
	}
	return true
}
