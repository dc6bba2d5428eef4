// SPDX-License-Identifier: MIT

package dataio_test

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdata/covariance"
	"github.com/katalvlaran/lvdata/dataio"
	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/knowledge"
	"github.com/katalvlaran/lvdata/tokenizer"
	"github.com/katalvlaran/lvdata/variable"
)

func readText(t *testing.T, r *dataio.Reader, text string) (*dataset.DataSet, error) {
	t.Helper()
	return r.ReadTabularFrom(context.Background(), dataio.BytesOpener([]byte(text)))
}

func mustRead(t *testing.T, r *dataio.Reader, text string) *dataset.DataSet {
	t.Helper()
	ds, err := readText(t, r, text)
	require.NoError(t, err)
	return ds
}

func TestReadTabular_InfersDiscreteColumns(t *testing.T) {
	t.Parallel()

	r := dataio.NewReader(dataio.WithDelimiter(tokenizer.CommaDelimiter))
	ds := mustRead(t, r, "X,Y\n1,a\n2,b\n1,a\n")

	require.Equal(t, 3, ds.NumRows())
	x, err := ds.Variable(0)
	require.NoError(t, err)
	y, err := ds.Variable(1)
	require.NoError(t, err)
	assert.True(t, x.IsDiscrete())
	assert.Equal(t, []string{"1", "2"}, x.Categories())
	assert.Equal(t, []string{"a", "b"}, y.Categories())

	for row, want := range []int{0, 1, 0} {
		got, err := ds.GetInt(row, 0)
		require.NoError(t, err)
		assert.Equal(t, want, got, "row %d", row)
	}
}

func TestReadTabular_EmptyCellIsMissing(t *testing.T) {
	t.Parallel()

	r := dataio.NewReader(dataio.WithDelimiter(tokenizer.CommaDelimiter))
	ds := mustRead(t, r, "A,B,C\n1.5,,3.5\n4.5,5.5,6.5\n")

	require.Equal(t, 3, ds.NumCols())
	assert.True(t, ds.IsContinuous())
	assert.True(t, ds.IsMissing(0, 1))
	v, err := ds.GetDouble(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestReadTabular_Inference(t *testing.T) {
	t.Parallel()

	text := "I\tF\tM\tS\n1\t0.5\t1\tx\n2\t1\t*\ty\n3\t2\t2\tx\n4\t3\t3\ty\n5\t4\t4\tx\n"
	ds := mustRead(t, dataio.NewReader(), text)

	kinds := map[string]variable.Kind{}
	for _, v := range ds.Variables() {
		kinds[v.Name()] = v.Kind()
	}
	assert.Equal(t, variable.Continuous, kinds["I"], "five integral values exceed the discrete limit")
	assert.Equal(t, variable.Continuous, kinds["F"])
	assert.Equal(t, variable.Discrete, kinds["M"], "four integral values stay discrete")
	assert.Equal(t, variable.Discrete, kinds["S"])
	assert.True(t, ds.IsMissing(1, 2))

	strict := mustRead(t, dataio.NewReader(dataio.WithMaxIntegralDiscrete(-1)), text)
	m, ok := strict.VariableByName("M")
	require.True(t, ok)
	assert.True(t, m.IsContinuous())
}

func TestReadTabular_LenientCells(t *testing.T) {
	t.Parallel()

	r := dataio.NewReader(dataio.WithKnownVariables(variable.NewContinuous("X")))
	ds := mustRead(t, r, "X Y\n1.5 a\nabc b\n2.5 a extra\n")

	require.Equal(t, 3, ds.NumRows())
	assert.True(t, ds.IsMissing(1, 0), "unparsable continuous token")
	v, err := ds.GetDouble(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestReadTabular_SpacesInInferredNames(t *testing.T) {
	t.Parallel()

	r := dataio.NewReader(dataio.WithDelimiter(tokenizer.TabDelimiter))
	ds := mustRead(t, r, "body mass\tgroup\n1.5\ta\n2.5\tb\n")
	assert.Equal(t, []string{"body_mass", "group"}, ds.VariableNames())
}

func TestReadTabular_VariablesSection(t *testing.T) {
	t.Parallel()

	text := "/variables\nX: Continuous\nC: lo,hi\n/data\nX C\n1 hi\n2 lo\n3 mid\n"
	ds := mustRead(t, dataio.NewReader(), text)

	x, ok := ds.VariableByName("X")
	require.True(t, ok)
	assert.True(t, x.IsContinuous())
	c, ok := ds.VariableByName("C")
	require.True(t, ok)
	assert.Equal(t, []string{"lo", "hi"}, c.Categories())
	assert.False(t, c.AccommodatesNewCategories())

	got, err := ds.GetInt(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.True(t, ds.IsMissing(2, 1), "undeclared category")
}

func TestReadTabular_VariablesSectionErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"no data marker":   "/variables\nX: Continuous\n",
		"empty name":       "/variables\n: a,b\n/data\nX\n1\n",
		"empty spec":       "/variables\nX:\n/data\nX\n1\n",
		"empty category":   "/variables\nX: a,,b\n/data\nX\na\n",
		"duplicate values": "/variables\nX: a,a\n/data\nX\na\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := readText(t, dataio.NewReader(), text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, dataio.ErrVariablesSection), "%v", err)
		})
	}
}

func TestReadTabular_HeaderErrors(t *testing.T) {
	t.Parallel()

	_, err := readText(t, dataio.NewReader(), "X X\n1 2\n")
	assert.True(t, errors.Is(err, dataio.ErrHeader), "%v", err)

	comma := dataio.NewReader(dataio.WithDelimiter(tokenizer.CommaDelimiter))
	_, err = readText(t, comma, "X,,Y\n1,2,3\n")
	assert.True(t, errors.Is(err, dataio.ErrHeader), "%v", err)

	_, err = readText(t, dataio.NewReader(), "")
	assert.True(t, errors.Is(err, dataio.ErrEmptyInput), "%v", err)

	_, err = readText(t, dataio.NewReader(), "// only a comment\n\n")
	assert.True(t, errors.Is(err, dataio.ErrEmptyInput), "%v", err)
}

func TestReadTabular_TrailingTabOnHeader(t *testing.T) {
	t.Parallel()

	r := dataio.NewReader(dataio.WithDelimiter(tokenizer.TabDelimiter))
	ds := mustRead(t, r, "X\tY\t\n1.5\t2.5\n")
	assert.Equal(t, []string{"X", "Y"}, ds.VariableNames())
}

func TestReadTabular_NoHeader(t *testing.T) {
	t.Parallel()

	ds := mustRead(t, dataio.NewReader(dataio.WithHeader(false)), "1.5 2.5\n3.5 4.5\n")
	assert.Equal(t, []string{"X1", "X2"}, ds.VariableNames())
	assert.Equal(t, 2, ds.NumRows())
}

func TestReadTabular_IDColumns(t *testing.T) {
	t.Parallel()

	labelled := mustRead(t, dataio.NewReader(dataio.WithIDColumn("id")), "X id\n1.5 a\n2.5 b\n")
	assert.Equal(t, []string{"X"}, labelled.VariableNames())
	id, ok := labelled.CaseID(1)
	assert.True(t, ok)
	assert.Equal(t, "b", id)

	r := dataio.NewReader(dataio.WithHeader(false), dataio.WithUnlabeledIDColumn())
	unlabeled := mustRead(t, r, "r1 1.5 2.5\nr2 3.5 4.5\n")
	assert.Equal(t, []string{"X1", "X2"}, unlabeled.VariableNames())
	id, ok = unlabeled.CaseID(0)
	assert.True(t, ok)
	assert.Equal(t, "r1", id)
	v, err := unlabeled.GetDouble(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = readText(t, dataio.NewReader(dataio.WithIDColumn("nope")), "X\n1\n")
	assert.True(t, errors.Is(err, dataio.ErrHeader), "%v", err)
}

func TestReadTabular_MultColumn(t *testing.T) {
	t.Parallel()

	ds := mustRead(t, dataio.NewReader(), "MULT X\n2 1.5\n1 2.5\n")
	assert.Equal(t, []string{"X"}, ds.VariableNames())
	assert.Equal(t, []int{2, 1}, ds.Multipliers())

	_, err := readText(t, dataio.NewReader(), "MULT X\nmany 1.5\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataio.ErrParse))
	var pe *dataio.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 1, pe.Column)
}

func TestReadTabular_KnowledgeSection(t *testing.T) {
	t.Parallel()

	text := "X Y\n1.5 2.5\n3.5 4.5\n\n/knowledge\naddtemporal\n1 X\n2 Y\n"
	ds := mustRead(t, dataio.NewReader(), text)

	assert.Equal(t, 2, ds.NumRows())
	k := ds.Knowledge()
	assert.True(t, k.IsForbidden("Y", "X"))
	assert.False(t, k.IsForbidden("X", "Y"))
}

func TestReadTabular_SinglePassMatchesTwoPass(t *testing.T) {
	t.Parallel()

	text := "A B\n1.5 x\n2.5 y\n"
	a := mustRead(t, dataio.NewReader(), text)
	b := mustRead(t, dataio.NewReader(dataio.WithSinglePass()), text)
	assert.True(t, a.Equal(b))
}

func TestReadTabular_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cases.txt")
	require.NoError(t, os.WriteFile(path, []byte("A B\n1.5 2.5\n"), 0o600))

	ds, err := dataio.NewReader().ReadTabular(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "cases.txt", ds.Name())

	_, err = dataio.NewReader().ReadTabular(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestWriteTabular_RoundTrip(t *testing.T) {
	t.Parallel()

	c, err := variable.NewDiscrete("C", "b", "a")
	require.NoError(t, err)
	orig, err := dataset.New([]variable.Variable{variable.NewContinuous("X"), c}, 3)
	require.NoError(t, err)
	require.NoError(t, orig.SetDouble(0, 0, 1.5))
	require.NoError(t, orig.SetDouble(2, 0, -2))
	require.NoError(t, orig.SetInt(0, 1, 1))
	require.NoError(t, orig.SetInt(2, 1, 0))
	require.NoError(t, orig.SetMultiplier(2, 3))
	k := knowledge.New()
	require.NoError(t, k.AddToTier(0, "X"))
	require.NoError(t, k.AddToTier(1, "C"))
	orig.SetKnowledge(k)

	var buf bytes.Buffer
	require.NoError(t, dataio.WriteTabular(&buf, orig, tokenizer.WhitespaceDelimiter, dataio.WithVariablesSection()))
	assert.True(t, strings.HasPrefix(buf.String(), "/variables\nX: Continuous\nC: b,a\n/data\nMULT\tX\tC\n"), buf.String())

	back := mustRead(t, dataio.NewReader(), buf.String())
	assert.True(t, orig.Equal(back), "wrote:\n%s\nread:\n%s", buf.String(), back)
	assert.Equal(t, 3, back.Multiplier(2))
	assert.True(t, back.Knowledge().IsForbidden("C", "X"))
}

func TestWriteTabular_QuotesDelimiters(t *testing.T) {
	t.Parallel()

	c, err := variable.NewDiscrete("C", "big dog", "cat")
	require.NoError(t, err)
	orig, err := dataset.New([]variable.Variable{c}, 2)
	require.NoError(t, err)
	require.NoError(t, orig.SetInt(0, 0, 0))
	require.NoError(t, orig.SetInt(1, 0, 1))

	var buf bytes.Buffer
	require.NoError(t, dataio.WriteTabular(&buf, orig, tokenizer.WhitespaceDelimiter))
	assert.Equal(t, "C\n\"big dog\"\ncat\n", buf.String())

	back := mustRead(t, dataio.NewReader(), buf.String())
	got, err := back.Text(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "big dog", got)

	custom, err := tokenizer.CustomDelimiter(`;+`)
	require.NoError(t, err)
	err = dataio.WriteTabular(&buf, orig, custom)
	assert.True(t, errors.Is(err, dataio.ErrUnsupportedDelimiter))
}

func TestParseCovariance(t *testing.T) {
	t.Parallel()

	c, err := dataio.NewReader().ParseCovariance(strings.NewReader("2\nX\tY\n1.0\n0.5\t2.0\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.SampleSize())
	assert.Equal(t, []string{"X", "Y"}, c.VariableNames())
	assert.Equal(t, 1.0, c.Value(0, 0))
	assert.Equal(t, 0.5, c.Value(0, 1))
	assert.Equal(t, 0.5, c.Value(1, 0))
	assert.Equal(t, 2.0, c.Value(1, 1))
	assert.True(t, c.Knowledge().IsEmpty())
}

func TestParseCovariance_HeaderMissingAndKnowledge(t *testing.T) {
	t.Parallel()

	text := "/Covariance\n10\nX Y Z\n1\n* 2\n0.1 0.2 3\n/knowledge\naddtemporal\n1 X\n2 Y Z\n"
	c, err := dataio.NewReader().ParseCovariance(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, 10, c.SampleSize())
	assert.True(t, math.IsNaN(c.Value(0, 1)))
	assert.True(t, math.IsNaN(c.Value(1, 0)))
	assert.Equal(t, 0.2, c.Value(1, 2))
	assert.True(t, c.Knowledge().IsForbidden("Z", "X"))
}

func TestParseCovariance_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"sample size":  "x\nX\n1\n",
		"extra token":  "2 3\nX\n1\n",
		"missing row":  "2\nX Y\n1\n",
		"short row":    "2\nX Y\n1\n0.5\n",
		"no names":     "2\n",
		"bad number":   "2\nX Y\n1\n0.5 abc\n",
		"empty header": "/covariance\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataio.NewReader().ParseCovariance(strings.NewReader(text))
			require.Error(t, err)
			assert.True(t, errors.Is(err, dataio.ErrCovarianceFormat), "%v", err)
		})
	}

	_, err := dataio.NewReader().ParseCovariance(strings.NewReader("2\nX Y\n1\n0.5 abc\n"))
	var pe *dataio.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 4, pe.Line)
	assert.Equal(t, 2, pe.Column)

	_, err = dataio.NewReader().ParseCovariance(strings.NewReader("0\nX\n1\n"))
	assert.True(t, errors.Is(err, covariance.ErrSampleSize), "%v", err)

	_, err = dataio.NewReader().ParseCovariance(strings.NewReader("2\nX Y\n1\n0.5 2\n3\n"))
	assert.Error(t, err, "trailing text must be a knowledge section")
}

func TestCovarianceRoundTrip(t *testing.T) {
	t.Parallel()

	ds := mustRead(t, dataio.NewReader(), "X Y\n1.5 2.5\n2 3.5\n4 1.5\n")
	c, err := covariance.FromDataSet(ds)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, covariance.Write(&buf, c))
	back, err := dataio.NewReader().ParseCovariance(&buf)
	require.NoError(t, err)

	assert.Equal(t, c.SampleSize(), back.SampleSize())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, c.Value(i, j), back.Value(i, j), 1e-12)
		}
	}
}

func TestReadKnowledge(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "knowledge.txt")
	text := "// prior\n/knowledge\naddtemporal\n1 A\n2 B\n\nforbiddirect\nB A\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	k, err := dataio.NewReader().ReadKnowledge(path)
	require.NoError(t, err)
	assert.Equal(t, 2, k.NumTiers())
	assert.True(t, k.IsForbidden("B", "A"))

	_, err = dataio.NewReader().ParseKnowledge(strings.NewReader("A B\n"))
	assert.True(t, errors.Is(err, knowledge.ErrSyntax), "%v", err)
}
