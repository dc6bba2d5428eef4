// SPDX-License-Identifier: MIT

package dataio_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/lvdata/dataio"
	"github.com/katalvlaran/lvdata/tokenizer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFast(t *testing.T, opts ...dataio.FastOption) *dataio.FastReader {
	t.Helper()
	f, err := dataio.NewFastReader(',', opts...)
	require.NoError(t, err)
	return f
}

func TestFastReader_Continuous(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "big.csv", "A,B\r\n1.5,\"2\"\r\n\r\n3,4")
	ds, err := newFast(t).ReadContinuous(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "big.csv", ds.Name())
	assert.Equal(t, []string{"A", "B"}, ds.VariableNames())
	require.Equal(t, 2, ds.NumRows())
	v, err := ds.GetDouble(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	v, err = ds.GetDouble(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v, "final line without newline")
}

func TestFastReader_MissingAndTrailingDelimiter(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "gaps.csv", "A,B,\n1,,\n2,3,\n")
	ds, err := newFast(t).ReadContinuous(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "X3"}, ds.VariableNames(), "trailing delimiter adds a column")
	assert.True(t, ds.IsMissing(0, 1))
	assert.False(t, ds.IsMissing(1, 1))
	assert.True(t, ds.IsMissing(0, 2))
	assert.True(t, ds.IsMissing(1, 2))
}

func TestFastReader_TrailingHeaderColumnHoldsValues(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "tail.csv", "A,B,\n1,2,3\n4,5\n6,7,8,\n")
	ds, err := newFast(t).ReadContinuous(context.Background(), path)
	require.NoError(t, err)

	require.Equal(t, 3, ds.NumCols())
	v, err := ds.GetDouble(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.True(t, ds.IsMissing(1, 2), "short row")
	v, err = ds.GetDouble(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)

	_, err = newFast(t).ReadContinuous(context.Background(), writeFile(t, "hole.csv", "A,,C\n1,2,3\n"))
	assert.True(t, errors.Is(err, dataio.ErrHeader), "%v", err)
}

func TestFastReader_MultColumn(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "mult.csv", "MULT,A\n2,1.5\n1,2.5\n")
	ds, err := newFast(t).ReadContinuous(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ds.VariableNames())

	ds, err = newFast(t, dataio.WithKeepMultColumn()).ReadContinuous(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"MULT", "A"}, ds.VariableNames())
}

func TestFastReader_ParseErrorLocation(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bad.csv", "A,B\n1,2\n3,x\n")
	_, err := newFast(t).ReadContinuous(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataio.ErrParse))

	var pe *dataio.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, 2, pe.Column)
	assert.Equal(t, "x", pe.Token)

	path = writeFile(t, "wide.csv", "A\n1,2\n")
	_, err = newFast(t).ReadContinuous(context.Background(), path)
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Column)
}

func TestFastReader_Exclude(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "wide.csv", "A,B,C\n1,junk,3\n")
	ds, err := newFast(t, dataio.WithExcludeColumns("B")).ReadContinuous(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, ds.VariableNames())
	v, err := ds.GetDouble(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestFastReader_Discrete(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "codes.csv", "A,B\n2,0\n10,0\n2,\n")
	ds, err := newFast(t).ReadDiscrete(context.Background(), path)
	require.NoError(t, err)

	a, err := ds.Variable(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "10"}, a.Categories(), "numeric order")
	got, err := ds.GetInt(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.True(t, ds.IsMissing(2, 1))

	path = writeFile(t, "float.csv", "A\n1.5\n")
	_, err = newFast(t).ReadDiscrete(context.Background(), path)
	assert.True(t, errors.Is(err, dataio.ErrParse))
}

func TestFastReader_Rejects(t *testing.T) {
	t.Parallel()

	_, err := dataio.NewFastReader('\n')
	assert.True(t, errors.Is(err, dataio.ErrUnsupportedDelimiter))

	_, err = newFast(t).ReadContinuous(context.Background(), writeFile(t, "empty.csv", ""))
	assert.True(t, errors.Is(err, dataio.ErrEmptyInput))

	_, err = newFast(t).ReadContinuous(context.Background(), writeFile(t, "dup.csv", "A,A\n1,2\n"))
	assert.True(t, errors.Is(err, dataio.ErrHeader), "%v", err)
}

func TestFastReader_AgreesWithTabular(t *testing.T) {
	t.Parallel()

	content := "X,Y\n1.25,2.5\n-3,4.75\n0.5,\n"
	path := writeFile(t, "agree.csv", content)
	fast, err := newFast(t).ReadContinuous(context.Background(), path)
	require.NoError(t, err)

	r := dataio.NewReader(dataio.WithDelimiter(tokenizer.CommaDelimiter))
	slow, err := r.ReadTabular(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, fast.Equal(slow))
}

func TestReadExcel(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"X", "Y"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{1.5, "a"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{2.5, "b"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]any{3.5, "*"}))
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := dataio.NewReader().ReadExcel(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "book.xlsx:Sheet1", ds.Name())
	require.Equal(t, 3, ds.NumRows())
	x, _ := ds.Variable(0)
	y, _ := ds.Variable(1)
	assert.True(t, x.IsContinuous())
	assert.Equal(t, []string{"a", "b"}, y.Categories())
	assert.True(t, ds.IsMissing(2, 1))

	_, err = dataio.NewReader().ReadExcel(context.Background(), path, "Nope")
	assert.True(t, errors.Is(err, dataio.ErrNoSheet))
}
