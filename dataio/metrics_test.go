// SPDX-License-Identifier: MIT

package dataio

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountRowsAndFailures(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := NewReader(WithMetrics(m))

	_, err := r.ReadTabularFrom(context.Background(), BytesOpener([]byte("X\n1.5\n2.5\n3.5\n")))
	require.NoError(t, err)
	_, err = r.ReadTabularFrom(context.Background(), BytesOpener([]byte("X X\n1 2\n")))
	require.Error(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.rowsRead.WithLabelValues(FormatTabular)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseErrors.WithLabelValues(FormatTabular)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.readDuration))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() { m.observe(FormatFast, time.Time{}, 1, nil) })
	assert.Len(t, NewMetrics(nil).Collectors(), 3)
}

func TestCountLinesMatchesScan(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "a", "a\n", "a\r\n\r\nb", "'a'\n\"b\"", "a,b,\n\n\nc"} {
		n := 0
		require.NoError(t, scanCells([]byte(text), ',', func(int, []string) error { n++; return nil }))
		assert.Equal(t, n, countLines([]byte(text)), "%q", text)
	}
}
