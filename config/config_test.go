// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdata/config"
	"github.com/katalvlaran/lvdata/dataio"
	"github.com/katalvlaran/lvdata/databox"
	"github.com/katalvlaran/lvdata/tokenizer"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvdata.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	d, err := cfg.Delimiter()
	require.NoError(t, err)
	assert.Equal(t, tokenizer.Whitespace, d.Kind())
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := writeYAML(t, `
reader:
  delimiter: comma
  max_integral_discrete: 2
  storage: mixed
logging:
  level: debug
  format: json
`)
	t.Setenv("LVDATA_READER_MAX_INTEGRAL_DISCRETE", "7")
	t.Setenv("LVDATA_COVARIANCE_WORKERS", "3")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "comma", cfg.Reader.Delimiter)
	assert.Equal(t, 7, cfg.Reader.MaxIntegralDiscrete, "environment wins over the file")
	assert.Equal(t, "mixed", cfg.Reader.Storage)
	assert.Equal(t, 3, cfg.Covariance.Workers)
	assert.True(t, cfg.Reader.Header, "untouched defaults survive")
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "reader:\n  delimter: comma\n",
		"bad storage":       "reader:\n  storage: columnar\n",
		"bad level":         "logging:\n  level: loud\n",
		"bad discrete":      "reader:\n  max_integral_discrete: -2\n",
		"long quote":        "reader:\n  quote: \"''\"\n",
		"bad regexp":        "reader:\n  delimiter: \"[\"\n",
		"conflicting ids":   "reader:\n  id_column: id\n  unlabeled_id: true\n",
		"negative workers":  "covariance:\n  workers: -1\n",
		"missing delimiter": "reader:\n  delimiter: \"\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeYAML(t, content))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(writeYAML(t, "logging:\n  format: xml\n"))
	assert.True(t, errors.Is(err, config.ErrInvalid), "%v", err)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeYAML(t, "# nothing here\n"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestReaderOptions_Drive(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Reader.Delimiter = "comma"
	cfg.Reader.IDColumn = "id"
	cfg.Reader.Storage = "double"
	require.NoError(t, cfg.Validate())

	opts, err := cfg.ReaderOptions(nil, nil)
	require.NoError(t, err)
	ds, err := dataio.NewReader(opts...).ReadTabularFrom(context.Background(),
		dataio.BytesOpener([]byte("id,X\nr1,1.5\nr2,2.5\n")))
	require.NoError(t, err)

	assert.Equal(t, []string{"X"}, ds.VariableNames())
	assert.Equal(t, databox.Double, ds.Storage())
	id, ok := ds.CaseID(0)
	assert.True(t, ok)
	assert.Equal(t, "r1", id)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Len(t, cfg.CovarianceOptions(logger), 4)
}
