// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/covariance"
	"github.com/katalvlaran/lvdata/databox"
	"github.com/katalvlaran/lvdata/dataio"
	"github.com/katalvlaran/lvdata/tokenizer"
)

// Delimiter returns the configured reader delimiter.
func (c *Config) Delimiter() (tokenizer.Delimiter, error) {
	d, err := tokenizer.ParseDelimiter(c.Reader.Delimiter)
	if err != nil {
		return tokenizer.Delimiter{}, errors.Mark(errors.Wrap(err, "config"), ErrInvalid)
	}
	return d, nil
}

// ReaderOptions translates the reader section. logger and metrics may be nil.
func (c *Config) ReaderOptions(logger *slog.Logger, metrics *dataio.Metrics) ([]dataio.Option, error) {
	d, err := c.Delimiter()
	if err != nil {
		return nil, err
	}
	rc := c.Reader
	var quote byte
	if rc.Quote != "" {
		quote = rc.Quote[0]
	}
	opts := []dataio.Option{
		dataio.WithDelimiter(d),
		dataio.WithCommentMarker(rc.CommentMarker),
		dataio.WithQuote(quote),
		dataio.WithMissingMarker(rc.MissingMarker),
		dataio.WithHeader(rc.Header),
		dataio.WithMaxIntegralDiscrete(rc.MaxIntegralDiscrete),
		dataio.WithLogger(logger),
		dataio.WithMetrics(metrics),
	}
	switch {
	case rc.IDColumn != "":
		opts = append(opts, dataio.WithIDColumn(rc.IDColumn))
	case rc.UnlabeledID:
		opts = append(opts, dataio.WithUnlabeledIDColumn())
	}
	if rc.Storage != "" {
		s, ok := databox.ParseStorage(rc.Storage)
		if !ok {
			return nil, errors.Wrapf(ErrInvalid, "reader.storage %q", rc.Storage)
		}
		opts = append(opts, dataio.WithStorage(s))
	}
	if rc.SinglePass {
		opts = append(opts, dataio.WithSinglePass())
	}
	return opts, nil
}

// CovarianceOptions translates the covariance section.
func (c *Config) CovarianceOptions(logger *slog.Logger) []covariance.Option {
	return []covariance.Option{
		covariance.WithBiasCorrected(c.Covariance.BiasCorrected),
		covariance.WithWorkers(c.Covariance.Workers),
		covariance.WithChunkSize(c.Covariance.ChunkSize),
		covariance.WithLogger(logger),
	}
}

// NewLogger builds the configured slog handler over w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	// Validate restricts Level to names slog understands.
	_ = level.UnmarshalText([]byte(c.Logging.Level))
	hopts := &slog.HandlerOptions{Level: level}
	if c.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
