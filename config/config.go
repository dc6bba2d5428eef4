// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvdata/dataio"
	"github.com/katalvlaran/lvdata/tokenizer"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVDATA"

// Config is the complete tool configuration.
type Config struct {
	Reader     ReaderConfig     `yaml:"reader" envconfig:"READER"`
	Covariance CovarianceConfig `yaml:"covariance" envconfig:"COVARIANCE"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
}

// ReaderConfig mirrors the dataio.Reader options.
type ReaderConfig struct {
	// Delimiter is a built-in name (whitespace, tab, comma, colon, semicolon, pipe) or a regular expression.
	Delimiter     string `yaml:"delimiter" envconfig:"DELIMITER" validate:"required"`
	CommentMarker string `yaml:"comment_marker" envconfig:"COMMENT_MARKER"`
	// Quote is a single quote character; empty disables quoting.
	Quote               string `yaml:"quote" envconfig:"QUOTE" validate:"max=1"`
	MissingMarker       string `yaml:"missing_marker" envconfig:"MISSING_MARKER" validate:"required"`
	Header              bool   `yaml:"header" envconfig:"HEADER"`
	MaxIntegralDiscrete int    `yaml:"max_integral_discrete" envconfig:"MAX_INTEGRAL_DISCRETE" validate:"min=-1"`
	IDColumn            string `yaml:"id_column" envconfig:"ID_COLUMN"`
	UnlabeledID         bool   `yaml:"unlabeled_id" envconfig:"UNLABELED_ID" validate:"excluded_with=IDColumn"`
	Storage             string `yaml:"storage" envconfig:"STORAGE" validate:"omitempty,oneof=double vertical int mixed"`
	SinglePass          bool   `yaml:"single_pass" envconfig:"SINGLE_PASS"`
}

// CovarianceConfig mirrors the covariance options.
type CovarianceConfig struct {
	BiasCorrected bool `yaml:"bias_corrected" envconfig:"BIAS_CORRECTED"`
	// Workers bounds variance goroutines; 0 means GOMAXPROCS.
	Workers   int `yaml:"workers" envconfig:"WORKERS" validate:"min=0"`
	ChunkSize int `yaml:"chunk_size" envconfig:"CHUNK_SIZE" validate:"min=0"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// DefaultConfig returns the reader defaults, bias-corrected covariances and
// info-level text logs.
func DefaultConfig() *Config {
	return &Config{
		Reader: ReaderConfig{
			Delimiter:           "whitespace",
			CommentMarker:       tokenizer.DefaultCommentMarker,
			Quote:               string(tokenizer.DefaultQuote),
			MissingMarker:       dataio.DefaultMissingMarker,
			Header:              true,
			MaxIntegralDiscrete: dataio.DefaultMaxIntegralDiscrete,
		},
		Covariance: CovarianceConfig{BiasCorrected: true},
		Logging:    LoggingConfig{Level: "info", Format: "text"},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load layers the YAML file at path (skipped when path is empty) and the
// environment over DefaultConfig, then validates the result. Unknown YAML keys are
// rejected.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(err, "config: parse %s", path)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "config: environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and that the delimiter compiles.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Mark(errors.Wrap(err, "config"), ErrInvalid)
	}
	if _, err := tokenizer.ParseDelimiter(c.Reader.Delimiter); err != nil {
		return errors.Mark(errors.Wrap(err, "config: reader.delimiter"), ErrInvalid)
	}
	return nil
}
