// SPDX-License-Identifier: MIT

package covariance

import (
	"log/slog"
	"runtime"
)

// Option configures construction of either estimator.
type Option func(*options)

type options struct {
	biasCorrected bool
	name          string
	workers       int
	chunkSize     int
	logger        *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		biasCorrected: true,
		workers:       runtime.GOMAXPROCS(0),
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBiasCorrected selects the n-1 divisor (true, the default) or n for the eager estimator.
func WithBiasCorrected(on bool) Option {
	return func(o *options) { o.biasCorrected = on }
}

// WithName names the resulting matrix.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithWorkers bounds the number of goroutines computing variances. Values below one are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithChunkSize sets how many variables one worker task handles. Zero splits the
// variables evenly across workers.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.chunkSize = n
		}
	}
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
