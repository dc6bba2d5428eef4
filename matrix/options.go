// SPDX-License-Identifier: MIT

package matrix

import "math"

// Defaults for Options.
const (
	// DefaultEpsilon is the symmetry tolerance and the relative pivot tolerance of Inverse.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf is off: NaN encodes missing data in this module.
	DefaultValidateNaNInf = false
)

// Options carries numeric policy for constructors and kernels.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon sets the numeric tolerance. Negative or non-finite values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps >= 0 && !math.IsInf(eps, 0) && !math.IsNaN(eps) {
			o.eps = eps
		}
	}
}

// WithValidateNaNInf makes Set reject NaN and ±Inf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Epsilon returns the configured tolerance.
func (o Options) Epsilon() float64 { return o.eps }
