// SPDX-License-Identifier: MIT

package dataset

import (
	"github.com/katalvlaran/lvdata/databox"
	"github.com/katalvlaran/lvdata/knowledge"
)

// DefaultPrecision is the number of decimals continuous cells are compared at by Equal.
const DefaultPrecision = 4

// Option configures a DataSet at construction.
type Option func(*config)

type config struct {
	storage    databox.Storage
	storageSet bool
	precision  int
	name       string
	knowledge  *knowledge.Knowledge
}

// WithStorage forces a storage strategy instead of the kind-based default.
func WithStorage(s databox.Storage) Option {
	return func(c *config) { c.storage, c.storageSet = s, true }
}

// WithPrecision sets the decimal precision used by Equal. Negative values are ignored.
func WithPrecision(decimals int) Option {
	return func(c *config) {
		if decimals >= 0 {
			c.precision = decimals
		}
	}
}

// WithName names the dataset.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithKnowledge attaches a copy of k.
func WithKnowledge(k *knowledge.Knowledge) Option {
	return func(c *config) { c.knowledge = k }
}
