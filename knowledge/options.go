// SPDX-License-Identifier: MIT

package knowledge

import (
	"log/slog"
	"regexp"
)

// Option configures a Knowledge at construction.
type Option func(*Knowledge)

// WithLogger routes warnings (rejected names) to l.
func WithLogger(l *slog.Logger) Option {
	return func(k *Knowledge) {
		if l != nil {
			k.logger = l
		}
	}
}

// WithNameChecker installs a variable-name predicate. Names failing it are ignored.
func WithNameChecker(fn func(string) bool) Option {
	return func(k *Knowledge) {
		if fn != nil {
			k.nameOK = fn
		}
	}
}

var strictName = regexp.MustCompile(`^[A-Za-z0-9:_\-.]+$`)

// StrictNames accepts letters, digits and the characters ':', '_', '-', '.'.
func StrictNames(name string) bool { return strictName.MatchString(name) }

// PermissiveNames accepts any non-empty name. It is the default checker.
func PermissiveNames(name string) bool { return name != "" }
