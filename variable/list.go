// SPDX-License-Identifier: MIT

package variable

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Names returns the names of vars, in order.
func Names(vars []Variable) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.name
	}
	return out
}

// IndexByName returns the position of the variable called name, or -1.
func IndexByName(vars []Variable, name string) int {
	for i, v := range vars {
		if v.name == name {
			return i
		}
	}
	return -1
}

// ByName returns the variable called name.
func ByName(vars []Variable, name string) (Variable, bool) {
	if i := IndexByName(vars, name); i >= 0 {
		return vars[i], true
	}
	return Variable{}, false
}

// ValidateNames rejects empty and duplicate names.
func ValidateNames(vars []Variable) error {
	seen := make(map[string]struct{}, len(vars))
	for i, v := range vars {
		if v.name == "" {
			return errors.Wrapf(ErrEmptyName, "column %d", i+1)
		}
		if _, dup := seen[v.name]; dup {
			return errors.Wrapf(ErrDuplicateName, "%q", v.name)
		}
		seen[v.name] = struct{}{}
	}
	return nil
}

// ContinuousList returns continuous variables named names.
func ContinuousList(names ...string) []Variable {
	out := make([]Variable, len(names))
	for i, n := range names {
		out[i] = NewContinuous(n)
	}
	return out
}

// DefaultNames returns "X1".."Xn".
func DefaultNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "X" + strconv.Itoa(i+1)
	}
	return out
}

// AllContinuous reports whether every variable is continuous.
func AllContinuous(vars []Variable) bool {
	for _, v := range vars {
		if v.kind != Continuous {
			return false
		}
	}
	return true
}

// AllDiscrete reports whether every variable is discrete.
func AllDiscrete(vars []Variable) bool {
	for _, v := range vars {
		if v.kind != Discrete {
			return false
		}
	}
	return true
}
