// SPDX-License-Identifier: MIT

package variable

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind tags a Variable as continuous or discrete.
type Kind int

const (
	// Continuous columns hold float64 values.
	Continuous Kind = iota
	// Discrete columns hold category indices.
	Discrete
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Discrete {
		return "Discrete"
	}
	return "Continuous"
}

// MissingDiscrete is the category index recorded for a missing discrete cell.
const MissingDiscrete = -99

// MissingContinuous is the value recorded for a missing continuous cell.
var MissingContinuous = math.NaN()

// IsMissingContinuous reports whether f denotes a missing continuous value.
func IsMissingContinuous(f float64) bool { return math.IsNaN(f) }

// Variable describes one column. The zero value is an unnamed continuous variable.
type Variable struct {
	name       string
	kind       Kind
	categories []string

	accommodate    bool // unseen categories extend the list on write
	showCategories bool // category names (not indices) are the visible form
}

// NewContinuous returns a continuous variable.
func NewContinuous(name string) Variable {
	return Variable{name: name, kind: Continuous}
}

// NewDiscrete returns a discrete variable over categories, in order.
// New categories are accommodated unless switched off with WithAccommodation(false).
func NewDiscrete(name string, categories ...string) (Variable, error) {
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if _, dup := seen[c]; dup {
			return Variable{}, errors.Wrapf(ErrDuplicateCategory, "variable %q: %q", name, c)
		}
		seen[c] = struct{}{}
	}
	return Variable{
		name:           name,
		kind:           Discrete,
		categories:     slices.Clone(categories),
		accommodate:    true,
		showCategories: true,
	}, nil
}

// NewDiscreteN returns a discrete variable with categories "0".."n-1".
func NewDiscreteN(name string, n int) Variable {
	v := Variable{name: name, kind: Discrete, accommodate: true, showCategories: true}
	return v.WithCategoriesUpTo(n)
}

// Name returns the variable name.
func (v Variable) Name() string { return v.name }

// Kind returns the variable kind.
func (v Variable) Kind() Kind { return v.kind }

// IsContinuous reports whether v is continuous.
func (v Variable) IsContinuous() bool { return v.kind == Continuous }

// IsDiscrete reports whether v is discrete.
func (v Variable) IsDiscrete() bool { return v.kind == Discrete }

// Categories returns a copy of the category labels.
func (v Variable) Categories() []string { return slices.Clone(v.categories) }

// NumCategories returns the number of categories (0 for continuous).
func (v Variable) NumCategories() int { return len(v.categories) }

// Category returns the label at index i, or "*" for MissingDiscrete and out-of-range indices.
func (v Variable) Category(i int) string {
	if i < 0 || i >= len(v.categories) {
		return "*"
	}
	return v.categories[i]
}

// IndexOf returns the index of category, or -1.
func (v Variable) IndexOf(category string) int {
	return slices.Index(v.categories, category)
}

// AccommodatesNewCategories reports whether unseen categories may be added on write.
func (v Variable) AccommodatesNewCategories() bool { return v.accommodate }

// CategoryNamesDisplayed reports whether category names, not indices, are the visible form.
func (v Variable) CategoryNamesDisplayed() bool { return v.showCategories }

// WithAccommodation returns v with the accommodation flag set to on.
func (v Variable) WithAccommodation(on bool) Variable {
	v.categories = slices.Clone(v.categories)
	v.accommodate = on
	return v
}

// WithCategoryNamesDisplayed returns v with the display flag set to on.
func (v Variable) WithCategoryNamesDisplayed(on bool) Variable {
	v.categories = slices.Clone(v.categories)
	v.showCategories = on
	return v
}

// Rename returns v under a new name.
func (v Variable) Rename(name string) Variable {
	v.categories = slices.Clone(v.categories)
	v.name = name
	return v
}

// WithCategory returns a variable that contains category and its index.
// If category is already present v is returned unchanged.
func (v Variable) WithCategory(category string) (Variable, int, error) {
	if v.kind != Discrete {
		return v, -1, errors.Wrapf(ErrNotDiscrete, "variable %q", v.name)
	}
	if i := v.IndexOf(category); i >= 0 {
		return v, i, nil
	}
	if !v.accommodate {
		return v, -1, errors.Wrapf(ErrNoAccommodation, "variable %q: category %q", v.name, category)
	}
	out := v
	out.categories = append(slices.Clone(v.categories), category)
	return out, len(out.categories) - 1, nil
}

// WithCategoriesUpTo returns a variable with at least n categories. Missing
// categories are named by their index, skipping labels already in use.
func (v Variable) WithCategoriesUpTo(n int) Variable {
	out := v
	out.categories = slices.Clone(v.categories)
	for k := len(out.categories); len(out.categories) < n; k++ {
		label := strconv.Itoa(k)
		if slices.Contains(out.categories, label) {
			continue
		}
		out.categories = append(out.categories, label)
	}
	return out
}

// Equal reports structural equality: name, kind and categories in order.
func (v Variable) Equal(o Variable) bool {
	return v.name == o.name && v.kind == o.kind && slices.Equal(v.categories, o.categories)
}

// String renders "name" for continuous and "name{a,b}" for discrete variables.
func (v Variable) String() string {
	if v.kind == Continuous {
		return v.name
	}
	return v.name + "{" + strings.Join(v.categories, ",") + "}"
}
