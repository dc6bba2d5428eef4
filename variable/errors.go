// SPDX-License-Identifier: MIT

package variable

import "errors"

var (
	// ErrEmptyName indicates a variable with an empty name.
	ErrEmptyName = errors.New("variable: name is empty")

	// ErrDuplicateName indicates two variables sharing a name in one list.
	ErrDuplicateName = errors.New("variable: duplicate variable name")

	// ErrDuplicateCategory indicates a repeated category label.
	ErrDuplicateCategory = errors.New("variable: duplicate category")

	// ErrNotDiscrete indicates a category operation on a continuous variable.
	ErrNotDiscrete = errors.New("variable: not a discrete variable")

	// ErrNoAccommodation indicates category growth on a variable that forbids it.
	ErrNoAccommodation = errors.New("variable: new categories are not accommodated")
)
