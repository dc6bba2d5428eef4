// SPDX-License-Identifier: MIT

package knowledge

import "errors"

var (
	// ErrNegativeTier indicates a tier index below zero.
	ErrNegativeTier = errors.New("knowledge: tier index must be >= 0")

	// ErrGroupIndex indicates a knowledge group index out of range.
	ErrGroupIndex = errors.New("knowledge: group index out of range")

	// ErrSyntax marks malformed knowledge text; messages carry the line number.
	ErrSyntax = errors.New("knowledge: syntax error")
)
