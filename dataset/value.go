// SPDX-License-Identifier: MIT

package dataset

import (
	"math"
	"strconv"
)

// ValueKind tags a Value.
type ValueKind int

const (
	// MissingValue carries no payload.
	MissingValue ValueKind = iota
	// DoubleValue carries a float64.
	DoubleValue
	// CategoryValue carries a category index.
	CategoryValue
	// TextValue carries a raw string (category label or numeric literal).
	TextValue
)

// Value is the tagged cell union used by GetObject and SetObject.
type Value struct {
	kind ValueKind
	f    float64
	i    int
	s    string
}

// Missing returns the missing value.
func Missing() Value { return Value{} }

// Double wraps f; NaN becomes Missing.
func Double(f float64) Value {
	if math.IsNaN(f) {
		return Missing()
	}
	return Value{kind: DoubleValue, f: f}
}

// Category wraps a category index.
func Category(i int) Value { return Value{kind: CategoryValue, i: i} }

// Text wraps s; "" and "*" denote Missing.
func Text(s string) Value {
	if s == "" || s == "*" {
		return Missing()
	}
	return Value{kind: TextValue, s: s}
}

// Kind returns the tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsMissing reports whether v is Missing.
func (v Value) IsMissing() bool { return v.kind == MissingValue }

// AsDouble returns the float payload of a DoubleValue.
func (v Value) AsDouble() (float64, bool) { return v.f, v.kind == DoubleValue }

// AsCategory returns the index payload of a CategoryValue.
func (v Value) AsCategory() (int, bool) { return v.i, v.kind == CategoryValue }

// AsText returns the string payload of a TextValue.
func (v Value) AsText() (string, bool) { return v.s, v.kind == TextValue }

// String renders the payload; Missing renders as "*".
func (v Value) String() string {
	switch v.kind {
	case DoubleValue:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case CategoryValue:
		return strconv.Itoa(v.i)
	case TextValue:
		return v.s
	default:
		return "*"
	}
}
