// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.Graph.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities.
//   - Keep tests stdlib-only.

package core_test

import (
	"errors"
	"reflect"
	"testing"
)

// Common node names used across core tests.
const (
	NodeEmpty = ""
	NodeA     = "A"
	NodeB     = "B"
	NodeC     = "C"
)

// NConcurrentAdds sizes the concurrency test.
const NConcurrentAdds = 200

// MustErrorIs fails if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: expected error %v, got %v", ctx, target, err)
	}
}

// MustErrorNil fails if err != nil.
func MustErrorNil(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", ctx, err)
	}
}

// MustEqual fails unless got and want are deeply equal.
func MustEqual(t *testing.T, got, want interface{}, ctx string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
}
