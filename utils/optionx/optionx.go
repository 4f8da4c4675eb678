// File: optionx.go
// Title: Optional Value Utilities
// Description: Or, IsNil, emptiness checks, zero defaults, TransformIf and
//              type assertion helpers over pointer optionals.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation

package optionx

import "github.com/msto63/gopress/utils/mathx"

// Of returns a pointer to a copy of v
func Of[T any](v T) *T {
	return &v
}

// Or returns *p, or def when p is nil
func Or[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// IsNil reports whether p is absent
func IsNil[T any](p *T) bool {
	return p == nil
}

// IsNilOrEmpty reports whether the string is absent or ""
func IsNilOrEmpty(p *string) bool {
	return p == nil || *p == ""
}

// IsNilOrEmptySlice reports whether the slice is absent or has no elements
func IsNilOrEmptySlice[T any](p *[]T) bool {
	return p == nil || len(*p) == 0
}

// IsNilOrEmptyMap reports whether the map is absent or has no entries
func IsNilOrEmptyMap[K comparable, V any](p *map[K]V) bool {
	return p == nil || len(*p) == 0
}

// OrEmpty returns *p or ""
func OrEmpty(p *string) string {
	return Or(p, "")
}

// OrZero returns *p or 0
func OrZero[T mathx.Number](p *T) T {
	return Or(p, 0)
}

// TransformIf applies fn to *p when p is present and predicate(*p) holds.
// Every other case is absent.
func TransformIf[T, R any](p *T, predicate func(T) bool, fn func(T) R) *R {
	if p == nil || predicate == nil || fn == nil {
		return nil
	}
	if !predicate(*p) {
		return nil
	}
	r := fn(*p)
	return &r
}

// Map applies fn to *p when present
func Map[T, R any](p *T, fn func(T) R) *R {
	return TransformIf(p, func(T) bool { return true }, fn)
}

// AsType asserts v to T; absent when v is nil or of another type
func AsType[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}
