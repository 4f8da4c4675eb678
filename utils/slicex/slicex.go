// File: slicex.go
// Title: Slice Utilities
// Description: Generic slice helpers: safe access, transformation, chunking,
//              set operations, rotation and aggregation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-02 v0.1.1: IndexLookup, CompactNils

package slicex

import (
	"fmt"

	"github.com/msto63/gopress/utils/mathx"
)

// ===============================
// Access
// ===============================

// SafeIndex returns s[i] when i is in range
func SafeIndex[T any](s []T, i int) (T, bool) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}
	return s[i], true
}

// Slice returns s[from:to] when 0 <= from < len(s) and from <= to <= len(s)
func Slice[T any](s []T, from, to int) ([]T, bool) {
	if from < 0 || from >= len(s) || to < from || to > len(s) {
		return nil, false
	}
	return s[from:to], true
}

// IsEmpty reports whether s has no elements
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// Contains reports whether v occurs in s
func Contains[T comparable](s []T, v T) bool {
	_, ok := FirstIndex(s, v)
	return ok
}

// FirstIndex returns the index of the first element equal to v
func FirstIndex[T comparable](s []T, v T) (int, bool) {
	for i, item := range s {
		if item == v {
			return i, true
		}
	}
	return -1, false
}

// IndexLookup answers FirstIndex queries against a fixed slice in constant
// time. It reflects the slice contents at construction.
type IndexLookup[T comparable] struct {
	first map[T]int
}

// NewIndexLookup indexes s in one pass; the earliest index of each value wins
func NewIndexLookup[T comparable](s []T) *IndexLookup[T] {
	first := make(map[T]int, len(s))
	for i, item := range s {
		if _, seen := first[item]; !seen {
			first[item] = i
		}
	}
	return &IndexLookup[T]{first: first}
}

// FirstIndex returns the first index of v in the indexed slice
func (l *IndexLookup[T]) FirstIndex(v T) (int, bool) {
	if l == nil {
		return -1, false
	}
	i, ok := l.first[v]
	if !ok {
		return -1, false
	}
	return i, true
}

// Len returns the number of distinct indexed values
func (l *IndexLookup[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.first)
}

// ===============================
// Transformation
// ===============================

// Filter returns the elements matching predicate
func Filter[T any](s []T, predicate func(T) bool) []T {
	if s == nil || predicate == nil {
		return nil
	}
	result := make([]T, 0, len(s))
	for _, item := range s {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map applies fn to every element
func Map[T, R any](s []T, fn func(T) R) []R {
	if s == nil || fn == nil {
		return nil
	}
	result := make([]R, len(s))
	for i, item := range s {
		result[i] = fn(item)
	}
	return result
}

// Reduce folds s into a single value starting at initial
func Reduce[T, R any](s []T, initial R, fn func(R, T) R) R {
	acc := initial
	if fn == nil {
		return acc
	}
	for _, item := range s {
		acc = fn(acc, item)
	}
	return acc
}

// CompactNils dereferences the non-nil pointers of s, keeping their order
func CompactNils[T any](s []*T) []T {
	result := make([]T, 0, len(s))
	for _, p := range s {
		if p != nil {
			result = append(result, *p)
		}
	}
	return result
}

// Chunk splits s into consecutive groups of size elements. The last group
// holds the remainder. Panics when size <= 0.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 {
		panic(fmt.Sprintf("slicex.Chunk: size must be positive, got %d", size))
	}
	if len(s) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunk := make([]T, end-start)
		copy(chunk, s[start:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// RotateLeft returns a copy of s rotated left by n positions. Negative n
// rotates right; n wraps modulo len(s).
func RotateLeft[T any](s []T, n int) []T {
	if len(s) == 0 {
		return []T{}
	}
	k := n % len(s)
	if k < 0 {
		k += len(s)
	}
	result := make([]T, 0, len(s))
	result = append(result, s[k:]...)
	return append(result, s[:k]...)
}

// ===============================
// Set Operations
// ===============================

// Unique keeps the first occurrence of every element, in order
func Unique[T comparable](s []T) []T {
	if s == nil {
		return nil
	}
	seen := make(map[T]struct{}, len(s))
	result := make([]T, 0, len(s))
	for _, item := range s {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// GroupBy buckets elements by key, preserving element order inside a bucket
func GroupBy[T any, K comparable](s []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	if key == nil {
		return groups
	}
	for _, item := range s {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Difference returns the elements of a that do not occur in b
func Difference[T comparable](a, b []T) []T {
	exclude := toSet(b)
	result := make([]T, 0, len(a))
	for _, item := range a {
		if _, ok := exclude[item]; !ok {
			result = append(result, item)
		}
	}
	return result
}

// Intersection returns the distinct elements present in both a and b. The
// order of the result is unspecified.
func Intersection[T comparable](a, b []T) []T {
	inB := toSet(b)
	common := make(map[T]struct{})
	for _, item := range a {
		if _, ok := inB[item]; ok {
			common[item] = struct{}{}
		}
	}
	result := make([]T, 0, len(common))
	for item := range common {
		result = append(result, item)
	}
	return result
}

// MostFrequent returns the element with the highest count. Ties resolve to
// any of the tied elements.
func MostFrequent[T comparable](s []T) (T, bool) {
	var best T
	if len(s) == 0 {
		return best, false
	}
	counts := make(map[T]int, len(s))
	bestCount := 0
	for _, item := range s {
		counts[item]++
		if counts[item] > bestCount {
			best, bestCount = item, counts[item]
		}
	}
	return best, true
}

func toSet[T comparable](s []T) map[T]struct{} {
	set := make(map[T]struct{}, len(s))
	for _, item := range s {
		set[item] = struct{}{}
	}
	return set
}

// ===============================
// Aggregation
// ===============================

// Sum adds all elements; an empty slice sums to 0
func Sum[T mathx.Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// Product multiplies all elements; an empty slice yields 1
func Product[T mathx.Number](s []T) T {
	total := T(1)
	for _, v := range s {
		total *= v
	}
	return total
}

// Average returns the arithmetic mean as float64; absent for an empty slice
func Average[T mathx.Number](s []T) (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	var total float64
	for _, v := range s {
		total += float64(v)
	}
	return total / float64(len(s)), true
}
