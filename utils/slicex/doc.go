// Package slicex provides generic collection helpers for gopress.
//
// Package: slicex
// Title: Slice Utilities
// Description: Safe indexing, chunking, set style operations, frequency
//              analysis, rotation and numeric aggregation over Go slices.
//              Every function is generic and treats nil and empty slices
//              the same way.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-02 v0.1.1: IndexLookup for repeated first-index queries
//
// # Absent results
//
// Lookups that may fail return (value, ok) instead of panicking:
//
//	v, ok := slicex.SafeIndex(items, 10)
//	idx, ok := slicex.FirstIndex(items, "b")
//	avg, ok := slicex.Average(scores)
//
// # Chunking
//
// Chunk splits a slice into groups of size elements; the last group may be
// shorter. A size <= 0 is a programming error and panics.
//
//	slicex.Chunk([]int{1, 2, 3, 4, 5}, 2) // [[1 2] [3 4] [5]]
//
// # Set operations
//
// Unique keeps first occurrences in order. Difference keeps order of the first
// slice. Intersection is deduplicated but its order is unspecified.
//
// # Repeated lookups
//
// FirstIndex is a linear scan. When many lookups hit the same slice build an
// IndexLookup once:
//
//	lookup := slicex.NewIndexLookup(ids)
//	for _, id := range queries {
//	    if i, ok := lookup.FirstIndex(id); ok { ... }
//	}
package slicex
