// Package mapx provides generic map helpers for gopress.
//
// Package: mapx
// Title: Map Utilities
// Description: Filtering, in-place merging, defaulted lookup, JSON rendering
//              and deterministic key/value listing for Go maps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-01
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
//
// Merge mutates its destination; every other function leaves its inputs
// untouched.
//
//	settings := map[string]string{"theme": "dark"}
//	mapx.Merge(settings, map[string]string{"theme": "light", "lang": "de"})
//	// settings == {"theme": "light", "lang": "de"}
package mapx
