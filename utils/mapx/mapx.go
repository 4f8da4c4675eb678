// File: mapx.go
// Title: Map Utilities
// Description: Filter, Merge, ValueOr, ToJSONString, Keys and Values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-20
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
// - 2026-10-20 v0.1.1: Merge skips a nil destination

package mapx

import (
	"cmp"
	"encoding/json"
	"slices"

	"github.com/msto63/gopress/core/log"
	"github.com/msto63/gopress/utils/optionx"
)

// Filter returns a new map holding the entries that satisfy predicate
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	result := make(map[K]V)
	if predicate == nil {
		return result
	}
	for k, v := range m {
		if predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// Merge copies every entry of src into dst, overwriting existing keys. A nil
// dst cannot be written to; the merge is skipped and logged.
func Merge[K comparable, V any](dst, src map[K]V) {
	if dst == nil {
		if len(src) > 0 {
			log.GetDefault().WithName("mapx").Warn("merge into nil map skipped", log.Fields{
				"operation": "mapx.Merge",
				"entries":   len(src),
			})
		}
		return
	}
	for k, v := range src {
		dst[k] = v
	}
}

// ValueOr returns m[key], or def when the key is missing
func ValueOr[K comparable, V any](m map[K]V, key K, def V) V {
	var present *V
	if v, ok := m[key]; ok {
		present = &v
	}
	return optionx.Or(present, def)
}

// ToJSONString renders m as compact JSON with sorted keys; absent when a
// value cannot be encoded
func ToJSONString[K comparable, V any](m map[K]V) (string, bool) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Keys returns the keys of m in ascending order
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Values returns the values of m ordered by their keys
func Values[K cmp.Ordered, V any](m map[K]V) []V {
	keys := Keys(m)
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return values
}
