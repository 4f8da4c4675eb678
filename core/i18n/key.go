// File: key.go
// Title: Localized Keys
// Description: String-backed keys resolving against the default bundle.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package i18n

import "sync/atomic"

// Key is a message key, typically declared as a constant
type Key string

var defaultBundle atomic.Pointer[Bundle]

// Default returns the package default bundle; an empty "en" bundle until
// SetDefault is called
func Default() *Bundle {
	if b := defaultBundle.Load(); b != nil {
		return b
	}
	defaultBundle.CompareAndSwap(nil, New("en"))
	return defaultBundle.Load()
}

// SetDefault replaces the package default bundle
func SetDefault(b *Bundle) {
	if b != nil {
		defaultBundle.Store(b)
	}
}

// Localized resolves k against the default bundle
func (k Key) Localized() string {
	return Default().Localized(string(k))
}

// LocalizedWith resolves k against the default bundle and inserts param
func (k Key) LocalizedWith(param string) string {
	return Default().LocalizedWith(string(k), param)
}
