// File: builder.go
// Title: Configure Builder
// Description: Generic configure-then-return helper for widgets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package ui

// Configure runs fn against v and returns v. Views additionally stop
// translating their autoresizing mask into constraints.
func Configure[T any](v T, fn func(T)) T {
	if fn != nil {
		fn(v)
	}
	if vl, ok := any(v).(ViewLike); ok {
		if view := vl.AsView(); view != nil {
			view.TranslatesAutoresizingMaskIntoConstraints = false
		}
	}
	return v
}
