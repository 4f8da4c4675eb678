// Package optionx provides helpers for optional values modelled as pointers.
//
// Package: optionx
// Title: Optional Value Utilities
// Description: Defaulting, emptiness checks and conditional transformation
//              for values that may be absent. Absence is a nil pointer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
//
// Usage:
//
//	var nickname *string
//	fmt.Println(optionx.Or(nickname, "anonymous")) // anonymous
//
//	age := optionx.Of(25)
//	label := optionx.TransformIf(age,
//	    func(a int) bool { return a >= 18 },
//	    func(a int) string { return "adult" })
//	// *label == "adult"
//
// TransformIf is absent both when the input is absent and when the
// predicate rejects it.
package optionx
