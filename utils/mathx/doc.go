// Package mathx provides integer and floating point helpers for gopress.
//
// Package: mathx
// Title: Numeric Utilities
// Description: Parity and primality checks, factorials, roman numerals,
//              decimal place rounding and angle conversion. The package also
//              owns the Number constraint shared by slicex and optionx.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
//
// Absent results:
//
// Operations that have no result for some inputs return a second boolean
// instead of an error. Factorial(-1) returns (0, false).
//
//	if f, ok := mathx.Factorial(5); ok {
//	    fmt.Println(f) // 120
//	}
//
// Rounding:
//
// RoundToPlaces scales by 10^places, rounds half away from zero and scales
// back. Binary floating point still applies: RoundToPlaces(2.675, 2) may give
// 2.67 or 2.68 depending on the representation of the scaled value.
package mathx
