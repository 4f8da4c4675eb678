// File: mathx.go
// Title: Numeric Utilities
// Description: Integer predicates, factorial, roman numerals and float
//              rounding/angle helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation

package mathx

import (
	"math"
	"strings"
)

// Integer is satisfied by all built-in integer types
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by the built-in float types
type Float interface {
	~float32 | ~float64
}

// Number is satisfied by integer and float types
type Number interface {
	Integer | Float
}

// ===============================
// Integer Predicates
// ===============================

// IsEven reports whether n is divisible by two
func IsEven[T Integer](n T) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two
func IsOdd[T Integer](n T) bool {
	return n%2 != 0
}

// IsPrime checks divisibility by every integer in [2, n-1]. Values <= 1
// are not prime.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	for d := 2; d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Factorial returns n!; absent for negative n. Values above 20 overflow int64
// and are reported absent as well.
func Factorial(n int) (int, bool) {
	if n < 0 || n > 20 {
		return 0, false
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result, true
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// RomanNumeral converts n with the greedy subtractive table. n <= 0 yields "".
func RomanNumeral(n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			sb.WriteString(entry.symbol)
			n -= entry.value
		}
	}
	return sb.String()
}

// ===============================
// Float Helpers
// ===============================

// RoundToPlaces rounds x to the given number of decimal places. Negative
// places round to tens, hundreds and so on.
func RoundToPlaces(x float64, places int) float64 {
	divisor := math.Pow(10, float64(places))
	return math.Round(x*divisor) / divisor
}

// DegreesToRadians converts an angle in degrees
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadiansToDegrees converts an angle in radians
func RadiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
