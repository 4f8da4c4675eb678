// File: example_test.go
// Title: Numeric Utilities Examples
// Description: Runnable examples for mathx.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial examples

package mathx

import "fmt"

func ExampleFactorial() {
	if f, ok := Factorial(6); ok {
		fmt.Println(f)
	}
	_, ok := Factorial(-1)
	fmt.Println(ok)
	// Output:
	// 720
	// false
}

func ExampleRomanNumeral() {
	fmt.Println(RomanNumeral(1987))
	// Output: MCMLXXXVII
}

func ExampleRoundToPlaces() {
	fmt.Println(RoundToPlaces(3.14159, 2))
	// Output: 3.14
}
