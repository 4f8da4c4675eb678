// File: example_test.go
// Title: JSON Helpers Examples
// Description: Runnable examples for jsonx.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-04
//
// Change History:
// - 2026-10-04 v0.1.0: Initial examples

package jsonx

import "fmt"

func ExampleHexString() {
	fmt.Println(HexString([]byte("Hello, World!")))
	// Output: 48656c6c6f2c20576f726c6421
}

func ExampleEncodeString() {
	s, _ := EncodeString(map[string]int{"b": 2, "a": 1})
	fmt.Println(s)
	// Output:
	// {
	//   "a": 1,
	//   "b": 2
	// }
}
