// File: example_test.go
// Title: Slice Utilities Examples
// Description: Runnable examples for slicex.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial examples

package slicex

import "fmt"

func ExampleChunk() {
	fmt.Println(Chunk([]int{1, 2, 3, 4, 5}, 2))
	// Output: [[1 2] [3 4] [5]]
}

func ExampleSafeIndex() {
	names := []string{"ada", "grace"}
	if name, ok := SafeIndex(names, 1); ok {
		fmt.Println(name)
	}
	_, ok := SafeIndex(names, 5)
	fmt.Println(ok)
	// Output:
	// grace
	// false
}

func ExampleRotateLeft() {
	fmt.Println(RotateLeft([]string{"a", "b", "c", "d"}, 1))
	fmt.Println(RotateLeft([]string{"a", "b", "c", "d"}, -1))
	// Output:
	// [b c d a]
	// [d a b c]
}

func ExampleNewIndexLookup() {
	lookup := NewIndexLookup([]string{"red", "green", "red", "blue"})
	i, _ := lookup.FirstIndex("red")
	fmt.Println(i)
	// Output: 0
}

func ExampleAverage() {
	avg, ok := Average([]int{3, 4, 5})
	fmt.Println(avg, ok)
	// Output: 4 true
}
