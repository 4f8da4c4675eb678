// Package stringx provides string and rune helpers for gopress.
//
// Package: stringx
// Title: String Utilities
// Description: Emptiness and blankness checks, whitespace removal, email and
//              IPv4 validation, URL conversion, truncation, numeric parsing,
//              word capitalization, slugs, character counting, Base64 and
//              snake/camel case conversion. Rune helpers classify vowels and
//              emoji.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-03
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
// - 2026-10-03 v0.1.1: Strict IPv4 validation, rune classification
//
// # Emptiness
//
// IsEmpty is true only for "". IsBlank is true for "" and for strings made of
// whitespace only.
//
// # Truncation
//
// Truncate counts runes. A string longer than n keeps its first n runes and
// gets "..." appended, so the result is n+3 runes long:
//
//	stringx.Truncate("Hello, World!", 5) // "Hello..."
//	stringx.Truncate("Hi", 5)            // "Hi"
//
// # Case conversion
//
// SnakeToCamelCase title-cases every underscore separated component with
// golang.org/x/text/cases and joins them, which yields upper camel case:
//
//	stringx.SnakeToCamelCase("hello_world") // "HelloWorld"
//	stringx.CamelToSnakeCase("helloWorld")  // "hello_world"
//
// # IPv4
//
// IsValidIPv4 checks the dotted shape only and accepts "999.1.1.1".
// IsValidIPv4Strict also enforces octet ranges through net/netip.
package stringx
