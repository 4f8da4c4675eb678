// File: stringx.go
// Title: String Utilities
// Description: Core string predicates, validation and transformation helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-03
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
// - 2026-10-03 v0.1.1: IsValidIPv4Strict

package stringx

import (
	"encoding/base64"
	"net/netip"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Empty is the empty string
const Empty = ""

// Ellipsis is appended by Truncate
const Ellipsis = "..."

var (
	emailPattern = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	ipv4Pattern  = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)
	slugStrip    = regexp.MustCompile(`[^a-zA-Z0-9-]`)
)

// ===============================
// Predicates
// ===============================

// IsEmpty reports whether s has no characters
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or consists of whitespace only
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether s is non-empty and every rune is a decimal digit
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsValidEmail matches the whole of s against a simple address pattern
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidIPv4 checks for four dot separated groups of one to three digits.
// Octet values are not range checked.
func IsValidIPv4(s string) bool {
	return ipv4Pattern.MatchString(s)
}

// IsValidIPv4Strict accepts only well-formed IPv4 addresses with octets in
// 0..255 and no leading zeros
func IsValidIPv4Strict(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// ContainsSubstring reports whether sub occurs in s. An empty sub never
// matches.
func ContainsSubstring(s, sub string) bool {
	return sub != "" && strings.Contains(s, sub)
}

// BoolValue is true only for "true" in any letter case
func BoolValue(s string) bool {
	return strings.ToLower(s) == "true"
}

// ===============================
// Transformation
// ===============================

// Clear resets *s to the empty string
func Clear(s *string) {
	if s != nil {
		*s = Empty
	}
}

// RemoveWhitespaceAndNewlines removes every space and '\n'. Tabs and other
// whitespace are kept.
func RemoveWhitespaceAndNewlines(s string) string {
	return strings.NewReplacer(" ", "", "\n", "").Replace(s)
}

// TrimWhitespace removes leading and trailing whitespace and newlines
func TrimWhitespace(s string) string {
	return strings.TrimSpace(s)
}

// Truncate keeps the first n runes of s and appends Ellipsis when s is longer
// than n runes. Negative n behaves like 0.
func Truncate(s string, n int) string {
	n = max(n, 0)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + Ellipsis
}

// CapitalizeEachWord upper-cases the first letter of every space separated
// word and leaves the rest of the word unchanged
func CapitalizeEachWord(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToTitle(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// Slugify replaces spaces with '-', drops everything outside [a-zA-Z0-9-] and
// lower-cases the result
func Slugify(s string) string {
	slug := strings.ReplaceAll(s, " ", "-")
	return strings.ToLower(slugStrip.ReplaceAllString(slug, ""))
}

// CountOccurrences counts every rune of s
func CountOccurrences(s string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	return counts
}

// ToBase64 encodes the UTF-8 bytes of s with the standard alphabet
func ToBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// ===============================
// Conversion
// ===============================

// ToURL parses s as a URL. Empty input, embedded whitespace and parse
// failures are absent.
func ToURL(s string) (*url.URL, bool) {
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return nil, false
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, false
	}
	return u, true
}

// SafeToInt parses s as a base 10 integer with optional sign; absent on any
// syntax error or overflow
func SafeToInt(s string) (int, bool) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}
