// File: case.go
// Title: Case Conversion
// Description: snake_case to CamelCase and back.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-01
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerUpperBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// SnakeToCamelCase title-cases each '_' separated component and joins them.
// Title casing lower-cases the remainder of a component, so "user_ID" becomes
// "UserId".
func SnakeToCamelCase(s string) string {
	// Casers keep state and must not be shared across goroutines.
	title := cases.Title(language.Und)

	components := strings.Split(s, "_")
	for i, c := range components {
		components[i] = title.String(c)
	}
	return strings.Join(components, "")
}

// CamelToSnakeCase inserts '_' between a lower-case and an upper-case ASCII
// letter and lower-cases the result
func CamelToSnakeCase(s string) string {
	return strings.ToLower(lowerUpperBoundary.ReplaceAllString(s, "${1}_${2}"))
}
