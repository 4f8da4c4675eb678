// Package timex provides date and interval helpers for gopress.
//
// Package: timex
// Title: Time Utilities
// Description: Unicode date pattern formatting, calendar day differences,
//              past/future checks, weekday names and mm:ss rendering of
//              second counts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-04
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
// - 2026-10-04 v0.1.1: FormatPattern supports quoted literals and fractions
//
// # Patterns
//
// FormatPattern understands the common Unicode date field symbols instead of
// Go reference layouts:
//
//	yyyy yy          year
//	MMMM MMM MM M    month name, abbreviation, padded, plain
//	dd d             day of month
//	EEEE EEE         weekday name, abbreviation
//	HH H hh h        hour (24h / 12h)
//	mm m ss s        minute, second
//	S...             fraction of a second, one digit per letter
//	a                AM / PM
//	Z ZZZZ ZZZZZ     zone offset -0700 / GMT-07:00 / -07:00 (Z for UTC)
//	z                zone abbreviation
//	'text'           literal, '' for a single quote
//
// Letters outside this table are copied unchanged.
//
//	timex.FormatPattern(t, "dd.MM.yyyy HH:mm") // 24.12.2025 18:30
//
// # Day differences
//
// DaysDifference counts whole calendar days elapsed between two instants in
// the location of the first one, so it follows daylight saving transitions.
package timex
