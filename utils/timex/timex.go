// File: timex.go
// Title: Time Utilities
// Description: Day differences, past/future checks, weekday names and
//              minute:second formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"math"
	"time"
)

// nowFunc is replaced in tests
var nowFunc = time.Now

// ===============================
// Comparison
// ===============================

// IsInPast reports whether t is before the current time
func IsInPast(t time.Time) bool {
	return IsInPastAt(t, nowFunc())
}

// IsInPastAt reports whether t is before now
func IsInPastAt(t, now time.Time) bool {
	return t.Before(now)
}

// IsInFuture reports whether t is after the current time
func IsInFuture(t time.Time) bool {
	return IsInFutureAt(t, nowFunc())
}

// IsInFutureAt reports whether t is after now
func IsInFutureAt(t, now time.Time) bool {
	return t.After(now)
}

// DaysDifference returns the number of whole days from from to to. The
// result is negative when to precedes from.
func DaysDifference(from, to time.Time) int {
	to = to.In(from.Location())

	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.Date()
	days := int(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC).
		Sub(time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)).Hours() / 24)

	// Drop the last day when its time of day has not been reached yet.
	switch {
	case days > 0 && from.AddDate(0, 0, days).After(to):
		days--
	case days < 0 && from.AddDate(0, 0, days).Before(to):
		days++
	}
	return days
}

// DayOfWeekName returns the English weekday name of t
func DayOfWeekName(t time.Time) string {
	return t.Weekday().String()
}

// ===============================
// Interval Formatting
// ===============================

// FormatMinutesSeconds renders a second count as "MM:SS". Minutes are not
// wrapped into hours, so 3620 yields "60:20". Fractions are truncated and
// non-finite input yields "00:00".
func FormatMinutesSeconds(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "00:00"
	}
	minutes := int(seconds / 60)
	secs := int(math.Mod(seconds, 60))
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatDurationMinutesSeconds is FormatMinutesSeconds for a time.Duration
func FormatDurationMinutesSeconds(d time.Duration) string {
	return FormatMinutesSeconds(d.Seconds())
}
