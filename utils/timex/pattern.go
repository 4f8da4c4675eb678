// File: pattern.go
// Title: Unicode Date Patterns
// Description: Formats a time with Unicode (ICU) style date field symbols.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-20
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
// - 2026-10-04 v0.1.1: Quoted literals and fractional seconds
// - 2026-10-20 v0.1.2: ICU zone forms ZZZZ and ZZZZZ

package timex

import (
	"strconv"
	"strings"
	"time"
)

// FormatPattern formats t according to a Unicode date pattern such as
// "yyyy-MM-dd HH:mm:ss"
func FormatPattern(t time.Time, pattern string) string {
	var sb strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			i = writeQuoted(&sb, runes, i)
			continue
		}

		if !isPatternLetter(r) {
			sb.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		writeField(&sb, t, r, n)
		i += n
	}
	return sb.String()
}

// writeQuoted copies a quoted literal starting at runes[i] and returns the
// index after the closing quote. '' is an escaped quote.
func writeQuoted(sb *strings.Builder, runes []rune, i int) int {
	if i+1 < len(runes) && runes[i+1] == '\'' {
		sb.WriteRune('\'')
		return i + 2
	}
	i++
	for i < len(runes) {
		if runes[i] == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				sb.WriteRune('\'')
				i += 2
				continue
			}
			return i + 1
		}
		sb.WriteRune(runes[i])
		i++
	}
	return i
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func writeField(sb *strings.Builder, t time.Time, letter rune, n int) {
	switch letter {
	case 'y':
		if n == 2 {
			sb.WriteString(pad(t.Year()%100, 2))
		} else {
			sb.WriteString(pad(t.Year(), n))
		}
	case 'M', 'L':
		switch {
		case n >= 4:
			sb.WriteString(t.Month().String())
		case n == 3:
			sb.WriteString(t.Month().String()[:3])
		default:
			sb.WriteString(pad(int(t.Month()), n))
		}
	case 'd':
		sb.WriteString(pad(t.Day(), n))
	case 'D':
		sb.WriteString(pad(t.YearDay(), n))
	case 'E':
		if n >= 4 {
			sb.WriteString(t.Weekday().String())
		} else {
			sb.WriteString(t.Weekday().String()[:3])
		}
	case 'H':
		sb.WriteString(pad(t.Hour(), n))
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		sb.WriteString(pad(h, n))
	case 'm':
		sb.WriteString(pad(t.Minute(), n))
	case 's':
		sb.WriteString(pad(t.Second(), n))
	case 'S':
		frac := pad(t.Nanosecond(), 9)
		if n <= 9 {
			sb.WriteString(frac[:n])
		} else {
			sb.WriteString(frac + strings.Repeat("0", n-9))
		}
	case 'a':
		if t.Hour() < 12 {
			sb.WriteString("AM")
		} else {
			sb.WriteString("PM")
		}
	case 'Z':
		switch {
		case n >= 5:
			sb.WriteString(t.Format("Z07:00"))
		case n == 4:
			if _, offset := t.Zone(); offset == 0 {
				sb.WriteString("GMT")
			} else {
				sb.WriteString("GMT" + t.Format("-07:00"))
			}
		default:
			sb.WriteString(t.Format("-0700"))
		}
	case 'z':
		sb.WriteString(t.Format("MST"))
	default:
		sb.WriteString(strings.Repeat(string(letter), n))
	}
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
