// File: format.go
// Title: Log Output Formats
// Description: Formatter implementations turning entries into JSON lines,
//              plain text lines or ANSI-colored console lines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-20
//
// Change History:
// - 2026-09-28 v0.1.0: JSON, text and console formatters
// - 2026-10-20 v0.1.1: Parse failures share the level error type

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format selects an output format
type Format int

const (
	// FormatJSON writes one JSON object per line
	FormatJSON Format = iota

	// FormatText writes human-readable lines
	FormatText

	// FormatConsole writes text lines colored by level
	FormatConsole
)

// String returns the configuration name of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name; unknown names yield FormatText and an error
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text", "":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatText, invalidName("format", format)
	}
}

// Formatter turns an entry into bytes ready to be written
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats entries as JSON objects
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC3339 timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format implements Formatter
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+5)
	for k, v := range entry.Fields {
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}
	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1e6
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats entries as single text lines
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a text formatter with clock-time timestamps
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format implements Formatter. Field keys are sorted so lines are stable.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s]", entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&b, " {%s}", entry.Logger)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
		}
	}
	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}
	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration=%s", entry.Duration)
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// ConsoleFormatter colors text lines by level
type ConsoleFormatter struct {
	*TextFormatter
}

// NewConsoleFormatter creates a console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format implements Formatter
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	data, err := f.TextFormatter.Format(entry)
	if err != nil {
		return nil, err
	}
	line := strings.TrimSuffix(string(data), "\n")
	return []byte(entry.Level.Color() + line + colorReset + "\n"), nil
}

// GetFormatter returns the formatter for a format, JSON for unknown values
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}
