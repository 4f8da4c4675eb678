// File: entry.go
// Title: Log Entry and Fields
// Description: A single log record and the Fields helpers used to attach
//              structured key/value data to it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial entry structure
// - 2026-10-12 v0.1.1: Duration field for timers

package log

import (
	"time"
)

// Entry is one log record
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
	Duration  time.Duration
}

// Fields holds structured key/value data for an entry
type Fields map[string]interface{}

// Field builds a single-key Fields value
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err builds a Fields value carrying an error message under "error"
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"error": err.Error()}
}

// Merge returns a new Fields value with the keys of both; other wins on conflict
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
