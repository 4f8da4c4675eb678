// File: timer.go
// Title: Operation Timer
// Description: Measures the duration of an operation and logs it on Stop.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial timer

package log

import (
	"time"
)

// Timer measures one operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
}

func newTimer(logger *Logger, operation string) *Timer {
	return &Timer{logger: logger, operation: operation, start: time.Now()}
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs the elapsed time at debug level and returns it
func (t *Timer) Stop(fields ...Fields) time.Duration {
	elapsed := t.Elapsed()
	if !t.logger.IsLevelEnabled(LevelDebug) {
		return elapsed
	}

	entry := NewEntry(LevelDebug, t.operation+" completed")
	entry.Logger = t.logger.name
	entry.Duration = elapsed
	for k, v := range t.logger.contextFields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}
	t.logger.write(entry)
	return elapsed
}
