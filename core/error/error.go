// File: error.go
// Title: Structured Error Type
// Description: Error implementation with code, severity, operation and
//              details, compatible with errors.Is / errors.As unwrapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-03
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-03 v0.1.1: errors.As based helpers

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Error is a structured error
type Error struct {
	message     string
	cause       error
	code        Code
	severity    Severity
	severitySet bool
	operation   string
	details     map[string]interface{}
	timestamp   time.Time
}

// New creates an error with a message and CodeUnknown
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		details:   make(map[string]interface{}),
		timestamp: time.Now(),
	}
}

// Wrap wraps err with a message; a nil err yields nil. The code, severity and
// details of a wrapped *Error are inherited.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := New(message)
	wrapped.cause = err

	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		wrapped.severitySet = inner.severitySet
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
	}
	return wrapped
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the code; the severity follows the code unless set explicitly
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if !e.severitySet {
		e.severity = defaultSeverity(code)
	}
	return e
}

// WithSeverity sets the severity explicitly
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	e.severitySet = true
	return e
}

// WithOperation records the operation that failed
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds one detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds several details
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// Message returns the message without the cause
func (e *Error) Message() string {
	return e.message
}

// Code returns the code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the failed operation
func (e *Error) Operation() string {
	return e.operation
}

// Timestamp returns the creation time
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// MarshalJSON renders the error for structured logs
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// HasCode reports whether any *Error in err's chain carries code
func HasCode(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.code == code {
			return true
		}
		err = e.cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}
