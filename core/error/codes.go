// File: codes.go
// Title: Error Codes
// Description: Machine-readable codes classifying gopress errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial code set
// - 2026-10-12 v0.1.1: IO_ERROR

package error

// Code classifies an error
type Code string

const (
	CodeUnknown         Code = "UNKNOWN"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeEncodingError   Code = "ENCODING_ERROR"
	CodeNotFound        Code = "NOT_FOUND"
	CodeNetworkError    Code = "NETWORK_ERROR"
	CodeInvalidResponse Code = "INVALID_RESPONSE"
	CodeDatabaseError   Code = "DATABASE_ERROR"
	CodeConfigError     Code = "CONFIG_ERROR"
	CodeIOError         Code = "IO_ERROR"
)

// String returns the code text
func (c Code) String() string {
	return string(c)
}

// defaultSeverity is the severity implied by a code when none was set
func defaultSeverity(code Code) Severity {
	switch code {
	case CodeInvalidInput, CodeInvalidFormat, CodeNotFound:
		return SeverityLow
	case CodeNetworkError, CodeDatabaseError, CodeIOError:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
