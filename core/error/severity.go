// File: severity.go
// Title: Error Severity
// Description: Severity levels used to pick the log level of an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial severities

package error

// Severity ranks how serious an error is
type Severity int

const (
	// SeverityLow covers expected failures such as malformed input
	SeverityLow Severity = iota

	// SeverityMedium covers failures with an obvious workaround
	SeverityMedium

	// SeverityHigh covers failures of an external collaborator
	SeverityHigh

	// SeverityCritical covers failures that leave the process unusable
	SeverityCritical
)

// String returns the lower case severity name
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
