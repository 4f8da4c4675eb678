// Package error provides the structured error type used across gopress.
//
// Package: error
// Title: gopress Structured Errors
// Description: Error values carrying a machine-readable code, a severity and
//              free-form details. Most gopress helpers expose absence-based
//              contracts and never return errors; the causes they swallow are
//              still built as *Error values so they can be logged with full
//              context. Packages that talk to external collaborators (config,
//              defaults stores, fetch) return these errors directly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial error type, codes and severities
//
// Usage:
//
//	err := gperror.Wrap(cause, "decode failed").
//		WithCode(gperror.CodeInvalidFormat).
//		WithOperation("jsonx.Decode").
//		WithDetail("target", "User")
//
//	if gperror.HasCode(err, gperror.CodeInvalidFormat) {
//		...
//	}
//
// The package is named error to mirror its role; import it under an alias
// such as gperror to avoid shadowing the builtin.
package error
