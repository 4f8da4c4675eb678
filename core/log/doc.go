// Package log provides structured logging for the gopress helper library.
//
// Package: log
// Title: gopress Structured Logging
// Description: Leveled, structured logger used by every gopress package that has
//              something to report: decode failures swallowed by the codec helpers,
//              store misses, fetch outcomes, values observed by stream operators and
//              panics recovered from scheduled work. Output formats are JSON, plain
//              text and colored console text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial logger, levels, entries and formatters
// - 2026-10-12 v0.1.1: Timer helper for fetch durations
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatText).
//		WithName("jsonx")
//
//	logger.Debug("decode failed", log.Field("target", "User"), log.Err(err))
//
// Loggers are immutable: every With* call returns a configured copy, so a
// package can derive its own named logger from the default one without
// affecting other packages.
//
// The package-level functions (Debug, Info, Warn, Error) write through the
// default logger, which can be replaced with SetDefault. The CLI does this
// after reading the log.level and log.format settings.
package log
