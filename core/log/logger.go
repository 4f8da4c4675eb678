// File: logger.go
// Title: Structured Logger
// Description: Immutable, concurrency-safe logger with leveled methods,
//              persistent context fields and integration with core/error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial logger
// - 2026-10-12 v0.1.1: LogError maps error severity to log level

package log

import (
	"errors"
	"io"
	"os"
	"sync"

	gperror "github.com/msto63/gopress/core/error"
)

// Logger writes structured entries to an output
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields

	// guards writes to output
	writeMu *sync.Mutex
}

// Config configures a logger in one step
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger writing JSON to stderr at the default level
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
		writeMu:       &sync.Mutex{},
	}
}

// NewWithConfig creates a logger from a Config
func NewWithConfig(config Config) *Logger {
	logger := New()
	logger.level = config.Level
	logger.formatter = GetFormatter(config.Format)
	logger.name = config.Name
	if config.Output != nil {
		logger.output = config.Output
	}
	return logger
}

// WithLevel returns a copy with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a copy with a different output format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithFormatter returns a copy using a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	clone := l.clone()
	clone.formatter = formatter
	return clone
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	clone.writeMu = &sync.Mutex{}
	return clone
}

// WithName returns a copy tagged with a logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a copy that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a copy that adds all fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// Trace logs at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs at fatal level and exits the process
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// DebugWithErr logs a debug message carrying err
func (l *Logger) DebugWithErr(message string, err error, fields ...Fields) {
	l.log(LevelDebug, message, err, fields...)
}

// WarnWithErr logs a warning carrying err
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// ErrorWithErr logs an error carrying err
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs err at a level derived from its severity. Errors that are not
// *gperror.Error values are logged at error level.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var gpErr *gperror.Error
	if !errors.As(err, &gpErr) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     gpErr.Code().String(),
		"error_severity": gpErr.Severity().String(),
	}
	if op := gpErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range gpErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch gpErr.Severity() {
	case gperror.SeverityLow:
		level = LevelDebug
	case gperror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, gpErr.Message(), gpErr.Unwrap(), fields)
}

// StartTimer starts a timer that logs the elapsed time when stopped
func (l *Logger) StartTimer(operation string) *Timer {
	return newTimer(l, operation)
}

// IsLevelEnabled reports whether level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	return l.level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}
	l.write(entry)
}

func (l *Logger) write(entry *Entry) {
	formatted, err := l.formatter.Format(entry)
	if err != nil {
		return
	}
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(formatted)
}

func (l *Logger) clone() *Logger {
	clone := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: make(Fields, len(l.contextFields)),
		writeMu:       l.writeMu,
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return clone
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the process-wide logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// Debug logs through the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs through the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs through the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs through the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
