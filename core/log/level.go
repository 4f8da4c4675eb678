// File: level.go
// Title: Log Levels
// Description: Severity levels, their display tags and parsing from
//              configuration strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-20
//
// Change History:
// - 2026-09-28 v0.1.0: Initial level set
// - 2026-10-20 v0.1.1: Table driven names; parse failures are CONFIG_ERROR

package log

import (
	"strings"

	gperror "github.com/msto63/gopress/core/error"
)

// Level represents the importance of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo // default
	LevelWarn
	LevelError
	LevelFatal // exits after logging
)

// levelNames holds name, text tag and console color per level
var levelNames = [...]struct {
	name, tag, color string
}{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelFatal: {"fatal", "FTL", "\033[35m"},
}

// levelAliases are accepted by ParseLevel besides the names and tags
var levelAliases = map[string]Level{
	"":        LevelInfo,
	"warning": LevelWarn,
	"err":     LevelError,
}

const colorReset = "\033[0m"

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// String returns the lower case name of the level
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].name
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].tag
}

// Color returns the ANSI color sequence for console output
func (l Level) Color() string {
	if !l.valid() {
		return colorReset
	}
	return levelNames[l].color
}

// ShouldLog reports whether a message at level l passes minLevel
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// DefaultLevel returns the level used by New
func DefaultLevel() Level {
	return LevelInfo
}

// ParseLevel accepts level names and tags in any case. Unknown names yield
// LevelInfo and a CONFIG_ERROR.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	if l, ok := levelAliases[s]; ok {
		return l, nil
	}
	for l, n := range levelNames {
		if s == n.name || s == strings.ToLower(n.tag) {
			return Level(l), nil
		}
	}
	return LevelInfo, invalidName("level", level)
}

func invalidName(kind, input string) error {
	return gperror.New("invalid log "+kind+": "+input).
		WithCode(gperror.CodeConfigError).
		WithOperation("log.Parse").
		WithDetail(kind, input)
}
