// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter decorx diagnostics. LevelOff silences
//              the logger completely, which is the default for plain command
//              output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Replaced audit/fatal with off, lipgloss level styles

package log

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	dxerror "github.com/msto63/decorx/foundation/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace traces every decorator step
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions
	LevelError

	// LevelOff disables logging
	LevelOff
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelOff:
		return "off"
	default:
		return "unknown"
	}
}

// ShortString returns a short string representation of the log level
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	default:
		return "???"
	}
}

var levelColors = map[Level]lipgloss.Color{
	LevelTrace: lipgloss.Color("#64748B"), // Slate 500
	LevelDebug: lipgloss.Color("#06B6D4"), // Cyan
	LevelInfo:  lipgloss.Color("#10B981"), // Emerald
	LevelWarn:  lipgloss.Color("#F59E0B"), // Amber
	LevelError: lipgloss.Color("#EF4444"), // Red
}

// Style returns the console style for the level badge
func (l Level) Style() lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if c, ok := levelColors[l]; ok {
		style = style.Foreground(c)
	}
	return style
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l != LevelOff && minLevel != LevelOff && l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "off", "none", "silent":
		return LevelOff, nil
	default:
		return DefaultLevel(), dxerror.New(fmt.Sprintf("invalid log level: %s", level)).
			WithCode(dxerror.CodeInvalidConfig).
			WithOperation("log.ParseLevel").
			WithDetail("level", level)
	}
}

// DefaultLevel returns the level used when none is configured
func DefaultLevel() Level {
	return LevelWarn
}
