// File: format.go
// Title: Log Format Definitions
// Description: JSON, text and console formatters. JSON entries are built as
//              ordered objects so that the standard keys come first and custom
//              fields follow in sorted order. The console formatter renders the
//              level badge with lipgloss.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-19 v0.2.0: Ordered JSON output, lipgloss console, logfmt removed

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dxerror "github.com/msto63/decorx/foundation/core/error"
	"github.com/msto63/decorx/foundation/core/object"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs text logs with a coloured level badge
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatText, dxerror.New(fmt.Sprintf("invalid log format: %s", format)).
			WithCode(dxerror.CodeInvalidConfig).
			WithOperation("log.ParseFormat").
			WithDetail("format", format)
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := object.New()
	data.Set("timestamp", entry.Timestamp.Format(f.TimestampFormat))
	data.Set("level", entry.Level.String())
	data.Set("message", entry.Message)

	if entry.Logger != "" {
		data.Set("logger", entry.Logger)
	}
	if entry.CorrelationID != "" {
		data.Set("correlation_id", entry.CorrelationID)
	}

	for _, k := range entry.Fields.SortedKeys() {
		v := entry.Fields[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data.Set(k, v)
	}

	if entry.Error != nil {
		data.Set("error", entry.Error.Error())
		if dxErr, ok := dxerror.As(entry.Error); ok {
			if raw, err := dxErr.MarshalJSON(); err == nil {
				data.Set("error_details", json.RawMessage(raw))
			}
		}
	}

	if entry.Duration > 0 {
		data.Set("duration_ms", float64(entry.Duration.Nanoseconds())/1e6)
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(f.render(entry, fmt.Sprintf("[%s]", entry.Level.ShortString()))), nil
}

func (f *TextFormatter) render(entry *Entry, badge string) string {
	var parts []string

	if !f.DisableTimestamp {
		parts = append(parts, entry.Timestamp.Format(f.TimestampFormat))
	}
	parts = append(parts, badge)

	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Logger))
	}
	if entry.CorrelationID != "" {
		parts = append(parts, fmt.Sprintf("(cid=%s)", entry.CorrelationID))
	}

	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		fieldParts := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.SortedKeys() {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, fmt.Sprintf("[%s]", strings.Join(fieldParts, " ")))
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}
	if entry.Duration > 0 {
		parts = append(parts, fmt.Sprintf("duration=%s", entry.Duration))
	}

	return strings.Join(parts, " ") + "\n"
}

// ConsoleFormatter formats log entries for terminals
type ConsoleFormatter struct {
	DisableColors bool
	*TextFormatter
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	badge := entry.Level.ShortString()
	if !f.DisableColors {
		badge = entry.Level.Style().Render(badge)
	}
	return []byte(f.render(entry, badge)), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}
