// File: entry.go
// Title: Log Entry Structure
// Description: Entry holds one log message with its context. Fields are plain
//              key/value pairs; formatters emit them in sorted key order.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-19 v0.2.0: Reduced to the context decorx commands carry

package log

import (
	"time"

	"github.com/msto63/decorx/foundation/utils/mapx"
)

// Entry represents a single log entry
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Error         error
	Duration      time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Merge combines two field sets, other wins on duplicate keys
func (f Fields) Merge(other Fields) Fields {
	return Fields(mapx.Merge(f, other))
}

// Clone creates a copy of the Fields
func (f Fields) Clone() Fields {
	return Fields(mapx.Clone(f))
}

// SortedKeys returns the field names in ascending order
func (f Fields) SortedKeys() []string {
	return mapx.SortedKeys(f)
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
