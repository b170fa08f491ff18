// File: timer.go
// Title: Operation Timer
// Description: Timer measures a decorx operation and logs its duration when
//              stopped, at debug level on success and error level on failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Reduced to Stop/StopWithError, duration on the entry

package log

import (
	"time"
)

// Timer represents a timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer stops
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs the completion of the operation at debug level. Calls after the
// first one return 0 and log nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(LevelDebug, t.operation+" completed", nil)
}

// StopWithError logs the failure of the operation at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelError, t.operation+" failed", err)
}

func (t *Timer) finish(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	if t.logger != nil {
		fields := t.fields.Merge(Fields{"operation": t.operation})
		t.logger.write(level, message, err, elapsed, fields)
	}
	return elapsed
}

// IsRunning returns true if the timer has not been stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
