// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities to
//              log levels when reporting an error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity derivation for decorx codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates rejected input the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a failure the caller cannot correct by changing input
	SeverityHigh

	// SeverityCritical indicates a broken invariant
	SeverityCritical
)

// String returns the string representation of the severity level
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

// IsHigherThan reports whether s is more severe than other
func (s Severity) IsHigherThan(other Severity) bool {
	return s > other
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeInvalidConstant, CodeInvalidFormat,
		CodeUnsupportedFormat, CodeValidationFailed:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
