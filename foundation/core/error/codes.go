// File: codes.go
// Title: Error Code Definitions
// Description: Error codes for the object, document and configuration layers of
//              decorx, with their category and the process exit status used by
//              the command line front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced platform codes with decorx codes, added ExitStatus

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Object model
	CodeInvalidConstant Code = "INVALID_CONSTANT"

	// Documents
	CodeInvalidFormat     Code = "INVALID_FORMAT"
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"

	// Configuration
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidConstant,
		CodeInvalidFormat, CodeUnsupportedFormat,
		CodeConfigError, CodeInvalidConfig, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidConstant:
		return "object"
	case CodeInvalidFormat, CodeUnsupportedFormat:
		return "document"
	case CodeConfigError, CodeInvalidConfig, CodeValidationFailed:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitStatus returns the process exit status the command line uses for this code.
// Status 1 is reserved for negative comparison results (like/equals/has).
func (c Code) ExitStatus() int {
	switch c {
	case CodeInvalidInput, CodeInvalidConstant, CodeValidationFailed:
		return 2
	case CodeNotFound:
		return 3
	case CodeInvalidFormat, CodeUnsupportedFormat:
		return 4
	case CodeConfigError, CodeInvalidConfig:
		return 5
	default:
		return 10
	}
}
