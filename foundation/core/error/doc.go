// Package error provides the structured error type used across decorx.
//
// Package: error
// Title: decorx Error Handling
// Description: Structured errors carrying a code, a severity, an operation name,
//              key/value details and a captured stack trace. The code drives both
//              log level selection and the exit status of the decorx command.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced code set to the object/document/config domain
//
// Usage:
//
//	err := error.New("a constant must be a primitive").
//		WithCode(error.CodeInvalidConstant).
//		WithOperation("decorator.Constant").
//		WithDetail("key", "NAME")
//
//	if error.HasCode(err, error.CodeInvalidConstant) {
//		// reject input
//	}
package error
