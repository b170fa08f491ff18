// Package log provides structured logging for decorx.
//
// Package: log
// Title: decorx Structured Logging
// Description: Levelled, structured logging with JSON, text and console
//              output. Entries carry a logger name, a correlation id shared by
//              all entries of one command run, custom fields and, for decorx
//              errors, the error code, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Adapted to the decorx command line
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Name:   "decorx",
//	}).WithField("command", "extend")
//
//	logger.Debug("source merged", log.Fields{"keys": 3})
//	logger.LogError(err)
//
//	timer := logger.StartTimer("extend")
//	defer timer.Stop()
package log
