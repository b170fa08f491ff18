// Package integration provides integration tests for the decorx foundation packages.
//
// Package: integration
// Title: decorx Foundation Integration Tests
// Description: Tests that verify the interaction between the foundation
//              packages: documents decoded by the codec flow through the
//              decorator, configuration drives encoding, and errors raised
//              in one package keep their code through wrapping and logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2026-10-19 v0.2.0: Rewritten for object, decorator, document and config
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - Decoded documents as decorator components
// - Configuration driven output encoding
// - Structural comparison across formats
//
// Error Integration Tests (error_integration_test.go):
// - Error codes and exit statuses across package boundaries
// - Error wrapping and root causes
// - Structured error logging
//
// Performance Integration Tests (performance_test.go):
// - Decorator and codec benchmarks on realistic document sizes
package integration
