// ============================================================================
// decorx - Object Decorator Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the decorx components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for the decorx components
const (
	// Toolkit is the release version of the decorx command
	Toolkit = "0.1.0"

	// Component versions
	Object    = "0.1.0"
	Decorator = "0.1.0"
	Document  = "0.1.0"
	Config    = "0.2.0"
	Log       = "0.2.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "object":
		return Object
	case "decorator":
		return Decorator
	case "document":
		return Document
	case "config":
		return Config
	case "log":
		return Log
	default:
		return Toolkit
	}
}

// Components lists the component names in display order
func Components() []string {
	return []string{"object", "decorator", "document", "config", "log"}
}
