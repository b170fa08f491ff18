// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads decorx settings from TOML, YAML or JSON
//              files with environment overrides, defaults and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Ordered object storage for decorx

/*
Package config provides configuration management for the decorx command.

Package: config
Title: Core Configuration Management
Description: Settings are stored as an ordered object and read with dot
             notation. Environment variables override file values, built-in
             defaults fill whatever a file leaves unset.
Author: msto63
Version: v0.2.0
Created: 2025-01-25
Modified: 2026-10-19

# Loading

	cfg, err := config.LoadWithOptions("decorx.toml", config.LoadOptions{
		EnvPrefix: config.EnvPrefix,
		Defaults:  config.DefaultValues(),
	})
	if err != nil {
		return err
	}
	format := cfg.GetString(config.KeyOutputFormat)
	indent := cfg.GetInt(config.KeyOutputIndent, 2)

# Environment Overrides

Keys map to upper-case variables joined with underscores:

	export DECORX_OUTPUT_FORMAT=yaml
	export DECORX_LOG_LEVEL=debug

# Discovery

Discover looks for .decorx.* and decorx.* in the working directory, the user
configuration directory and the home directory:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())

# Validation

	if err := cfg.Validate(nil).Err(); err != nil {
		return err
	}
*/
package config
