// ============================================================================
// decorx - Object Decorator Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/msto63/decorx/foundation/core/config"
	dxlog "github.com/msto63/decorx/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, usually the command path
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format (json, text, console)
	Format string

	// Verbose lowers the level to at least debug
	Verbose bool

	// Output destination (default: stderr)
	Output io.Writer

	// CorrelationID tags every entry; a random UUID is used when empty
	CorrelationID string

	// NoColor disables console colours; NO_COLOR in the environment does too
	NoColor bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a logger for one command run
func NewLogger(cfg LoggerConfig) (*dxlog.Logger, error) {
	level, err := dxlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose && (level > dxlog.LevelDebug) {
		level = dxlog.LevelDebug
	}

	format, err := dxlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	_, noColorEnv := os.LookupEnv("NO_COLOR")

	return dxlog.NewWithConfig(dxlog.Config{
		Level:         level,
		Format:        format,
		Output:        output,
		Name:          cfg.Name,
		CorrelationID: correlationID,
		DisableColors: cfg.NoColor || noColorEnv,
	}), nil
}

// FromConfig creates a logger from the log.* settings of cfg
func FromConfig(cfg *config.Config, name string, verbose bool, output io.Writer) (*dxlog.Logger, error) {
	lc := DefaultLoggerConfig(name)
	lc.Level = cfg.GetString(config.KeyLogLevel, lc.Level)
	lc.Format = cfg.GetString(config.KeyLogFormat, lc.Format)
	lc.Verbose = verbose
	lc.Output = output
	return NewLogger(lc)
}

// NewCorrelationID returns a fresh id for grouping the entries of one run
func NewCorrelationID() string {
	return uuid.NewString()
}
