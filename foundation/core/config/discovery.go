// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for a decorx configuration file
//              and loads the first match. Without a match the built-in defaults
//              apply unless a file is required.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: decorx search paths, JSON support, defaults when absent

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/msto63/decorx/foundation/core/document"
	dxerror "github.com/msto63/decorx/foundation/core/error"
	"github.com/msto63/decorx/foundation/core/object"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string       // Directories to search for config files
	Filenames  []string       // Base filenames to look for (without extension)
	Extensions []string       // File extensions to try
	EnvPrefix  string         // Environment variable prefix for overrides
	Defaults   *object.Object // Values for keys the file leaves unset
	Required   bool           // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the decorx search locations: the working
// directory, the user config directory and the home directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "decorx"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{".decorx", "decorx"},
		Extensions: []string{".toml", ".yaml", ".yml", ".json"},
		EnvPrefix:  EnvPrefix,
		Defaults:   DefaultValues(),
	}
}

// Discover loads the first configuration file found
func Discover(options DiscoveryOptions) (*Config, error) {
	configPath, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return New(LoadOptions{
			Format:    document.FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		}), nil
	}

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		Format:    document.FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, dxerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", dxerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(candidates, ", "))).
		WithCode(dxerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every path discovery would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
