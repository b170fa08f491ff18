// File: config.go
// Title: Core Configuration Management Implementation
// Description: Config loads decorx settings from TOML, YAML or JSON files.
//              Values are addressed with dot notation, environment variables
//              with the configured prefix take precedence, and defaults fill
//              the keys a file leaves null or unset.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Ordered object storage, defaults via Augment, no watching

package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/msto63/decorx/foundation/core/decorator"
	"github.com/msto63/decorx/foundation/core/document"
	dxerror "github.com/msto63/decorx/foundation/core/error"
	"github.com/msto63/decorx/foundation/core/object"
)

// EnvPrefix is the environment prefix decorx reads overrides from
const EnvPrefix = "DECORX"

// Recognised configuration keys
const (
	KeyOutputFormat = "output.format"
	KeyOutputIndent = "output.indent"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
)

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      *object.Object
	filePath  string
	format    document.Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    document.Format // File format (default: auto-detect)
	EnvPrefix string          // Environment variable prefix (default: none)
	Defaults  *object.Object  // Values for keys that are null or unset
}

// DefaultValues returns the built-in decorx settings
func DefaultValues() *object.Object {
	output := object.New()
	output.Set("format", "json")
	output.Set("indent", document.DefaultIndent)

	logging := object.New()
	logging.Set("level", "warn")
	logging.Set("format", "text")

	defaults := object.New()
	defaults.Set("output", output)
	defaults.Set("log", logging)
	return defaults
}

// New creates a configuration without a backing file
func New(options LoadOptions) *Config {
	c := &Config{
		data:      object.New(),
		format:    options.Format,
		envPrefix: options.EnvPrefix,
	}
	c.applyDefaults(options.Defaults)
	return c
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: document.FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, dxerror.New("config file path cannot be empty").
			WithCode(dxerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	format := options.Format
	if format == document.FormatAuto {
		format = document.DetectFormat(filePath)
	}
	if format == document.FormatAuto {
		format = document.FormatTOML
	}

	data, err := document.ReadFile(filePath, format)
	if err != nil {
		code := dxerror.CodeConfigError
		if dxerror.HasCode(err, dxerror.CodeNotFound) {
			code = dxerror.CodeNotFound
		}
		return nil, dxerror.Wrap(err, "failed to load config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	c := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}
	c.applyDefaults(options.Defaults)
	return c, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format document.Format) (*Config, error) {
	if format == document.FormatAuto {
		format = document.FormatTOML
	}

	data, err := document.Decode([]byte(content), format)
	if err != nil {
		return nil, dxerror.Wrap(err, "failed to parse config from string").
			WithCode(dxerror.CodeConfigError).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

// applyDefaults augments the data with a private copy of defaults, descending
// into tables present on both sides.
func (c *Config) applyDefaults(defaults *object.Object) {
	if defaults != nil {
		augmentDeep(c.data, deepClone(defaults))
	}
}

func augmentDeep(target, defaults *object.Object) {
	decorator.Decorate(target).Augment(defaults)
	defaults.Range(func(k string, v any) bool {
		nestedDefaults, ok := v.(*object.Object)
		if !ok {
			return true
		}
		if nested, ok := target.Value(k).(*object.Object); ok && nested != nestedDefaults {
			augmentDeep(nested, nestedDefaults)
		}
		return true
	})
}

func deepClone(o *object.Object) *object.Object {
	return decorator.Decorate(o).Map(func(v any, _ string, _ *object.Object) any {
		if nested, ok := v.(*object.Object); ok {
			return deepClone(nested)
		}
		return v
	})
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if object.IsNull(value) {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default.
// Values that do not fit in an int yield the default.
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v)
		}
	case uint64:
		if v <= math.MaxInt {
			return int(v)
		}
	case float64:
		if v >= float64(math.MinInt) && v < -float64(math.MinInt) {
			return int(v)
		}
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// getValue retrieves a value by dot-notation key
func (c *Config) getValue(key string) any {
	current := c.data
	keys := strings.Split(key, ".")
	for i, k := range keys {
		value, ok := current.Lookup(k)
		if !ok {
			return nil
		}
		if i == len(keys)-1 {
			return value
		}
		next, ok := value.(*object.Object)
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// getEnvValue retrieves the environment override for a configuration key
func (c *Config) getEnvValue(key string) string {
	return os.Getenv(c.EnvKey(key))
}

// EnvKey returns the environment variable that overrides key:
// output.format -> DECORX_OUTPUT_FORMAT with prefix DECORX
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key holds a non-null value
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !object.IsNull(c.getValue(key))
}

// Set sets a configuration value (runtime only, not persisted). Missing
// intermediate tables are created. Set reports whether the value was stored:
// a constant on the path is never replaced, and the data stays unchanged.
func (c *Config) Set(key string, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	last := keys[len(keys)-1]

	current := c.data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current.Value(k).(*object.Object)
		if !ok {
			if current.IsLocked(k) {
				return false
			}
			next = object.New()
			decorator.Decorate(current).Add(k, next)
		}
		current = next
	}

	if current.IsLocked(last) {
		return false
	}
	decorator.Decorate(current).Add(last, value)
	return true
}

// Data returns a deep copy of the configuration data
func (c *Config) Data() *object.Object {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepClone(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() document.Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format)}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", c.data.Len()))
	return strings.Join(parts, ", ")
}
