// File: validation.go
// Title: Configuration Validation
// Description: Validates the shape of configuration data against a template
//              object: every non-null template key must be present with a value
//              of the same kind. A table missing entirely is accepted, since
//              defaults fill it in at load time. Nested tables are checked
//              recursively, and enumerated string settings are checked against
//              their allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of rule-based validation
// - 2026-10-19 v0.2.0: Shape validation through decorator specifications

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/msto63/decorx/foundation/core/decorator"
	dxerror "github.com/msto63/decorx/foundation/core/error"
	"github.com/msto63/decorx/foundation/core/object"
)

// allowedValues lists the accepted values of enumerated settings
var allowedValues = map[string][]string{
	KeyOutputFormat: {"json", "yaml", "toml"},
	KeyLogLevel:     {"trace", "debug", "info", "warn", "error", "off"},
	KeyLogFormat:    {"json", "text", "console"},
}

// ValidationResult holds the problems found by Validate
type ValidationResult struct {
	Valid    bool
	Problems []string
}

// Validate checks the configuration against shape, defaulting to the
// built-in settings when shape is nil.
func (c *Config) Validate(shape *object.Object) *ValidationResult {
	if shape == nil {
		shape = DefaultValues()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var problems []string
	validateShape(c.data, shape, "", &problems)

	for _, key := range []string{KeyOutputFormat, KeyLogLevel, KeyLogFormat} {
		value, ok := c.getValue(key).(string)
		if env := c.getEnvValue(key); env != "" {
			value, ok = env, true
		}
		if ok && !slices.Contains(allowedValues[key], strings.ToLower(value)) {
			problems = append(problems, fmt.Sprintf("%s: %q is not one of %s",
				key, value, strings.Join(allowedValues[key], ", ")))
		}
	}

	return &ValidationResult{Valid: len(problems) == 0, Problems: problems}
}

// Err returns nil for a valid result and a validation error otherwise
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return dxerror.New(fmt.Sprintf("invalid configuration: %s", strings.Join(r.Problems, "; "))).
		WithCode(dxerror.CodeValidationFailed).
		WithOperation("config.Validate").
		WithDetail("problems", r.Problems)
}

func validateShape(data, shape *object.Object, prefix string, problems *[]string) {
	for _, m := range decorator.NewSpecification(shape).Mismatches(data) {
		if m.Reverse {
			continue
		}
		if _, table := shape.Value(m.Key).(*object.Object); table && m.Got == object.KindUndefined {
			continue
		}
		*problems = append(*problems, fmt.Sprintf("%s%s: want %s, got %s", prefix, m.Key, m.Want, m.Got))
	}

	shape.Range(func(k string, v any) bool {
		nestedShape, ok := v.(*object.Object)
		if !ok {
			return true
		}
		if nested, ok := data.Value(k).(*object.Object); ok {
			validateShape(nested, nestedShape, prefix+k+".", problems)
		}
		return true
	})
}
