// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for loading, environment overrides, defaults, runtime
//              updates, validation and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Adapted to decorx settings

package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/decorx/foundation/core/decorator"
	"github.com/msto63/decorx/foundation/core/document"
	dxerror "github.com/msto63/decorx/foundation/core/error"
	"github.com/msto63/decorx/foundation/core/object"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		format  document.Format
	}{
		{
			name:    "toml",
			file:    "decorx.toml",
			content: "[output]\nformat = \"yaml\"\nindent = 4\n\n[log]\nlevel = \"debug\"\ncolor = true\n",
			format:  document.FormatTOML,
		},
		{
			name:    "yaml",
			file:    "decorx.yml",
			content: "output:\n  format: yaml\n  indent: 4\nlog:\n  level: debug\n  color: true\n",
			format:  document.FormatYAML,
		},
		{
			name:    "json",
			file:    "decorx.json",
			content: `{"output":{"format":"yaml","indent":4},"log":{"level":"debug","color":true}}`,
			format:  document.FormatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tempDir, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Failed to load config: %v", err)
			}

			if got := cfg.GetString(KeyOutputFormat); got != "yaml" {
				t.Errorf("GetString(%s) = %q, want yaml", KeyOutputFormat, got)
			}
			if got := cfg.GetInt(KeyOutputIndent); got != 4 {
				t.Errorf("GetInt(%s) = %d, want 4", KeyOutputIndent, got)
			}
			if !cfg.GetBool("log.color") {
				t.Error("GetBool(log.color) = false, want true")
			}
			if cfg.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", cfg.Format(), tt.format)
			}
			if !strings.HasSuffix(cfg.FilePath(), tt.file) {
				t.Errorf("FilePath() = %s", cfg.FilePath())
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tempDir := t.TempDir()

	if _, err := Load(""); !dxerror.HasCode(err, dxerror.CodeValidationFailed) {
		t.Errorf("Load(\"\") error = %v, want VALIDATION_FAILED", err)
	}

	if _, err := Load(filepath.Join(tempDir, "missing.toml")); !dxerror.HasCode(err, dxerror.CodeNotFound) {
		t.Errorf("missing file error = %v, want NOT_FOUND", err)
	}

	broken := writeFile(t, tempDir, "broken.toml", "[output\nformat = ")
	if _, err := Load(broken); !dxerror.HasCode(err, dxerror.CodeConfigError) {
		t.Errorf("broken file error = %v, want CONFIG_ERROR", err)
	}
}

func TestMissingValuesAndFallbacks(t *testing.T) {
	cfg, err := LoadFromString("[output]\nformat = \"json\"\n", document.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString("output.missing", "fallback"); got != "fallback" {
		t.Errorf("GetString fallback = %q", got)
	}
	if got := cfg.GetInt("output.format", 7); got != 7 {
		t.Errorf("GetInt on a string = %d, want fallback 7", got)
	}
	if got := cfg.GetBool("output.format.deeper"); got {
		t.Error("GetBool through a scalar should be false")
	}
	if cfg.Has("log.level") {
		t.Error("Has(log.level) = true without defaults")
	}
}

func TestEnvironmentVariables(t *testing.T) {
	cfg, err := LoadWithOptions(
		writeFile(t, t.TempDir(), "decorx.yaml", "output:\n  format: json\n  indent: 2\n"),
		LoadOptions{EnvPrefix: EnvPrefix},
	)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("DECORX_OUTPUT_FORMAT", "toml")
	t.Setenv("DECORX_OUTPUT_INDENT", "8")

	if got := cfg.GetString(KeyOutputFormat); got != "toml" {
		t.Errorf("env override for format = %q, want toml", got)
	}
	if got := cfg.GetInt(KeyOutputIndent); got != 8 {
		t.Errorf("env override for indent = %d, want 8", got)
	}
	if got := cfg.EnvKey("log.level"); got != "DECORX_LOG_LEVEL" {
		t.Errorf("EnvKey() = %s", got)
	}
}

func TestDefaults(t *testing.T) {
	defaults := DefaultValues()
	cfg, err := LoadWithOptions(
		writeFile(t, t.TempDir(), "decorx.yaml", "output:\n  format: yaml\n  indent: null\nextra: 1\n"),
		LoadOptions{Defaults: defaults},
	)
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString(KeyOutputFormat); got != "yaml" {
		t.Errorf("file value should win, got %q", got)
	}
	if got := cfg.GetInt(KeyOutputIndent); got != document.DefaultIndent {
		t.Errorf("null indent should take the default, got %d", got)
	}
	if got := cfg.GetString(KeyLogLevel); got != "warn" {
		t.Errorf("missing table should come from defaults, got %q", got)
	}
	if got := cfg.Data().Keys(); strings.Join(got, ",") != "output,extra,log" {
		t.Errorf("Data().Keys() = %v", got)
	}

	cfg.Set(KeyLogLevel, "debug")
	logDefaults := defaults.Value("log").(*object.Object)
	if logDefaults.Value("level") != "warn" {
		t.Error("Set should not write through to the defaults object")
	}
}

func TestNew(t *testing.T) {
	cfg := New(LoadOptions{Defaults: DefaultValues()})
	if got := cfg.GetString(KeyLogFormat); got != "text" {
		t.Errorf("GetString(%s) = %q, want text", KeyLogFormat, got)
	}
	if !strings.Contains(cfg.String(), "keys: 2") {
		t.Errorf("String() = %s", cfg.String())
	}
}

func TestSet(t *testing.T) {
	cfg := New(LoadOptions{})
	cfg.Set("a.b.c", 1)
	cfg.Set("top", "x")

	if got := cfg.GetInt("a.b.c"); got != 1 {
		t.Errorf("GetInt(a.b.c) = %d, want 1", got)
	}
	if !cfg.Has("top") {
		t.Error("Has(top) = false after Set")
	}

	cfg.Set("top.child", true)
	if !cfg.GetBool("top.child") {
		t.Error("Set should replace a scalar with a table")
	}
}

func TestSetKeepsConstants(t *testing.T) {
	cfg := New(LoadOptions{})
	if _, err := decorator.Decorate(cfg.data).Constant("mode", "strict"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		key  string
	}{
		{"constant as intermediate table", "MODE.child"},
		{"constant as leaf", "MODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cfg.Set(tt.key, "changed") {
				t.Errorf("Set(%s) = true, want false", tt.key)
			}
			if got := cfg.GetString("MODE"); got != "strict" {
				t.Errorf("GetString(MODE) = %q, want strict", got)
			}
			if cfg.Has("MODE.child") {
				t.Error("Has(MODE.child) = true after a rejected Set")
			}
		})
	}

	if !cfg.Set("other.child", 1) {
		t.Error("Set(other.child) = false, want true")
	}
}

func TestGetIntOutOfRange(t *testing.T) {
	cfg := New(LoadOptions{})
	cfg.Set("small", float64(42))
	cfg.Set("huge", 1e300)
	cfg.Set("negative", -1e300)
	cfg.Set("nan", math.NaN())
	cfg.Set("unsigned", uint64(math.MaxUint64))

	tests := []struct {
		key  string
		want int
	}{
		{"small", 42},
		{"huge", 7},
		{"negative", 7},
		{"nan", 7},
		{"unsigned", 7},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := cfg.GetInt(tt.key, 7); got != tt.want {
				t.Errorf("GetInt(%s) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
		problem string
	}{
		{"defaults only", "", true, ""},
		{"bad format value", "output:\n  format: xml\n", false, "output.format"},
		{"wrong kind", "output:\n  indent: two\n", false, "output.indent: want number, got string"},
		{"table replaced by scalar", "log: loud\n", false, "log: want object, got string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWithOptions(
				writeFile(t, t.TempDir(), "decorx.yaml", tt.content),
				LoadOptions{Defaults: DefaultValues()},
			)
			if err != nil {
				t.Fatal(err)
			}

			result := cfg.Validate(nil)
			if result.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (%v)", result.Valid, tt.valid, result.Problems)
			}
			if tt.valid {
				if result.Err() != nil {
					t.Errorf("Err() = %v, want nil", result.Err())
				}
				return
			}
			if !strings.Contains(strings.Join(result.Problems, "\n"), tt.problem) {
				t.Errorf("Problems = %v, want one containing %q", result.Problems, tt.problem)
			}
			if !dxerror.HasCode(result.Err(), dxerror.CodeValidationFailed) {
				t.Errorf("Err() code = %v", dxerror.GetCode(result.Err()))
			}
		})
	}
}

func TestValidatePartialConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
		problem string
	}{
		{"missing log table", "output:\n  format: toml\n  indent: 4\n", true, ""},
		{"empty document", "", true, ""},
		{"missing key in present table", "output:\n  format: yaml\n", false, "output.indent: want number, got undefined"},
		{"present table of wrong kind", "output: yaml\n", false, "output: want object, got string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, document.FormatYAML)
			if err != nil {
				t.Fatal(err)
			}

			result := cfg.Validate(nil)
			if result.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (%v)", result.Valid, tt.valid, result.Problems)
			}
			if !tt.valid && !strings.Contains(strings.Join(result.Problems, "\n"), tt.problem) {
				t.Errorf("Problems = %v, want one containing %q", result.Problems, tt.problem)
			}
		})
	}
}

func TestValidateEnvOverride(t *testing.T) {
	cfg := New(LoadOptions{EnvPrefix: EnvPrefix, Defaults: DefaultValues()})
	t.Setenv("DECORX_LOG_FORMAT", "fancy")

	if cfg.Validate(nil).Valid {
		t.Error("an invalid environment override should fail validation")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	options := DiscoveryOptions{
		Paths:      []string{filepath.Join(dir, "first"), dir},
		Filenames:  []string{"decorx"},
		Extensions: []string{".toml", ".yaml"},
		Defaults:   DefaultValues(),
	}

	t.Run("not found, optional", func(t *testing.T) {
		cfg, err := Discover(options)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.FilePath() != "" || cfg.GetString(KeyOutputFormat) != "json" {
			t.Errorf("expected defaults only, got %s", cfg)
		}
	})

	t.Run("not found, required", func(t *testing.T) {
		required := options
		required.Required = true
		if _, err := Discover(required); !dxerror.HasCode(err, dxerror.CodeNotFound) {
			t.Errorf("error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		path := writeFile(t, dir, "decorx.yaml", "output:\n  format: toml\n")
		cfg, err := Discover(options)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.FilePath() != path {
			t.Errorf("FilePath() = %s, want %s", cfg.FilePath(), path)
		}
		if cfg.GetString(KeyOutputFormat) != "toml" || cfg.GetString(KeyLogLevel) != "warn" {
			t.Errorf("unexpected values in %s", cfg)
		}
	})

	if got := len(ListPossibleConfigFiles(options)); got != 4 {
		t.Errorf("ListPossibleConfigFiles() returned %d paths, want 4", got)
	}
}
