// File: module_integration_test.go
// Title: decorx Foundation Module Integration Tests
// Description: Tests for data flowing between object, decorator, document and
//              config.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration tests
// - 2026-10-19 v0.2.0: Rewritten for the decorator packages

package integration

import (
	"strings"
	"testing"

	"github.com/msto63/decorx/foundation/core/config"
	"github.com/msto63/decorx/foundation/core/decorator"
	"github.com/msto63/decorx/foundation/core/document"
	"github.com/msto63/decorx/foundation/core/object"
)

// TestDecoratorOverDecodedDocuments mixes documents of all three formats
func TestDecoratorOverDecodedDocuments(t *testing.T) {
	base, err := document.Decode([]byte(`{"name":"svc","port":8080,"debug":false}`), document.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	overlay, err := document.Decode([]byte("port: 9090\nregion: eu\n"), document.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	defaults, err := document.Decode([]byte("debug = true\ntimeout = 30\n"), document.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	result := decorator.Decorate(base).
		Extend(overlay).
		Augment(defaults).
		Component()

	want := []string{"name", "port", "debug", "region", "timeout"}
	if got := result.Keys(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if result.Value("debug") != false {
		t.Error("augment must keep an existing false")
	}
	if result.Value("port") != 9090 {
		t.Errorf("port = %v, want 9090", result.Value("port"))
	}

	out, err := document.Encode(result, document.FormatYAML, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "name: svc\nport: 9090\n") {
		t.Errorf("unexpected YAML:\n%s", out)
	}
}

// TestConfigDrivesDocumentOutput encodes in the format named by the config
func TestConfigDrivesDocumentOutput(t *testing.T) {
	cfg, err := config.LoadFromString("output:\n  format: toml\n  indent: 4\n", document.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(nil).Err(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	format, err := document.ParseFormat(cfg.GetString(config.KeyOutputFormat))
	if err != nil {
		t.Fatal(err)
	}

	source, _ := document.Decode([]byte(`{"title":"Dev","age":32}`), document.FormatJSON)
	out, err := document.Encode(source, format, cfg.GetInt(config.KeyOutputIndent))
	if err != nil {
		t.Fatal(err)
	}

	back, err := document.Decode(out, document.FormatAuto)
	if err != nil {
		t.Fatalf("Decode(%q) = %v", out, err)
	}
	if !decorator.NewSpecification(source).Equals(back) {
		t.Errorf("round trip through %s changed the structure: %s", format, back)
	}
}

// TestStructuralComparisonAcrossFormats compares a JSON shape against YAML data
func TestStructuralComparisonAcrossFormats(t *testing.T) {
	shape, _ := document.Decode([]byte(`{"id":"x","age":30,"tags":[]}`), document.FormatJSON)
	person, _ := document.Decode([]byte("id: jsmith\nage: 32\ntags: [a, b]\ntitle: Dev\n"), document.FormatYAML)

	spec := decorator.NewSpecification(shape)
	if !spec.Like(person) {
		t.Errorf("Like() = false, mismatches %v", spec.Mismatches(person))
	}
	if spec.Equals(person) {
		t.Error("Equals() must fail on the extra title key")
	}

	diff := decorator.Decorate(person).Difference(shape)
	if diff.Value("id") != "x" || diff.Value("title") != "Dev" {
		t.Errorf("Difference() = %s", diff)
	}
}

// TestConfigSetThroughDecorator checks that Set leaves the defaults untouched
func TestConfigSetThroughDecorator(t *testing.T) {
	defaults := config.DefaultValues()
	cfg := config.New(config.LoadOptions{Defaults: defaults})

	cfg.Set(config.KeyOutputFormat, "yaml")
	if got := cfg.GetString(config.KeyOutputFormat); got != "yaml" {
		t.Errorf("GetString() = %s, want yaml", got)
	}

	output := defaults.Value("output").(*object.Object)
	if got := output.Value("format"); got != "json" {
		t.Errorf("defaults changed: output.format = %v", got)
	}
}
