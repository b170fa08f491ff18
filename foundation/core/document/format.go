// File: format.go
// Title: Document Formats
// Description: Format identifies the serialization of an object document and is
//              detected from file extensions or, for unnamed input, from the
//              first significant byte of the content.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package document

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	dxerror "github.com/msto63/decorx/foundation/core/error"
)

// Format represents a document serialization
type Format int

const (
	// FormatAuto detects the format from the file name or the content
	FormatAuto Format = iota

	// FormatJSON represents JSON documents
	FormatJSON

	// FormatYAML represents YAML documents
	FormatYAML

	// FormatTOML represents TOML documents
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Extension returns the canonical file extension including the dot
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	case FormatTOML:
		return ".toml"
	default:
		return ""
	}
}

// ParseFormat parses a format name (case-insensitive). "yml" is accepted as
// an alias for yaml, the empty string as auto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatAuto, dxerror.New(fmt.Sprintf("unsupported document format: %s", name)).
			WithCode(dxerror.CodeUnsupportedFormat).
			WithOperation("document.ParseFormat").
			WithDetail("format", name)
	}
}

// DetectFormat determines the format from the file extension. Unknown
// extensions yield FormatAuto.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatAuto
	}
}

// Sniff guesses the format of content. A leading '{' means JSON, a leading
// table header or a first line of the form key = value means TOML. Anything
// else is read as YAML.
func Sniff(content []byte) Format {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return FormatYAML
	}

	switch trimmed[0] {
	case '{':
		return FormatJSON
	case '[':
		return FormatTOML
	}

	firstLine, _, _ := bytes.Cut(trimmed, []byte("\n"))
	if bytes.Contains(firstLine, []byte(" = ")) && !bytes.Contains(firstLine, []byte(": ")) {
		return FormatTOML
	}
	return FormatYAML
}
