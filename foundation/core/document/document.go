// File: document.go
// Title: Document Codec
// Description: Decodes JSON, YAML and TOML documents into ordered objects and
//              encodes objects back. JSON and YAML keep the document's key order
//              through the object marshalers; TOML order is recovered from the
//              decoder's key metadata.
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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	dxerror "github.com/msto63/decorx/foundation/core/error"
	"github.com/msto63/decorx/foundation/core/object"
)

// DefaultIndent is the indentation width used when none is configured
const DefaultIndent = 2

// Decode parses content in the given format. FormatAuto sniffs the content.
// Blank content decodes to an empty object.
func Decode(content []byte, format Format) (*object.Object, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return object.New(), nil
	}
	if format == FormatAuto {
		format = Sniff(content)
	}

	o := object.New()
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(content, o)
	case FormatYAML:
		err = yaml.Unmarshal(content, o)
	case FormatTOML:
		o, err = decodeTOML(content)
	default:
		return nil, unsupported(format, "document.Decode")
	}

	if err != nil {
		return nil, dxerror.Wrap(err, fmt.Sprintf("%s parse error", strings.ToUpper(format.String()))).
			WithCode(dxerror.CodeInvalidFormat).
			WithOperation("document.Decode").
			WithDetail("format", format.String())
	}
	return o, nil
}

// Encode serializes o in the given format. indent is the number of spaces
// per nesting level; 0 produces compact JSON and the library default for
// YAML and TOML. The output always ends with a newline.
func Encode(o *object.Object, format Format, indent int) ([]byte, error) {
	if o == nil {
		o = object.New()
	}
	if indent < 0 {
		indent = 0
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatJSON:
		var data []byte
		if indent > 0 {
			data, err = json.MarshalIndent(o, "", strings.Repeat(" ", indent))
		} else {
			data, err = json.Marshal(o)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err = enc.Encode(o); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		if indent > 0 {
			enc.Indent = strings.Repeat(" ", indent)
		}
		err = enc.Encode(tomlValue(o))
	default:
		return nil, unsupported(format, "document.Encode")
	}

	if err != nil {
		return nil, dxerror.Wrap(err, fmt.Sprintf("cannot encode %s document", format)).
			WithCode(dxerror.CodeInvalidFormat).
			WithOperation("document.Encode").
			WithDetail("format", format.String())
	}
	return buf.Bytes(), nil
}

// Read decodes everything readable from r
func Read(r io.Reader, format Format) (*object.Object, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, dxerror.Wrap(err, "failed to read document").
			WithCode(dxerror.CodeInternal).
			WithOperation("document.Read")
	}
	return Decode(content, format)
}

// ReadFile decodes the file at path. With FormatAuto the format is taken
// from the extension and, failing that, sniffed from the content.
func ReadFile(path string, format Format) (*object.Object, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		code := dxerror.CodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = dxerror.CodeNotFound
		}
		return nil, dxerror.Wrap(err, fmt.Sprintf("cannot read document: %s", path)).
			WithCode(code).
			WithOperation("document.ReadFile").
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = DetectFormat(path)
	}

	o, err := Decode(content, format)
	if err != nil {
		return nil, dxerror.Wrap(err, fmt.Sprintf("cannot decode document: %s", path)).
			WithDetail("path", path)
	}
	return o, nil
}

func unsupported(format Format, operation string) error {
	return dxerror.New(fmt.Sprintf("unsupported document format: %s", format)).
		WithCode(dxerror.CodeUnsupportedFormat).
		WithOperation(operation).
		WithDetail("format", format.String())
}
