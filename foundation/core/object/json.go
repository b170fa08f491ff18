// File: json.go
// Title: JSON Encoding for Objects
// Description: Order-preserving JSON marshalling and unmarshalling of Object.
//              Function values are omitted on output, integral numbers decode to
//              int64 and all other numbers to float64.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package object

import (
	"bytes"
	"encoding/json"
	"fmt"

	dxerror "github.com/msto63/decorx/foundation/core/error"
)

// MarshalJSON writes the own entries in insertion order
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, k := range o.keys {
		v := o.values[k]
		if KindOf(v) == KindFunction {
			continue
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, dxerror.Wrap(err, fmt.Sprintf("cannot encode value of key %q", k)).
				WithCode(dxerror.CodeInvalidFormat).
				WithOperation("object.MarshalJSON")
		}

		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the contents of o with the decoded JSON object,
// keeping the document's key order. Nested objects become *Object.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return invalidJSON(err)
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return dxerror.New(fmt.Sprintf("expected a JSON object, got %v", tok)).
			WithCode(dxerror.CodeInvalidFormat).
			WithOperation("object.UnmarshalJSON")
	}

	*o = Object{}
	return o.decodeJSONMembers(dec)
}

// decodeJSONMembers reads members up to and including the closing brace.
func (o *Object) decodeJSONMembers(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return invalidJSON(err)
		}
		key, ok := tok.(string)
		if !ok {
			return dxerror.New(fmt.Sprintf("expected an object key, got %v", tok)).
				WithCode(dxerror.CodeInvalidFormat).
				WithOperation("object.UnmarshalJSON")
		}

		value, err := decodeJSONValue(dec)
		if err != nil {
			return err
		}
		o.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return invalidJSON(err)
	}
	return nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, invalidJSON(err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			child := New()
			if err := child.decodeJSONMembers(dec); err != nil {
				return nil, err
			}
			return child, nil
		case '[':
			items := []any{}
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, invalidJSON(err)
			}
			return items, nil
		default:
			return nil, dxerror.New(fmt.Sprintf("unexpected delimiter %v", t)).
				WithCode(dxerror.CodeInvalidFormat).
				WithOperation("object.UnmarshalJSON")
		}
	case json.Number:
		return parseJSONNumber(t), nil
	default:
		return t, nil
	}
}

func invalidJSON(err error) error {
	return dxerror.Wrap(err, "invalid JSON document").
		WithCode(dxerror.CodeInvalidFormat).
		WithOperation("object.UnmarshalJSON")
}
