// Package document reads and writes objects as JSON, YAML or TOML.
//
// Package: document
// Title: Order-Preserving Document Codec
// Description: Decode and Encode convert between serialized documents and
//              *object.Object while keeping key order, so that decorator
//              operations like Values and ForEach follow the document.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	o, err := document.ReadFile("user.yaml", document.FormatAuto)
//	if err != nil {
//		return err
//	}
//	out, err := document.Encode(o, document.FormatJSON, 2)
package document
