// Package mapx provides generic helpers for plain Go maps.
//
// Package: mapx
// Title: Extended Map Utilities for Go
// Description: Helpers shared by the object model, the logger and the document
//              codec: deterministic key order (SortedKeys), shallow copies (Clone)
//              and last-wins merging (Merge). Nil maps are treated as empty.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core map utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers used by decorx
//
// Usage:
//
//	keys := mapx.SortedKeys(map[string]int{"b": 2, "a": 1}) // [a b]
//	merged := mapx.Merge(defaults, overrides)
package mapx
