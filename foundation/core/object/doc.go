// Package object provides the ordered, string-keyed container decorx operates on.
//
// Package: object
// Title: Ordered Objects and Value Kinds
// Description: Object keeps insertion order, supports a prototype link for
//              inherited keys and locked keys for constants. The package also
//              defines the value-kind tags (KindOf), truthiness (Truthy) and the
//              strict equality (StrictEqual) used by the decorator.
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
//	o := object.New()
//	o.Set("id", "jsmith")
//	o.Define("MAX", 10)   // locked
//	o.Set("MAX", 11)      // ignored, returns false
//
//	object.KindOf(o.Value("id")) // object.KindString
package object
