// Package decorator provides chainable operations over a single object.
//
// Package: decorator
// Title: Object Decorator and Specification
// Description: Decorator wraps a component object and offers mixins (Extend,
//              Augment, Override), enumeration (ForEach, Map, Filter, Values,
//              Size), set-like derivations (Difference, Intersection) and
//              accessors (Has, Add, Remove, Contains, Constant, Copy,
//              GetPrototype). Specification compares object shapes by the kind
//              of each key's value.
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
//	user := object.New()
//	user.Set("id", "jsmith")
//
//	d := decorator.Decorate(user).
//		Augment(defaults).
//		Add("active", true)
//	if _, err := d.Constant("role", "admin"); err != nil {
//		return err
//	}
//
//	if d.GetSpec().Like(candidate) {
//		// candidate carries every typed key of user
//	}
package decorator
