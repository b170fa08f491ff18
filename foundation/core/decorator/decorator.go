// File: decorator.go
// Title: Object Decorator
// Description: Decorator wraps one object and provides chainable mixin operations
//              (extend, augment, override), enumeration helpers, set-like
//              operations and constants. Mutating operations change the wrapped
//              object in place and return the decorator; deriving operations
//              return new values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package decorator

import (
	"fmt"
	"strings"

	dxerror "github.com/msto63/decorx/foundation/core/error"
	"github.com/msto63/decorx/foundation/core/object"
)

// Visitor receives each entry during ForEach.
type Visitor func(value any, key string, component *object.Object)

// Iteratee computes a result for each entry during Map and Filter. Filter keeps
// an entry only when the result is exactly the boolean true.
type Iteratee func(value any, key string, component *object.Object) any

// Decorator operates on a single component. It holds a reference to the
// component, never a copy, so callers observe every mutation.
type Decorator struct {
	component *object.Object
}

// Decorate wraps component. A nil component behaves as an empty object for
// reads; writes to it are ignored.
func Decorate(component *object.Object) *Decorator {
	return &Decorator{component: component}
}

// Component returns the wrapped object
func (d *Decorator) Component() *object.Object {
	return d.component
}

// Extend copies every own entry of each source into the component, in
// argument order, overwriting existing values.
func (d *Decorator) Extend(sources ...*object.Object) *Decorator {
	for _, src := range sources {
		src.Range(func(k string, v any) bool {
			d.component.Set(k, v)
			return true
		})
	}
	return d
}

// Augment copies the own entries of source whose key is null or missing in the
// component. Existing false and zero values are kept.
func (d *Decorator) Augment(source *object.Object) *Decorator {
	source.Range(func(k string, v any) bool {
		if current, _ := d.component.Lookup(k); object.IsNull(current) {
			d.component.Set(k, v)
		}
		return true
	})
	return d
}

// Override copies the own entries of source whose key the component already
// has (own or inherited). It never introduces new keys.
func (d *Decorator) Override(source *object.Object) *Decorator {
	source.Range(func(k string, v any) bool {
		if d.component.In(k) {
			d.component.Set(k, v)
		}
		return true
	})
	return d
}

// Has reports whether every key maps to a truthy value. Falsy values such as
// 0, "" and false count as missing. Has with no keys is true.
func (d *Decorator) Has(keys ...string) bool {
	for _, k := range keys {
		v, _ := d.component.Lookup(k)
		if !object.Truthy(v) {
			return false
		}
	}
	return true
}

// ForEach calls fn for each own entry in insertion order
func (d *Decorator) ForEach(fn Visitor) *Decorator {
	d.component.Range(func(k string, v any) bool {
		fn(v, k, d.component)
		return true
	})
	return d
}

// Map returns a new object holding fn's result for every own entry
func (d *Decorator) Map(fn Iteratee) *object.Object {
	result := object.New()
	d.ForEach(func(v any, k string, c *object.Object) {
		result.Set(k, fn(v, k, c))
	})
	return result
}

// Filter returns a new object with the entries for which fn returns true.
// Results that are truthy but not the boolean true exclude the entry.
func (d *Decorator) Filter(fn Iteratee) *object.Object {
	result := object.New()
	d.ForEach(func(v any, k string, c *object.Object) {
		if keep, ok := fn(v, k, c).(bool); ok && keep {
			result.Set(k, v)
		}
	})
	return result
}

// Size returns the number of own keys
func (d *Decorator) Size() int {
	return d.component.Len()
}

// Difference starts from a shallow copy of the component and, for every own
// key of other, drops the key when both sides hold strictly equal values and
// takes other's value otherwise.
func (d *Decorator) Difference(other *object.Object) *object.Object {
	result := d.component.Clone()
	other.Range(func(k string, v any) bool {
		if current, ok := result.Get(k); ok && object.StrictEqual(current, v) {
			result.Delete(k)
		} else {
			result.Set(k, v)
		}
		return true
	})
	return result
}

// Intersection returns the entries of the component whose value is strictly
// equal to other's value under the same key.
func (d *Decorator) Intersection(other *object.Object) *object.Object {
	return d.Filter(func(v any, k string, _ *object.Object) any {
		theirs, ok := other.Lookup(k)
		return ok && object.StrictEqual(v, theirs)
	})
}

// Values returns the own values in insertion order. A nil component yields nil.
func (d *Decorator) Values() []any {
	return d.component.Values()
}

// GetSpec returns a Specification over the component. The component is not
// copied: later mutations affect later comparisons.
func (d *Decorator) GetSpec() *Specification {
	return NewSpecification(d.component)
}

// Contains reports whether some own or inherited property value is strictly
// equal to value, or implements object.Equatable and reports equality.
func (d *Decorator) Contains(value any) bool {
	found := false
	d.component.RangeAll(func(_ string, v any) bool {
		if object.StrictEqual(v, value) {
			found = true
		} else if eq, ok := v.(object.Equatable); ok && !object.IsNull(v) && eq.Equals(value) {
			found = true
		}
		return !found
	})
	return found
}

// Add sets key to value. Writes to constants are ignored.
func (d *Decorator) Add(key string, value any) *Decorator {
	d.component.Set(key, value)
	return d
}

// Remove deletes key and returns the value it held (nil when absent).
// Constants are not removed.
func (d *Decorator) Remove(key string) any {
	v, _ := d.component.Lookup(key)
	d.component.Delete(key)
	return v
}

// Copy returns a decorator over a new object holding the component's own
// entries. Nested values are shared.
func (d *Decorator) Copy() *Decorator {
	return Decorate(object.New()).Extend(d.component)
}

// Constant installs value under the upper-cased key as a constant: it stays
// enumerable, later writes and deletes are silently ignored. value must be a
// string, number, boolean or null. Re-declaring an existing constant changes
// nothing.
func (d *Decorator) Constant(key string, value any) (*Decorator, error) {
	if kind := object.KindOf(value); !kind.IsPrimitive() {
		return d, dxerror.New(fmt.Sprintf("a constant must be a string or a primitive: %s:%v", key, value)).
			WithCode(dxerror.CodeInvalidConstant).
			WithOperation("decorator.Constant").
			WithDetail("key", key).
			WithDetail("kind", kind.String())
	}

	d.component.Define(strings.ToUpper(key), value)
	return d, nil
}

// GetPrototype returns the object the component inherits from, or nil.
func (d *Decorator) GetPrototype() *object.Object {
	return d.component.Proto()
}

// IsInvalidConstant reports whether err was returned by Constant for a
// non-primitive value.
func IsInvalidConstant(err error) bool {
	return dxerror.HasCode(err, dxerror.CodeInvalidConstant)
}
