// File: object.go
// Title: Ordered Object
// Description: Object is the mutable, insertion-ordered string-keyed container the
//              decorator operates on. It supports an optional prototype link for
//              inherited keys and locked (constant) keys whose writes and deletes
//              are silently ignored.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package object

import (
	"iter"

	dxerror "github.com/msto63/decorx/foundation/core/error"
	"github.com/msto63/decorx/foundation/utils/mapx"
)

// Equatable is implemented by values that define their own equality against
// arbitrary other values.
type Equatable interface {
	Equals(other any) bool
}

// Object is an insertion-ordered mapping from string keys to values of any kind.
//
// The zero value is an empty object ready for use. An Object is not safe for
// concurrent mutation. Read methods accept a nil receiver and behave like an
// empty object; write methods on a nil receiver are no-ops.
type Object struct {
	keys   []string
	values map[string]any
	locked map[string]struct{}
	proto  *Object
}

// New creates an empty object
func New() *Object {
	return &Object{}
}

// FromMap builds an object from m with keys in sorted order. Nested
// map[string]any values (also inside slices) become *Object.
func FromMap(m map[string]any) *Object {
	o := New()
	for _, k := range mapx.SortedKeys(m) {
		o.Set(k, normalize(m[k]))
	}
	return o
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

func (o *Object) lazyInit() {
	if o.values == nil {
		o.values = make(map[string]any)
	}
}

// Len returns the number of own keys
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the own keys in insertion order
func (o *Object) Keys() []string {
	if o == nil || len(o.keys) == 0 {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Values returns the own values in insertion order
func (o *Object) Values() []any {
	if o == nil {
		return nil
	}
	out := make([]any, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, o.values[k])
	}
	return out
}

// Get returns the own value stored under key
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Value returns the own value under key, or nil
func (o *Object) Value(key string) any {
	v, _ := o.Get(key)
	return v
}

// Has reports whether key is an own key
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Lookup resolves key on the object and then along its prototype chain.
func (o *Object) Lookup(key string) (any, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// In reports whether key is an own or inherited key
func (o *Object) In(key string) bool {
	_, ok := o.Lookup(key)
	return ok
}

// Set stores value under key. New keys are appended to the iteration order,
// existing keys keep their position. Returns false when key is locked.
func (o *Object) Set(key string, value any) bool {
	if o == nil || o.IsLocked(key) {
		return false
	}
	o.lazyInit()
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return true
}

// Define stores value under key and locks it. Returns false when key was
// already locked, in which case nothing changes.
func (o *Object) Define(key string, value any) bool {
	if !o.Set(key, value) {
		return false
	}
	if o.locked == nil {
		o.locked = make(map[string]struct{})
	}
	o.locked[key] = struct{}{}
	return true
}

// IsLocked reports whether key was installed with Define
func (o *Object) IsLocked(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.locked[key]
	return ok
}

// Delete removes an own key. Returns false when key is absent or locked.
func (o *Object) Delete(key string) bool {
	if o == nil || o.IsLocked(key) {
		return false
	}
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Range calls fn for each own entry in insertion order until fn returns false.
// Keys deleted by fn before they are reached are skipped, keys added by fn are
// not visited.
func (o *Object) Range(fn func(key string, value any) bool) {
	if o == nil {
		return
	}
	for _, k := range o.Keys() {
		v, ok := o.values[k]
		if !ok {
			continue
		}
		if !fn(k, v) {
			return
		}
	}
}

// All returns an iterator over the own entries in insertion order
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		o.Range(yield)
	}
}

// RangeAll calls fn for every own and inherited key once, nearest definition
// first, until fn returns false.
func (o *Object) RangeAll(fn func(key string, value any) bool) {
	seen := make(map[string]struct{})
	for cur := o; cur != nil; cur = cur.proto {
		for _, k := range cur.keys {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !fn(k, cur.values[k]) {
				return
			}
		}
	}
}

// Proto returns the prototype link, or nil
func (o *Object) Proto() *Object {
	if o == nil {
		return nil
	}
	return o.proto
}

// SetProto links o to proto for inherited lookups. Links that would create a
// cycle are rejected.
func (o *Object) SetProto(proto *Object) error {
	if o == nil {
		return dxerror.New("cannot set prototype of a nil object").
			WithCode(dxerror.CodeInvalidInput).
			WithOperation("object.SetProto")
	}
	for cur := proto; cur != nil; cur = cur.proto {
		if cur == o {
			return dxerror.New("cyclic prototype link").
				WithCode(dxerror.CodeInvalidInput).
				WithOperation("object.SetProto")
		}
	}
	o.proto = proto
	return nil
}

// Clone returns a shallow copy of the own entries. Locks and the prototype
// link are not copied.
func (o *Object) Clone() *Object {
	c := New()
	o.Range(func(k string, v any) bool {
		c.Set(k, v)
		return true
	})
	return c
}

// ToMap converts the object into plain maps, recursing into nested objects
// and slices.
func (o *Object) ToMap() map[string]any {
	if o == nil {
		return nil
	}
	out := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		out[k] = plain(o.values[k])
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil
		}
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}

// String renders the object as compact JSON
func (o *Object) String() string {
	data, err := o.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}
