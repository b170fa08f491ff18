// File: kind.go
// Title: Value Kinds
// Description: Tagged value-kind enumeration used for structural comparison of
//              objects, plus the truthiness and strict equality rules shared by
//              the decorator operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package object

import (
	"encoding/json"
	"math"
	"reflect"
)

// Kind is the dynamic type tag of a value.
type Kind int

const (
	// KindUndefined marks an absent value (missing key).
	KindUndefined Kind = iota
	KindNull
	KindString
	KindNumber
	KindBoolean
	KindObject
	KindFunction

	// KindTotal is the number of kinds defined
	KindTotal = int(iota)
)

// String returns the lower-case kind name
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// IsPrimitive reports whether values of this kind may be stored as constants.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindNull, KindString, KindNumber, KindBoolean:
		return true
	default:
		return false
	}
}

var jsonNumberType = reflect.TypeOf(json.Number(""))

// KindOf classifies v. Nil interfaces and nil pointers, maps, slices, funcs,
// channels and interfaces are KindNull.
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}

	rv := reflect.ValueOf(v)
	if rv.Type() == jsonNumberType {
		return KindNumber
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return KindNull
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Func:
		return KindFunction
	default:
		return KindObject
	}
}

// IsNull reports whether v is null (nil or a nil reference).
func IsNull(v any) bool {
	return KindOf(v) == KindNull
}

// Truthy reports whether v counts as a present value: null, false, numeric
// zero, NaN and the empty string are falsy, everything else is truthy.
func Truthy(v any) bool {
	switch KindOf(v) {
	case KindNull:
		return false
	case KindBoolean:
		return reflect.ValueOf(v).Bool()
	case KindString:
		return reflect.ValueOf(v).String() != ""
	case KindNumber:
		f, ok := toFloat(v)
		return ok && f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}

// StrictEqual compares without conversion between kinds. Numbers compare by
// numeric value across Go numeric types (NaN never equals itself), maps,
// slices, pointers and funcs compare by identity, comparable structs by ==.
func StrictEqual(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}

	switch ka {
	case KindNull:
		return true
	case KindString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	case KindBoolean:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case KindNumber:
		return numberEqual(a, b)
	default:
		return sameReference(a, b)
	}
}

func numberEqual(a, b any) bool {
	if an, ok := a.(json.Number); ok {
		a = parseJSONNumber(an)
	}
	if bn, ok := b.(json.Number); ok {
		b = parseJSONNumber(bn)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isInt(va) && isInt(vb):
		return va.Int() == vb.Int()
	case isUint(va) && isUint(vb):
		return va.Uint() == vb.Uint()
	case isInt(va) && isUint(vb):
		return va.Int() >= 0 && uint64(va.Int()) == vb.Uint()
	case isUint(va) && isInt(vb):
		return vb.Int() >= 0 && uint64(vb.Int()) == va.Uint()
	}

	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	return okA && okB && fa == fb
}

func sameReference(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return false
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func toFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch {
	case isInt(rv):
		return float64(rv.Int()), true
	case isUint(rv):
		return float64(rv.Uint()), true
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// parseJSONNumber turns n into int64 when it is integral, float64 otherwise.
func parseJSONNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
