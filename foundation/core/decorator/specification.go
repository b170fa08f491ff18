// File: specification.go
// Title: Structural Specification
// Description: Specification answers shallow duck-typing questions about objects:
//              Like checks that another object satisfies every non-null key of
//              the shape with a value of the same kind, Equals additionally
//              requires the reverse direction to hold.
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

	"github.com/msto63/decorx/foundation/core/object"
)

// Specification wraps a shape object. The shape is referenced, not copied.
type Specification struct {
	shape *object.Object
}

// Mismatch describes one key that breaks structural compatibility.
type Mismatch struct {
	Key  string
	Want object.Kind
	Got  object.Kind
	// Reverse is set when the key comes from the other object and is not
	// matched by the shape (only reported by Equals checks).
	Reverse bool
}

// String renders the mismatch for diagnostics
func (m Mismatch) String() string {
	if m.Reverse {
		return fmt.Sprintf("%s: unexpected %s (shape has %s)", m.Key, m.Got, m.Want)
	}
	return fmt.Sprintf("%s: want %s, got %s", m.Key, m.Want, m.Got)
}

// NewSpecification creates a specification over shape
func NewSpecification(shape *object.Object) *Specification {
	return &Specification{shape: shape}
}

// Shape returns the wrapped shape object
func (s *Specification) Shape() *object.Object {
	return s.shape
}

// Like reports whether other satisfies the shape: every own key of the shape
// with a non-null value must be present in other with a value of the same
// kind or with null. Extra keys in other are ignored.
func (s *Specification) Like(other *object.Object) bool {
	return len(covers(s.shape, other, false, true)) == 0
}

// Equals reports whether Like holds and, in the other direction, every own
// non-null key of other is matched by the shape.
func (s *Specification) Equals(other *object.Object) bool {
	return s.Like(other) && len(covers(other, s.shape, true, true)) == 0
}

// Mismatches lists every key that breaks Equals, each key once. Entries with
// Reverse unset are the ones that break Like.
func (s *Specification) Mismatches(other *object.Object) []Mismatch {
	mismatches := covers(s.shape, other, false, false)
	reported := make(map[string]struct{}, len(mismatches))
	for _, m := range mismatches {
		reported[m.Key] = struct{}{}
	}

	for _, m := range covers(other, s.shape, true, false) {
		if _, dup := reported[m.Key]; !dup {
			mismatches = append(mismatches, m)
		}
	}
	return mismatches
}

// covers checks that every own non-null key of shape is matched in target.
// With firstOnly set it stops at the first mismatch.
func covers(shape, target *object.Object, reverse, firstOnly bool) []Mismatch {
	var mismatches []Mismatch
	shape.Range(func(k string, v any) bool {
		want := object.KindOf(v)
		if want == object.KindNull {
			return true
		}

		got := object.KindUndefined
		if tv, ok := target.Lookup(k); ok {
			got = object.KindOf(tv)
		}
		if got == want || got == object.KindNull {
			return true
		}

		m := Mismatch{Key: k, Want: want, Got: got, Reverse: reverse}
		if reverse {
			m.Want, m.Got = got, want
		}
		mismatches = append(mismatches, m)
		return !firstOnly
	})
	return mismatches
}
