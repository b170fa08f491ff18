// File: toml.go
// Title: TOML Ordering
// Description: TOML decoding into ordered objects. The decoder yields plain
//              maps, so each object's keys are ranked by their first appearance
//              in the metadata key list. Encoding drops null and function values
//              which TOML cannot represent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package document

import (
	"cmp"
	"math"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/msto63/decorx/foundation/core/object"
	"github.com/msto63/decorx/foundation/utils/mapx"
)

func decodeTOML(content []byte) (*object.Object, error) {
	var data map[string]any
	md, err := toml.Decode(string(content), &data)
	if err != nil {
		return nil, err
	}

	rank := make(map[string]int)
	for i, key := range md.Keys() {
		if _, seen := rank[key.String()]; !seen {
			rank[key.String()] = i
		}
	}
	return tomlObject(data, nil, rank), nil
}

// tomlObject converts m, whose keys live under prefix, into an object with
// the keys in document order.
func tomlObject(m map[string]any, prefix toml.Key, rank map[string]int) *object.Object {
	position := func(k string) int {
		if r, ok := rank[childKey(prefix, k).String()]; ok {
			return r
		}
		return math.MaxInt
	}

	keys := mapx.SortedKeys(m)
	slices.SortStableFunc(keys, func(a, b string) int {
		return cmp.Compare(position(a), position(b))
	})

	o := object.New()
	for _, k := range keys {
		o.Set(k, tomlOrdered(m[k], childKey(prefix, k), rank))
	}
	return o
}

func tomlOrdered(v any, key toml.Key, rank map[string]int) any {
	switch t := v.(type) {
	case map[string]any:
		return tomlObject(t, key, rank)
	case []map[string]any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = tomlObject(item, key, rank)
		}
		return items
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = tomlOrdered(item, key, rank)
		}
		return items
	default:
		return v
	}
}

func childKey(prefix toml.Key, k string) toml.Key {
	key := make(toml.Key, 0, len(prefix)+1)
	key = append(key, prefix...)
	return append(key, k)
}

// tomlValue converts objects into plain maps for the encoder, dropping null
// and function values.
func tomlValue(v any) any {
	switch t := v.(type) {
	case *object.Object:
		m := make(map[string]any, t.Len())
		t.Range(func(k string, item any) bool {
			if keep(item) {
				m[k] = tomlValue(item)
			}
			return true
		})
		return m
	case []any:
		items := make([]any, 0, len(t))
		for _, item := range t {
			if keep(item) {
				items = append(items, tomlValue(item))
			}
		}
		return items
	default:
		return v
	}
}

func keep(v any) bool {
	kind := object.KindOf(v)
	return kind != object.KindNull && kind != object.KindFunction
}
