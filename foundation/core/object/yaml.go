// File: yaml.go
// Title: YAML Encoding for Objects
// Description: Order-preserving YAML marshalling and unmarshalling of Object on top
//              of yaml.v3 nodes. Aliases are resolved and merge keys (<<) are
//              applied without overriding explicit keys.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package object

import (
	"fmt"

	"gopkg.in/yaml.v3"

	dxerror "github.com/msto63/decorx/foundation/core/error"
)

const yamlMergeTag = "!!merge"

// MarshalYAML returns a mapping node with the own entries in insertion order.
// Function values are omitted.
func (o *Object) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range o.Keys() {
		v := o.values[k]
		if KindOf(v) == KindFunction {
			continue
		}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(v); err != nil {
			return nil, dxerror.Wrap(err, fmt.Sprintf("cannot encode value of key %q", k)).
				WithCode(dxerror.CodeInvalidFormat).
				WithOperation("object.MarshalYAML")
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			valueNode,
		)
	}
	return node, nil
}

// UnmarshalYAML replaces the contents of o with the decoded mapping
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	*o = Object{}
	return o.fromYAMLNode(node)
}

func (o *Object) fromYAMLNode(node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return o.fromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return o.fromYAMLNode(node.Alias)
	case yaml.MappingNode:
	default:
		return dxerror.New(fmt.Sprintf("expected a YAML mapping at line %d", node.Line)).
			WithCode(dxerror.CodeInvalidFormat).
			WithOperation("object.UnmarshalYAML")
	}

	explicit := make(map[string]struct{})
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.ShortTag() == yamlMergeTag {
			if err := o.mergeYAML(valueNode, explicit); err != nil {
				return err
			}
			continue
		}

		value, err := yamlValue(valueNode)
		if err != nil {
			return err
		}
		o.Set(keyNode.Value, value)
		explicit[keyNode.Value] = struct{}{}
	}
	return nil
}

// mergeYAML applies a merge key value (a mapping or a sequence of mappings).
func (o *Object) mergeYAML(node *yaml.Node, explicit map[string]struct{}) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	sources := []*yaml.Node{node}
	if node.Kind == yaml.SequenceNode {
		sources = node.Content
	}

	for _, src := range sources {
		merged := New()
		if err := merged.fromYAMLNode(src); err != nil {
			return err
		}
		merged.Range(func(k string, v any) bool {
			if _, ok := explicit[k]; !ok && !o.Has(k) {
				o.Set(k, v)
			}
			return true
		})
	}
	return nil
}

func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlValue(node.Content[0])
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.MappingNode:
		child := New()
		if err := child.fromYAMLNode(node); err != nil {
			return nil, err
		}
		return child, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, c := range node.Content {
			item, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, dxerror.Wrap(err, fmt.Sprintf("invalid YAML scalar at line %d", node.Line)).
				WithCode(dxerror.CodeInvalidFormat).
				WithOperation("object.UnmarshalYAML")
		}
		return v, nil
	}
}
