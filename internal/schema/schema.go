// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

// Package schema models the on-chain type tree returned by the sozo
// toolchain for a contract model.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownSchemaKind indicates a node whose type tag is not part of
	// the schema grammar.
	ErrUnknownSchemaKind = errors.New("unknown schema kind")

	// ErrUnsupportedRootSchema indicates a model whose schema root is not a
	// struct. Every model root must be a struct.
	ErrUnsupportedRootSchema = errors.New("unsupported root schema")
)

// Kind discriminates the schema node variants.
type Kind string

// Schema node kinds, matching the type tags of the sozo JSON output.
const (
	KindPrimitive Kind = "primitive"
	KindStruct    Kind = "struct"
	KindEnum      Kind = "enum"
	KindTuple     Kind = "tuple"
)

// Node is one node of a model's schema tree. Exactly the fields belonging to
// Kind are populated; the rest are zero.
type Node struct {
	Kind Kind

	// ScalarType is the primitive token, e.g. "u8" or "felt252" (KindPrimitive).
	ScalarType string

	// Name is the declared type name (KindStruct, KindEnum).
	Name string

	// Children are the struct members in declared order (KindStruct).
	Children []Member

	// Elements are the tuple elements in declared order (KindTuple).
	Elements []*Node
}

// Member is a named struct member.
type Member struct {
	Name string `json:"name"`
	Type *Node  `json:"member_type"`
}

// UnmarshalJSON decodes the tagged representation emitted by sozo:
//
//	{"type": "struct", "content": {"name": ..., "children": [...]}}
//
// An unrecognized type tag fails with ErrUnknownSchemaKind rather than
// producing an empty node.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    string          `json:"type"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch Kind(raw.Type) {
	case KindPrimitive:
		var content struct {
			ScalarType string `json:"scalar_type"`
		}
		if err := json.Unmarshal(raw.Content, &content); err != nil {
			return fmt.Errorf("primitive content: %w", err)
		}
		*n = Node{Kind: KindPrimitive, ScalarType: content.ScalarType}
	case KindStruct:
		var content struct {
			Name     string   `json:"name"`
			Children []Member `json:"children"`
		}
		if err := json.Unmarshal(raw.Content, &content); err != nil {
			return fmt.Errorf("struct content: %w", err)
		}
		*n = Node{Kind: KindStruct, Name: content.Name, Children: content.Children}
	case KindEnum:
		var content struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw.Content, &content); err != nil {
			return fmt.Errorf("enum content: %w", err)
		}
		*n = Node{Kind: KindEnum, Name: content.Name}
	case KindTuple:
		var content struct {
			Elements []*Node `json:"elements"`
		}
		if err := json.Unmarshal(raw.Content, &content); err != nil {
			return fmt.Errorf("tuple content: %w", err)
		}
		*n = Node{Kind: KindTuple, Elements: content.Elements}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSchemaKind, raw.Type)
	}

	return nil
}

// Parse decodes a full schema document.
func Parse(data []byte) (*Node, error) {
	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return &node, nil
}
