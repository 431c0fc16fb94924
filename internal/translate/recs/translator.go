// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

// Package recs translates model schemas to recs component definitions.
package recs

import (
	"fmt"
	"strings"

	"github.com/dojoforge/recsgen/internal/schema"
	"github.com/dojoforge/recsgen/internal/translate"
)

// Translator renders defineComponent declarations for the recs
// entity-component store.
type Translator struct{}

// New creates a new recs translator.
func New() *Translator {
	return &Translator{}
}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "recs"
}

// FileExtension returns the file extension for recs binding files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

// Translate renders the complete components file: one defineComponent block
// per model, in input order, inside the defineContractComponents wrapper.
func (t *Translator) Translate(models []translate.Model) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("/* Autogenerated file. Do not edit manually. */\n\n")
	sb.WriteString(`import { defineComponent, Type as RecsType } from "@dojoengine/recs";` + "\n\n")
	sb.WriteString("export function defineContractComponents(world) {\n")
	sb.WriteString("  return {\n")

	for _, m := range models {
		block, err := componentBlock(m.Name, m.Schema)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", m.Name, err)
		}
		sb.WriteString(block)
	}

	sb.WriteString("  };\n")
	sb.WriteString("}\n")

	return []byte(sb.String()), nil
}

// TranslateRoot converts a model's schema tree to a recs type expression and
// the two metadata lists accumulated in depth-first pre-order: primitive
// scalar tokens (lowercased) and custom struct/enum type names. The root
// must be a struct; its own name is the model itself, not a custom type, so
// only nested structs and enums are recorded.
func TranslateRoot(node *schema.Node) (string, []string, []string, error) {
	if node == nil {
		return "", nil, nil, fmt.Errorf("%w: missing schema", schema.ErrUnsupportedRootSchema)
	}
	if node.Kind != schema.KindStruct {
		return "", nil, nil, fmt.Errorf("%w: root must be a struct, got %s", schema.ErrUnsupportedRootSchema, node.Kind)
	}

	acc := &accumulator{}
	expr, err := memberObject(node, acc)
	if err != nil {
		return "", nil, nil, err
	}
	return expr, acc.types, acc.customTypes, nil
}

// accumulator collects metadata during translation. Both lists keep
// traversal order and may contain duplicates.
type accumulator struct {
	types       []string
	customTypes []string
}

func translateNode(node *schema.Node, acc *accumulator) (string, error) {
	switch node.Kind {
	case schema.KindPrimitive:
		scalar := strings.ToLower(node.ScalarType)
		acc.types = append(acc.types, scalar)
		return scalarExpr(scalar), nil

	case schema.KindStruct:
		// Struct name is recorded before its children are visited.
		acc.customTypes = append(acc.customTypes, node.Name)
		return memberObject(node, acc)

	case schema.KindEnum:
		// Enum payloads are never introspected; every variant tag fits a
		// plain number.
		acc.types = append(acc.types, "enum")
		acc.customTypes = append(acc.customTypes, node.Name)
		return enumType, nil

	case schema.KindTuple:
		elems := make([]string, 0, len(node.Elements))
		for i, elem := range node.Elements {
			expr, err := translateNode(elem, acc)
			if err != nil {
				return "", fmt.Errorf("element %d: %w", i, err)
			}
			elems = append(elems, expr)
		}
		return "[" + strings.Join(elems, ", ") + "]", nil

	default:
		return "", fmt.Errorf("%w: %q", schema.ErrUnknownSchemaKind, node.Kind)
	}
}

// memberObject renders a struct's members as an object expression in
// declared order.
func memberObject(node *schema.Node, acc *accumulator) (string, error) {
	if len(node.Children) == 0 {
		return "{}", nil
	}
	members := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		expr, err := translateNode(child.Type, acc)
		if err != nil {
			return "", fmt.Errorf("member %q: %w", child.Name, err)
		}
		members = append(members, child.Name+": "+expr)
	}
	return "{ " + strings.Join(members, ", ") + " }", nil
}

// componentBlock renders one model entry of the returned component mapping.
func componentBlock(name string, node *schema.Node) (string, error) {
	expr, types, customTypes, err := TranslateRoot(node)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("    %s: (() => {\n", name))
	sb.WriteString("      return defineComponent(\n")
	sb.WriteString("        world,\n")
	sb.WriteString(fmt.Sprintf("        %s,\n", expr))
	sb.WriteString("        {\n")
	sb.WriteString("          metadata: {\n")
	sb.WriteString(fmt.Sprintf("            name: %q,\n", name))
	sb.WriteString(fmt.Sprintf("            types: %s,\n", stringArray(types)))
	sb.WriteString(fmt.Sprintf("            customTypes: %s,\n", stringArray(customTypes)))
	sb.WriteString("          },\n")
	sb.WriteString("        }\n")
	sb.WriteString("      );\n")
	sb.WriteString("    })(),\n")
	return sb.String(), nil
}

// stringArray renders a literal array of quoted strings.
func stringArray(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
