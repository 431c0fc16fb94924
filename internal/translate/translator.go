// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

// Package translate provides model schema translation to client binding code.
package translate

import (
	"fmt"
	"sort"

	"github.com/dojoforge/recsgen/internal/schema"
)

// Model pairs a normalized model name with its fetched schema.
type Model struct {
	// Name is the normalized display name, e.g. "PlayerHealth".
	Name string

	// Schema is the model's schema tree, rooted at a struct.
	Schema *schema.Node
}

// Translator defines the interface all binding translators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "recs")
	Name() string

	// Translate renders the complete generated source document for the
	// given models, in order.
	Translate(models []Model) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".ts")
	FileExtension() string
}

// Register is a named set of translators.
type Register map[string]Translator

// Add registers a translator under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
