// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

// Package manifest loads the world manifest listing the models to generate
// components for.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
)

// Model is one model entry of the manifest. Only the name is consumed;
// remaining manifest fields belong to the deployment toolchain.
type Model struct {
	Name string `json:"name"`
}

// Manifest is the parsed world manifest. Model order is the order of the
// generated output.
type Manifest struct {
	Models []Model `json:"models"`
}

// Loader loads manifests from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a manifest file.
func (l *Loader) LoadFile(filePath string) (*Manifest, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", filePath, err)
	}
	return &m, nil
}
