// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

package manifest

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"manifest.json": &fstest.MapFile{Data: []byte(`{
			"world": {"address": "0x1234"},
			"models": [
				{"name": "dojo::models::position", "class_hash": "0xabc"},
				{"name": "dojo::models::moves", "class_hash": "0xdef"}
			]
		}`)},
	}

	loader := NewLoader(fsys)
	m, err := loader.LoadFile("manifest.json")
	require.NoError(t, err)

	require.Len(t, m.Models, 2)
	assert.Equal(t, "dojo::models::position", m.Models[0].Name)
	assert.Equal(t, "dojo::models::moves", m.Models[1].Name)
}

func TestLoadFile_NoModels(t *testing.T) {
	fsys := fstest.MapFS{
		"manifest.json": &fstest.MapFile{Data: []byte(`{"world": {}}`)},
	}

	loader := NewLoader(fsys)
	m, err := loader.LoadFile("manifest.json")
	require.NoError(t, err)
	assert.Empty(t, m.Models)
}

func TestLoadFile_NotFound(t *testing.T) {
	loader := NewLoader(fstest.MapFS{})
	_, err := loader.LoadFile("manifest.json")
	require.Error(t, err)
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"manifest.json": &fstest.MapFile{Data: []byte(`{invalid`)},
	}

	loader := NewLoader(fsys)
	_, err := loader.LoadFile("manifest.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest.json")
}
