// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dojoforge/recsgen/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSozo_Defaults(t *testing.T) {
	s := NewSozo("", 0)
	assert.Equal(t, "sozo", s.Bin)
	assert.Equal(t, DefaultTimeout, s.Timeout)

	s = NewSozo("/opt/dojo/sozo", 5*time.Second)
	assert.Equal(t, "/opt/dojo/sozo", s.Bin)
	assert.Equal(t, 5*time.Second, s.Timeout)
}

func TestCheck_MissingBinary(t *testing.T) {
	s := NewSozo("definitely-not-a-real-binary-name", 0)
	err := s.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSozo)
}

func TestFetch(t *testing.T) {
	var gotBin string
	var gotArgs []string

	s := NewSozo("sozo", 0)
	s.run = func(ctx context.Context, bin string, args ...string) ([]byte, error) {
		gotBin = bin
		gotArgs = args
		return []byte(`{
			"type": "struct",
			"content": {
				"name": "Position",
				"children": [
					{"name": "x", "member_type": {"type": "primitive", "content": {"scalar_type": "u32"}}}
				]
			}
		}`), nil
	}

	node, err := s.Fetch(context.Background(), "Position", "http://localhost:5050", "0x1234")
	require.NoError(t, err)

	assert.Equal(t, "sozo", gotBin)
	assert.Equal(t, []string{
		"model", "schema", "Position",
		"--rpc-url", "http://localhost:5050",
		"--world", "0x1234",
		"--json",
	}, gotArgs)

	assert.Equal(t, schema.KindStruct, node.Kind)
	assert.Equal(t, "Position", node.Name)
	require.Len(t, node.Children, 1)
}

func TestFetch_CommandFailure(t *testing.T) {
	s := NewSozo("sozo", 0)
	s.run = func(ctx context.Context, bin string, args ...string) ([]byte, error) {
		return nil, errors.New("exit status 1: model not registered")
	}

	_, err := s.Fetch(context.Background(), "Missing", "http://localhost:5050", "0x1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Contains(t, err.Error(), `"Missing"`)
	assert.Contains(t, err.Error(), "http://localhost:5050")
}

func TestFetch_InvalidSchemaDocument(t *testing.T) {
	s := NewSozo("sozo", 0)
	s.run = func(ctx context.Context, bin string, args ...string) ([]byte, error) {
		return []byte(`not json`), nil
	}

	_, err := s.Fetch(context.Background(), "Position", "http://localhost:5050", "0x1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetch_DeadlineApplied(t *testing.T) {
	s := NewSozo("sozo", 50*time.Millisecond)
	s.run = func(ctx context.Context, bin string, args ...string) ([]byte, error) {
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 25*time.Millisecond)
		return nil, context.DeadlineExceeded
	}

	_, err := s.Fetch(context.Background(), "Position", "http://localhost:5050", "0x1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}
