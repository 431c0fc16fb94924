// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

// Package fetch retrieves model schemas from a remote world via the sozo
// toolchain.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/dojoforge/recsgen/internal/schema"
)

var (
	// ErrMissingSozo indicates the sozo binary is not on PATH. Surfaced at
	// startup, before any model is processed.
	ErrMissingSozo = errors.New("sozo binary not found")

	// ErrFetchFailed indicates a model's schema could not be retrieved.
	// The run aborts on the first occurrence; there are no retries.
	ErrFetchFailed = errors.New("schema fetch failed")
)

// DefaultTimeout bounds a single sozo invocation. The toolchain holds its
// own connection state, so a hung call would otherwise stall the whole run.
const DefaultTimeout = 30 * time.Second

// Fetcher retrieves a model's schema from a remote world.
type Fetcher interface {
	// Check verifies the fetch tooling is available.
	Check() error

	// Fetch returns the schema for one model. Invocations are strictly
	// sequential; the caller awaits each before starting the next.
	Fetch(ctx context.Context, model, rpcURL, world string) (*schema.Node, error)
}

// runner executes the fetch command and returns its stdout.
type runner func(ctx context.Context, bin string, args ...string) ([]byte, error)

// Sozo fetches schemas by shelling out to the sozo CLI.
type Sozo struct {
	// Bin is the sozo binary name or path.
	Bin string

	// Timeout bounds each invocation.
	Timeout time.Duration

	run runner
}

// NewSozo creates a Sozo fetcher. An empty bin defaults to "sozo"; a zero
// timeout defaults to DefaultTimeout.
func NewSozo(bin string, timeout time.Duration) *Sozo {
	if bin == "" {
		bin = "sozo"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Sozo{Bin: bin, Timeout: timeout, run: runCommand}
}

// Check verifies the sozo binary is resolvable.
func (s *Sozo) Check() error {
	if _, err := exec.LookPath(s.Bin); err != nil {
		return fmt.Errorf("%w: %q (is the toolchain installed?)", ErrMissingSozo, s.Bin)
	}
	return nil
}

// Fetch runs `sozo model schema` for one model and parses the JSON output.
func (s *Sozo) Fetch(ctx context.Context, model, rpcURL, world string) (*schema.Node, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	out, err := s.run(ctx, s.Bin,
		"model", "schema", model,
		"--rpc-url", rpcURL,
		"--world", world,
		"--json",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: model %q at %s: %v", ErrFetchFailed, model, rpcURL, err)
	}

	node, err := schema.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("%w: model %q: invalid schema document: %v", ErrFetchFailed, model, err)
	}
	return node, nil
}

func runCommand(ctx context.Context, bin string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%v: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
