// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dojoforge/recsgen/internal/commands"
	"github.com/dojoforge/recsgen/internal/translate"
	"github.com/dojoforge/recsgen/internal/translate/recs"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	translators := make(translate.Register)
	translators.Add(recs.New())

	rootCmd := commands.NewRootCmd(translators)
	return rootCmd.ExecuteContext(ctx)
}
