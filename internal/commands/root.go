// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dojoforge/recsgen/internal/translate"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "recsgen",
		Short: "Generate client component bindings from on-chain model schemas",
	}

	registerGenerateCmd(rootCmd, translators)
	registerFormatsCmd(rootCmd, translators)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerGenerateCmd(parent *cobra.Command, translators translate.Register) {
	parent.AddCommand(newGenerateCmd(translators))
}

func registerFormatsCmd(parent *cobra.Command, translators translate.Register) {
	parent.AddCommand(newFormatsCmd(translators))
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(newVersionCmd())
}
