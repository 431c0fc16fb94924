// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

package commands

import (
	"fmt"

	"github.com/dojoforge/recsgen/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
}
