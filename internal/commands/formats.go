// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

package commands

import (
	"fmt"

	"github.com/dojoforge/recsgen/internal/translate"
	"github.com/spf13/cobra"
)

func newFormatsCmd(translators translate.Register) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range translators.Available() {
				t, err := translators.Get(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s (%s)\n", name, t.FileExtension())
			}
			return nil
		},
	}
}
