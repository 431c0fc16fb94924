// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dojoforge/recsgen/internal/config"
	"github.com/dojoforge/recsgen/internal/fetch"
	"github.com/dojoforge/recsgen/internal/manifest"
	"github.com/dojoforge/recsgen/internal/naming"
	"github.com/dojoforge/recsgen/internal/prompts"
	"github.com/dojoforge/recsgen/internal/translate"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	format      string
	sozo        string
	timeout     time.Duration
	interactive bool
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <manifest> <output> <rpc-url> <world-address>",
		Short: "Generate component bindings for every model in a manifest",
		Long: fmt.Sprintf(`Generate component bindings for every model in a manifest.

Each model's schema is fetched from the remote world via sozo, translated,
and written to a single output file.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Generate recs bindings
  recsgen generate manifest.json src/contractComponents.ts http://localhost:5050 0x1234abcd

  # Interactive mode
  recsgen generate --interactive

  # Custom sozo binary and per-fetch deadline
  recsgen generate manifest.json out.ts http://localhost:5050 0x1234abcd --sozo ~/.dojo/bin/sozo --timeout 10s`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.interactive {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(4)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "recs", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVar(&opts.sozo, "sozo", "", "Path to the sozo binary (default \"sozo\")")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Deadline for each schema fetch (default 30s)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for all inputs")

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Optional project config supplies defaults; flags win.
	cfg, err := config.LoadOptional(cwd)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", config.FileName, err)
	}
	if !cmd.Flags().Changed("sozo") && cfg.Sozo != "" {
		opts.sozo = cfg.Sozo
	}
	if !cmd.Flags().Changed("timeout") && cfg.Timeout > 0 {
		opts.timeout = time.Duration(cfg.Timeout)
	}

	var manifestPath, outputPath, rpcURL, worldAddress string
	if opts.interactive {
		if err := prompts.RunGenerateForm(&manifestPath, &outputPath, &rpcURL, &worldAddress); err != nil {
			return err
		}
	} else {
		manifestPath, outputPath, rpcURL, worldAddress = args[0], args[1], args[2], args[3]
	}

	translator, err := translators.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(translators.Available(), ", "))
	}

	// Missing tooling is a startup failure, before any fetch is attempted.
	fetcher := fetch.NewSozo(opts.sozo, opts.timeout)
	if err := fetcher.Check(); err != nil {
		return err
	}

	absManifest, err := filepath.Abs(manifestPath)
	if err != nil {
		return err
	}
	loader := manifest.NewLoader(os.DirFS(filepath.Dir(absManifest)))
	m, err := loader.LoadFile(filepath.Base(absManifest))
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	if len(m.Models) == 0 {
		return fmt.Errorf("manifest %s lists no models", manifestPath)
	}

	fmt.Printf("Fetching %d model schema(s) from %s...\n", len(m.Models), rpcURL)

	// One model at a time: sozo carries its own session state, so fetches
	// are never issued concurrently. The first failure aborts the run.
	models := make([]translate.Model, 0, len(m.Models))
	for _, entry := range m.Models {
		name := naming.Normalize(entry.Name)
		node, err := fetcher.Fetch(cmd.Context(), name, rpcURL, worldAddress)
		if err != nil {
			return err
		}
		fmt.Printf("  %s\n", name)
		models = append(models, translate.Model{Name: name, Schema: node})
	}

	data, err := translator.Translate(models)
	if err != nil {
		return err
	}

	outFile := resolveOutputPath(outputPath, translator)
	if dir := filepath.Dir(outFile); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Models", Value: fmt.Sprintf("%d", len(models))},
		{Label: "Format", Value: translator.Name()},
		{Label: "Output", Value: outFile},
	}, "Components generated")

	return nil
}

// resolveOutputPath appends a default file name when the output path has no
// extension (treated as a directory).
func resolveOutputPath(outputPath string, translator translate.Translator) string {
	if filepath.Ext(outputPath) == "" {
		return filepath.Join(outputPath, "contractComponents"+translator.FileExtension())
	}
	return outputPath
}
