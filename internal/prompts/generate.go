// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

package prompts

import (
	"errors"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// RunGenerateForm collects the generate command inputs interactively.
// Values already set are shown as editable defaults.
func RunGenerateForm(manifestPath, outputPath, rpcURL, worldAddress *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Manifest path").
				Description("World manifest JSON listing the models").
				Validate(fileExists).
				Value(manifestPath),
			huh.NewInput().
				Title("Output path").
				Description("Generated components file, e.g. contractComponents.ts").
				Validate(nonEmpty("output path")).
				Value(outputPath),
			huh.NewInput().
				Title("RPC endpoint").
				Validate(validURL).
				Value(rpcURL),
			huh.NewInput().
				Title("World address").
				Validate(hexAddress).
				Value(worldAddress),
		),
	).WithTheme(Theme())

	return form.Run()
}

func nonEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(what + " is required")
		}
		return nil
	}
}

func fileExists(s string) error {
	if err := nonEmpty("manifest path")(s); err != nil {
		return err
	}
	if _, err := os.Stat(s); err != nil {
		return errors.New("file not found")
	}
	return nil
}

func validURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("must be a valid URL")
	}
	return nil
}

func hexAddress(s string) error {
	if !strings.HasPrefix(s, "0x") || len(s) < 3 {
		return errors.New("must be a 0x-prefixed address")
	}
	for _, r := range s[2:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return errors.New("must be hexadecimal")
		}
	}
	return nil
}
