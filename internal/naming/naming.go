// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dojoforge Labs

// Package naming normalizes on-chain model identifiers for generated code.
package naming

import (
	"strconv"
	"strings"
	"unicode"
)

// Normalize converts a namespaced model identifier to the display name used
// in generated component declarations. The last "::" segment is split on
// underscores and each part is recased so that acronym-like parts survive:
//
//	player_health     -> PlayerHealth
//	u8_value          -> U8Value
//	dojo::models::vec -> Vec
//
// Empty input yields an empty string.
func Normalize(raw string) string {
	segments := strings.Split(raw, "::")
	parts := strings.Split(segments[len(segments)-1], "_")

	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(normalizePart(part))
	}
	return sb.String()
}

// normalizePart applies the first matching recasing rule:
// integer literals pass through verbatim; short parts (<= 3 runes) and parts
// starting with a digit are uppercased whole; everything else is capitalized
// with the remainder lowercased.
func normalizePart(part string) string {
	if part == "" {
		return ""
	}
	if _, err := strconv.Atoi(part); err == nil {
		return part
	}

	runes := []rune(part)
	if len(runes) <= 3 || unicode.IsDigit(runes[0]) {
		return strings.ToUpper(part)
	}
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
