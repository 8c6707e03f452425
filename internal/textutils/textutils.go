// Package textutils provides the description cleanup rules shared by the
// statement front-ends.
package textutils

import (
	"regexp"
	"strings"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	// Page-break filler injected by the upstream converter. Stripped
	// case-insensitively without touching surrounding description text.
	noisePattern = regexp.MustCompile(`(?i)continued from previous page`)
	// Minus markers left behind once trailing-sign tokens are removed.
	// The whole trailing run is stripped in one pass so Normalize stays
	// idempotent even when several stray markers stack up.
	trailingMinusPattern = regexp.MustCompile(`(?:-\s*)+$`)
)

// CollapseWhitespace replaces runs of whitespace with single spaces and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// Normalize strips converter noise and stray trailing minus markers, then
// collapses whitespace. Normalize is idempotent: applying it to an
// already-normalized description returns the same string.
func Normalize(desc string) string {
	desc = noisePattern.ReplaceAllString(desc, "")
	desc = trailingMinusPattern.ReplaceAllString(desc, "")
	return CollapseWhitespace(desc)
}

// CleanDescription removes the given raw token substrings from desc
// (first occurrence only, so legitimate repeated digit sequences survive)
// and then normalizes the remainder.
func CleanDescription(desc string, remove ...string) string {
	for _, raw := range remove {
		if raw == "" {
			continue
		}
		desc = strings.Replace(desc, raw, "", 1)
	}
	return Normalize(desc)
}
