// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package naming converts JavaScript identifiers to target-language naming
// conventions. All conversions are pure, idempotent string transforms.
package naming

import (
	"strings"
	"unicode"
)

// splitWords breaks an identifier into its constituent words. Boundaries are
// underscores, hyphens, lower-to-upper transitions and acronym ends
// ("HTTPServer" -> HTTP, Server). Runs of uppercase letters and digits stay
// one word so "MD5" never gains a separator.
func splitWords(s string) []string {
	var words []string
	var cur []rune
	runes := []rune(s)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// ToSnakeCase converts an identifier to snake_case. Idempotent; acronym runs
// collapse to a single lowercase word ("MD5" -> "md5", "RotL32" -> "rot_l32").
func ToSnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// ToPascalCase converts an identifier to PascalCase. Idempotent; preserves
// all-uppercase acronym words ("md5_hash" -> "Md5Hash", "MD5" -> "MD5").
func ToPascalCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		if isAllUpper(w) {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, "")
}

// ToCamelCase converts an identifier to camelCase.
func ToCamelCase(s string) string {
	p := ToPascalCase(s)
	if p == "" {
		return p
	}
	if isAllUpper(p) {
		return strings.ToLower(p)
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// ToScreamingSnake converts an identifier to SCREAMING_SNAKE_CASE, the
// constant convention shared by every supported target.
func ToScreamingSnake(s string) string {
	return strings.ToUpper(ToSnakeCase(s))
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// StripPrivatePrefix removes the JavaScript private-field underscore prefix
// ("_key" -> "key"). Identifiers that are nothing but underscores are kept.
func StripPrivatePrefix(s string) string {
	trimmed := strings.TrimLeft(s, "_")
	if trimmed == "" {
		return s
	}
	return trimmed
}

// Keyword resolves a collision with a reserved word of the target language
// by appending an underscore. Callers must apply the result at every use
// site of the identifier within the same scope.
func Keyword(name string, reserved map[string]bool) string {
	if reserved[name] {
		return name + "_"
	}
	return name
}
