// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import "fmt"

// scanBalanced checks that (), [] and {} nest correctly, ignoring anything
// inside string literals, character/rune literals, and comments. It is a
// structural check, not a parse; it catches the truncated or mangled output
// a real compiler would reject immediately.
func scanBalanced(src, language string) error {
	var stack []byte
	line := 1

	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '\n' {
			line++
			continue
		}

		switch c {
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				i = skipLineComment(src, i)
				line++
			} else if i+1 < len(src) && src[i+1] == '*' {
				var n int
				i, n = skipBlockComment(src, i)
				line += n
			}
		case '"':
			var n int
			i, n = skipString(src, i, '"')
			line += n
		case '`':
			if language == "go" {
				var n int
				i, n = skipRawString(src, i)
				line += n
			}
		case '\'':
			i = skipCharLiteral(src, i)
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 {
				return fmt.Errorf("line %d: unexpected %q", line, string(c))
			}
			open := stack[len(stack)-1]
			if !matches(open, c) {
				return fmt.Errorf("line %d: %q closes %q", line, string(c), string(open))
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return fmt.Errorf("unclosed %q at end of input", string(stack[len(stack)-1]))
	}
	return nil
}

func matches(open, close byte) bool {
	switch open {
	case '(':
		return close == ')'
	case '[':
		return close == ']'
	case '{':
		return close == '}'
	}
	return false
}

func skipLineComment(src string, i int) int {
	for ; i < len(src); i++ {
		if src[i] == '\n' {
			return i
		}
	}
	return len(src)
}

func skipBlockComment(src string, i int) (int, int) {
	lines := 0
	for i += 2; i+1 < len(src); i++ {
		if src[i] == '\n' {
			lines++
		}
		if src[i] == '*' && src[i+1] == '/' {
			return i + 1, lines
		}
	}
	return len(src), lines
}

func skipString(src string, i int, quote byte) (int, int) {
	lines := 0
	for i++; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '\n':
			lines++
		case quote:
			return i, lines
		}
	}
	return len(src), lines
}

func skipRawString(src string, i int) (int, int) {
	lines := 0
	for i++; i < len(src); i++ {
		if src[i] == '\n' {
			lines++
		}
		if src[i] == '`' {
			return i, lines
		}
	}
	return len(src), lines
}

// skipCharLiteral handles '\n', 'x' and rune literals. A quote that does not
// close within a short window is treated as a Rust lifetime marker and left
// alone.
func skipCharLiteral(src string, i int) int {
	j := i + 1
	if j < len(src) && src[j] == '\\' {
		j++ // escape consumes the next byte
		for j++; j < len(src) && j < i+12; j++ {
			if src[j] == '\'' {
				return j
			}
		}
		return i
	}
	// Unescaped form is at most a few bytes (multibyte rune plus quote).
	for ; j < len(src) && j < i+6; j++ {
		if src[j] == '\'' {
			return j
		}
		if src[j] == '\n' {
			break
		}
	}
	return i
}
