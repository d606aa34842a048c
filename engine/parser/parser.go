// Package parser normalizes operator input and matches it against a fixed
// option set. Intentionally dumb: no aliases, no prefixes.
package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize trims input, upper-cases its first rune and lower-cases the rest.
// "rOCK" → "Rock", "  aria  " → "Aria".
func Capitalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(input)
	return string(unicode.ToUpper(r)) + strings.ToLower(input[size:])
}

// Choice returns the index of the option that the normalized input equals.
// Options are compared after the same normalization, so "scissors",
// "SCISSORS" and " Scissors " all select "Scissors".
func Choice(input string, options []string) (int, bool) {
	norm := Capitalize(input)
	if norm == "" {
		return -1, false
	}
	for i, opt := range options {
		if Capitalize(opt) == norm {
			return i, true
		}
	}
	return -1, false
}
