// Package template implements the placeholder token mini-language used to
// rewrite template file contents and path names.
//
// A token is a "{{ key }}" span. Scanning is left-to-right and
// non-overlapping: a token opens at the first "{{" and closes at the next
// "}}", and scanning resumes after the closing marker. Nesting is not
// supported; an unterminated "{{" is ignored.
package template

import "strings"

const (
	openMarker  = "{{"
	closeMarker = "}}"
)

// Token is one placeholder occurrence in a scanned string.
type Token struct {
	// Key is the placeholder name, trimmed of whitespace and stray braces.
	Key string

	// Literal is the exact span of the token in the input, markers included.
	Literal string
}

// FindTokens scans text for placeholder tokens in occurrence order.
// The literal span runs from the opening "{{" through the closing "}}",
// so "{{{key}}" yields a token with key "key" and the stray brace inside
// the literal.
func FindTokens(text string) []Token {
	var tokens []Token

	for {
		open := strings.Index(text, openMarker)
		if open < 0 {
			return tokens
		}

		rest := text[open+len(openMarker):]
		end := strings.Index(rest, closeMarker)
		if end < 0 {
			// Unterminated opening marker.
			return tokens
		}

		literal := text[open : open+len(openMarker)+end+len(closeMarker)]
		key := strings.Trim(rest[:end], " \t{}")

		tokens = append(tokens, Token{Key: key, Literal: literal})
		text = rest[end+len(closeMarker):]
	}
}
