package search

import (
	"strings"
	"unicode/utf8"
)

// tokenize lowercases the query and splits it on whitespace, discarding
// tokens shorter than minLength runes.
func tokenize(query string, minLength int) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if utf8.RuneCountInString(field) < minLength {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
