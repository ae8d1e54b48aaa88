package features

import (
	"strings"
	"unicode/utf8"
)

// MinTokenLength is the minimum rune length of a vocabulary token.
const MinTokenLength = 2

// Tokenize splits normalized text into vocabulary tokens, dropping tokens
// shorter than MinTokenLength runes.
func Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if utf8.RuneCountInString(field) < MinTokenLength {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
