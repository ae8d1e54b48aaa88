package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeWhitespace collapses consecutive whitespace characters into single
// spaces and trims the result. Case and punctuation are left untouched.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// RemovePunctuation drops every rune that is not a letter, number, whitespace
// or underscore. Word boundaries are kept because whitespace is preserved.
func RemovePunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
}

// Normalize lowercases text, normalizes whitespace and strips punctuation.
// Whitespace is collapsed again after punctuation removal since dropping a
// symbol between two spaces leaves a double space behind.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// cases.Caser keeps internal state; build one per call.
	lowered := cases.Lower(language.Und).String(text)
	normalized := NormalizeWhitespace(lowered)
	return NormalizeWhitespace(RemovePunctuation(normalized))
}

// NormalizeCorpus applies Normalize to every text, preserving order.
func NormalizeCorpus(texts []string) []string {
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = Normalize(text)
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
