package services

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRegex   = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// NormalizeText lowercases the input, replaces every character outside
// [a-zA-Z0-9\s] with a space and collapses runs of whitespace. Empty or
// missing input yields an empty string. Every scoring comparison runs on
// normalized text so punctuation and casing never affect scores.
func NormalizeText(text string) string {
	text = strings.ToLower(text)
	text = nonAlnumRegex.ReplaceAllString(text, " ")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize splits normalized text into word tokens.
func Tokenize(text string) []string {
	normalized := NormalizeText(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
