package voicebot

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	nonWordRE    = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// Normalize lowercases the input, replaces every non-alphanumeric rune with a
// space, and collapses whitespace runs. Idempotent; empty input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = nonWordRE.ReplaceAllString(strings.ToLower(text), " ")
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// tokens splits normalized text into words longer than minLen runes.
func tokens(normalized string, minLen int) []string {
	var out []string
	for _, w := range strings.Fields(normalized) {
		if utf8.RuneCountInString(w) > minLen {
			out = append(out, w)
		}
	}
	return out
}
