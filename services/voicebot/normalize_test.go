package voicebot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hotel TAJ!", "hotel taj"},
		{"  Book   a TABLE,  please. ", "book a table please"},
		{"Café—Déjà Vu", "café déjà vu"},
		{"pizza-world @ 7pm", "pizza world 7pm"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "input %q", c.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Reserve nagasai for two tomorrow",
		"  PARTY of 8 @ The Golden-Spoon!!! ",
		"",
		"already normalized text",
		"ünïcode   späces\tand\nnewlines",
	}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize not idempotent for %q", s)
	}
}

func TestTokensFiltersShortWords(t *testing.T) {
	got := tokens("at the taj hotel by me", 2)
	assert.Equal(t, []string{"the", "taj", "hotel"}, got)
}

func TestTokensCountRunesNotBytes(t *testing.T) {
	// "éé" is four bytes but only two runes, so it must be filtered.
	got := tokens("éé éclair vu", 2)
	assert.Equal(t, []string{"éclair"}, got)
}
