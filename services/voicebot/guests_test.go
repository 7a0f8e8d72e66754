package voicebot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractGuestCount(t *testing.T) {
	cases := []struct {
		text  string
		want  int
		found bool
	}{
		{"table for 2 adults and 3 kids", 5, true},
		{"2 adults, 1 child please", 3, true},
		{"party of 8 tonight", 8, true},
		{"book a table for 4", 4, true},
		{"6 people at seven", 6, true},
		{"3 guests", 3, true},
		{"reserve nagasai for two tomorrow", 2, true},
		{"a couple of us", 2, true},
		{"just me, alone", 1, true},
		{"dinner at the taj", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ExtractGuestCount(c.text)
		assert.Equal(t, c.found, ok, "found mismatch for %q", c.text)
		if c.found {
			assert.Equal(t, c.want, got, "count mismatch for %q", c.text)
		}
	}
}

func TestExtractGuestCountClamps(t *testing.T) {
	got, ok := ExtractGuestCount("party of 500")
	assert.True(t, ok)
	assert.Equal(t, 20, got)

	got, ok = ExtractGuestCount("0 adults and 0 kids") // adults/kids present but zero
	assert.False(t, ok)
	_ = got

	got, ok = ExtractGuestCount("for 0")
	assert.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestExtractGuestCountZeroWordFallsThrough(t *testing.T) {
	// A literal "zero" is not a usable count; later words may still match.
	got, ok := ExtractGuestCount("zero chance, make it three")
	assert.True(t, ok)
	assert.Equal(t, 3, got)

	_, ok = ExtractGuestCount("zero")
	assert.False(t, ok)
}

func TestExtractGuestCountRange(t *testing.T) {
	inputs := []string{
		"party of 1", "party of 19", "party of 20", "party of 21", "party of 9999",
		"for 3", "twenty people", "one", "2 adults and 18 children", "15 adults and 15 kids",
	}
	for _, s := range inputs {
		got, ok := ExtractGuestCount(s)
		if assert.True(t, ok, "expected a count for %q", s) {
			assert.GreaterOrEqual(t, got, 1, "below range for %q", s)
			assert.LessOrEqual(t, got, 20, "above range for %q", s)
		}
	}
}
