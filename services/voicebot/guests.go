package voicebot

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	minGuests = 1
	maxGuests = 20
)

var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11,
	"twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15, "sixteen": 16,
	"seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"couple": 2, "pair": 2, "single": 1, "alone": 1,
}

var (
	adultsRE = regexp.MustCompile(`(\d+)\s*adults?`)
	kidsRE   = regexp.MustCompile(`(\d+)\s*(?:kid|kids|child|children)`)

	// Ordered; first match wins.
	guestPatterns = []*regexp.Regexp{
		regexp.MustCompile(`party\s+of\s+(\d+)`),
		regexp.MustCompile(`for\s+(\d+)`),
		regexp.MustCompile(`(\d+)\s*(?:people|persons|guests|seat|seats|person|guest)`),
	}
)

func clampGuests(n int) int {
	if n < minGuests {
		return minGuests
	}
	if n > maxGuests {
		return maxGuests
	}
	return n
}

// ExtractGuestCount parses a party size out of free text. It understands
// explicit adult/kid counts, numeric phrases ("party of 4", "for 2",
// "6 people") and number words ("two", "a couple"). The returned count is
// always within [1,20]. The second return is false when no count was found;
// the caller supplies its own default.
func ExtractGuestCount(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	norm := Normalize(text)

	// Adults/kids specific captures, summed.
	adults, kids := 0, 0
	for _, m := range adultsRE.FindAllStringSubmatch(norm, -1) {
		n, _ := strconv.Atoi(m[1])
		adults += n
	}
	for _, m := range kidsRE.FindAllStringSubmatch(norm, -1) {
		n, _ := strconv.Atoi(m[1])
		kids += n
	}
	if adults > 0 || kids > 0 {
		return clampGuests(adults + kids), true
	}

	for _, pat := range guestPatterns {
		if m := pat.FindStringSubmatch(norm); m != nil {
			n, _ := strconv.Atoi(m[1])
			return clampGuests(n), true
		}
	}

	// Number words; a literal "zero" is treated as no-match.
	for _, w := range strings.Fields(norm) {
		if n, ok := numberWords[w]; ok && n > 0 {
			return clampGuests(n), true
		}
	}

	return 0, false
}
