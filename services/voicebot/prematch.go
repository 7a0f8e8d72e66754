package voicebot

import (
	"fmt"
	"strings"

	"savora/models"
)

// Cue words that suggest the command refers to a venue by name.
var venueCueWords = []string{"at ", "restaurant", "hotel", "cafe", "bistro", "bar", "grill"}

// Words that terminate a name phrase after "at".
var nameStopWords = map[string]struct{}{
	"for": {}, "on": {}, "at": {}, "with": {}, "around": {},
	"tomorrow": {}, "today": {}, "tonight": {},
}

// MentionedRestaurantName pulls the venue name the speaker appears to be
// referring to, without checking it against any candidate list. It reads up
// to three words after "at", stopping at scheduling words, and otherwise
// grabs the words around a "restaurant"/"hotel" keyword. Returns "" when the
// command carries no venue reference.
func MentionedRestaurantName(command string) string {
	commandLower := strings.ToLower(command)

	cued := false
	for _, cue := range venueCueWords {
		if strings.Contains(commandLower, cue) {
			cued = true
			break
		}
	}
	if !cued {
		return ""
	}

	words := strings.Fields(commandLower)
	for i, word := range words {
		if word != "at" || i+1 >= len(words) {
			continue
		}
		var nameWords []string
		for j := i + 1; j < len(words) && j <= i+3; j++ {
			if _, stop := nameStopWords[words[j]]; stop {
				break
			}
			nameWords = append(nameWords, words[j])
		}
		if len(nameWords) > 0 {
			return strings.Join(nameWords, " ")
		}
		break
	}

	for _, keyword := range []string{"restaurant", "hotel"} {
		for i, word := range words {
			if !strings.Contains(word, keyword) {
				continue
			}
			start := i - 2
			if start < 0 {
				start = 0
			}
			end := i + 3
			if end > len(words) {
				end = len(words)
			}
			return strings.Join(words[start:end], " ")
		}
	}
	return ""
}

// NarrowCandidates trims the candidate list before the resolver runs. When
// the command names a restaurant we can match, only that restaurant is kept;
// otherwise restaurants sharing a word with the command are moved to the
// front so they survive any downstream truncation. The returned match
// reports what the command-level scan found.
func NarrowCandidates(command string, restaurants []models.Restaurant) ([]models.Restaurant, models.RestaurantMatch) {
	match := SearchRestaurantInCommand(command, restaurants)
	if match.Found && match.Restaurant != nil {
		return []models.Restaurant{*match.Restaurant}, match
	}

	commandWords := strings.Fields(strings.ToLower(command))
	var priority, rest []models.Restaurant
	for _, r := range restaurants {
		nameLower := strings.ToLower(r.Name)
		hit := false
		for _, w := range commandWords {
			if len(w) > 2 && strings.Contains(nameLower, w) {
				hit = true
				break
			}
		}
		if hit {
			priority = append(priority, r)
		} else {
			rest = append(rest, r)
		}
	}
	return append(priority, rest...), match
}

// MissingRestaurantIntent is the short-circuit reply for a command that
// names a restaurant we do not have, returned before the model is consulted.
func MissingRestaurantIntent(mentioned string) *models.ReservationIntent {
	return &models.ReservationIntent{
		Intent:     models.IntentReservation,
		Confidence: 0.8,
		RestaurantMatch: models.RestaurantMatch{
			Found: false,
			Name:  mentioned,
		},
		ResponseMessage: fmt.Sprintf(
			"I couldn't find a restaurant named %q. Please check the name and try again, or ask me to show available restaurants.",
			mentioned),
		ActionRequired: models.ActionAskClarify,
	}
}
