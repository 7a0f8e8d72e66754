package voicebot

import (
	"regexp"
	"strings"

	"savora/models"
)

// Matcher confidence tiers. A match is only accepted above AcceptFloor;
// everything scoring above AlternativeFloor is collected as an alternative.
const (
	ExactMatchConfidence   = 1.0
	MultiTokenConfidence   = 0.9
	SingleTokenConfidence  = 0.7
	PartialConfidence      = 0.65
	AcceptFloor            = 0.55
	AlternativeFloor       = 0.6
	// ManualOverrideFloor is the minimum confidence the command-derived
	// manual match must reach before it overrides a model-suggested match
	// that has no textual basis in the command.
	ManualOverrideFloor = 0.7
)

// Cue-word patterns for pulling candidate restaurant names out of a command.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`at\s+([^,\s](?:[^,]*[^,\s])?)`),
	regexp.MustCompile(`book\s+([^,\s](?:[^,]*[^,\s])?)`),
	regexp.MustCompile(`reserve\s+([^,\s](?:[^,]*[^,\s])?)`),
}

func wholeWordRE(token string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
}

// MatchRestaurant scores candidate text against every restaurant name and
// returns the best match. Scoring is token-based to avoid substring false
// positives: a single shared token only counts when it appears as a whole
// word in the restaurant name.
func MatchRestaurant(searchName string, restaurants []models.Restaurant) models.RestaurantMatch {
	if searchName == "" {
		return models.RestaurantMatch{Found: false}
	}
	searchNorm := Normalize(searchName)
	searchTokens := tokens(searchNorm, 2)

	var best *models.Restaurant
	bestConfidence := 0.0
	var alternatives []string

	for i := range restaurants {
		r := &restaurants[i]
		nameNorm := Normalize(r.Name)
		nameTokens := tokens(nameNorm, 2)

		if nameNorm == searchNorm {
			return models.RestaurantMatch{
				Found:        true,
				Name:         r.Name,
				Confidence:   ExactMatchConfidence,
				RestaurantID: r.ID,
				Restaurant:   r,
			}
		}

		overlap := tokenOverlap(searchTokens, nameTokens)
		confidence := 0.0
		switch {
		case len(overlap) >= 2:
			confidence = MultiTokenConfidence
		case len(overlap) == 1:
			if wholeWordRE(overlap[0]).MatchString(nameNorm) {
				confidence = SingleTokenConfidence
			}
		default:
			// Last resort: boundary-safe containment of longer tokens.
			for _, t := range searchTokens {
				if len(t) > 3 && wholeWordRE(t).MatchString(nameNorm) {
					confidence = PartialConfidence
					break
				}
			}
		}

		if confidence > bestConfidence {
			bestConfidence = confidence
			best = r
		}
		if confidence > AlternativeFloor {
			alternatives = append(alternatives, r.Name)
		}
	}

	if best != nil && bestConfidence > AcceptFloor {
		return models.RestaurantMatch{
			Found:        true,
			Name:         best.Name,
			Confidence:   bestConfidence,
			RestaurantID: best.ID,
			Restaurant:   best,
			Alternatives: capNames(alternatives, 3),
		}
	}
	return models.RestaurantMatch{
		Found:        false,
		Name:         searchName,
		Confidence:   0,
		Alternatives: capNames(alternatives, 5),
	}
}

// SearchRestaurantInCommand extracts candidate names from a raw command and
// runs each through the scorer, first hit wins. Candidates come from cue-word
// patterns ("at X", "book X", "reserve X") and from every contiguous window
// of one to three words.
func SearchRestaurantInCommand(command string, restaurants []models.Restaurant) models.RestaurantMatch {
	commandLower := strings.ToLower(command)

	var candidates []string
	for _, pat := range namePatterns {
		for _, m := range pat.FindAllStringSubmatch(commandLower, -1) {
			candidates = append(candidates, strings.TrimSpace(m[1]))
		}
	}

	words := strings.Fields(commandLower)
	for i := range words {
		for j := i + 1; j <= len(words) && j <= i+3; j++ {
			window := strings.Join(words[i:j], " ")
			if len(window) > 3 {
				candidates = append(candidates, window)
			}
		}
	}

	for _, candidate := range candidates {
		if match := MatchRestaurant(candidate, restaurants); match.Found {
			return match
		}
	}
	return models.RestaurantMatch{Found: false}
}

func tokenOverlap(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, t := range b {
		set[t] = struct{}{}
	}
	var out []string
	seen := make(map[string]struct{})
	for _, t := range a {
		if _, ok := set[t]; ok {
			if _, dup := seen[t]; !dup {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
	}
	return out
}

func capNames(names []string, n int) []string {
	if len(names) > n {
		return names[:n]
	}
	return names
}
