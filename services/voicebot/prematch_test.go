package voicebot

import (
	"testing"

	"savora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMentionedRestaurantName(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"book a table at pizza world for 4", "pizza world"},
		{"dinner at grand palace tonight", "grand palace"},
		{"reserve at the golden spoon on friday", "the golden spoon"},
		{"what's the weather like", ""},
		{"can you get me a seat for two", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MentionedRestaurantName(tt.command), "command %q", tt.command)
	}
}

func TestNarrowCandidatesToMentionedRestaurant(t *testing.T) {
	candidates, match := NarrowCandidates("book a table at pizza world for 4", candidateRestaurants())
	require.True(t, match.Found)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Pizza World", candidates[0].Name)
}

func TestNarrowCandidatesPrioritizesKeywordHits(t *testing.T) {
	restaurants := candidateRestaurants()
	candidates, match := NarrowCandidates("somewhere with good su shi", restaurants)
	assert.False(t, match.Found)
	// No single restaurant matched, so the full list comes back.
	assert.Len(t, candidates, len(restaurants))
}

func TestMissingRestaurantIntent(t *testing.T) {
	intent := MissingRestaurantIntent("grand palace")
	assert.Equal(t, models.IntentReservation, intent.Intent)
	assert.Equal(t, models.ActionAskClarify, intent.ActionRequired)
	assert.False(t, intent.RestaurantMatch.Found)
	assert.Equal(t, "grand palace", intent.RestaurantMatch.Name)
	assert.Contains(t, intent.ResponseMessage, "grand palace")
}
