package voicebot

import (
	"testing"

	"savora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "1", Name: "The Golden Spoon"},
		{ID: "2", Name: "Hotel Nagasai"},
		{ID: "3", Name: "Pizza World"},
		{ID: "4", Name: "Sakura Sushi"},
		{ID: "5", Name: "Hotel Vivana"},
	}
}

func TestMatchRestaurantExact(t *testing.T) {
	match := MatchRestaurant("hotel nagasai", candidateRestaurants())
	require.True(t, match.Found)
	assert.Equal(t, "Hotel Nagasai", match.Name)
	assert.Equal(t, ExactMatchConfidence, match.Confidence)
	assert.Equal(t, "2", match.RestaurantID)
}

func TestMatchRestaurantWordBoundary(t *testing.T) {
	// "sai" appears only inside "nagasai"; it must not match.
	match := MatchRestaurant("sai", candidateRestaurants())
	assert.False(t, match.Found)

	// The full token matches as a whole word.
	match = MatchRestaurant("nagasai", candidateRestaurants())
	require.True(t, match.Found)
	assert.Equal(t, "Hotel Nagasai", match.Name)
	assert.Equal(t, SingleTokenConfidence, match.Confidence)
}

func TestMatchRestaurantTokenOverlap(t *testing.T) {
	match := MatchRestaurant("golden spoon downtown", candidateRestaurants())
	require.True(t, match.Found)
	assert.Equal(t, "The Golden Spoon", match.Name)
	assert.Equal(t, MultiTokenConfidence, match.Confidence)

	match = MatchRestaurant("pizza place", candidateRestaurants())
	require.True(t, match.Found)
	assert.Equal(t, "Pizza World", match.Name)
	assert.Equal(t, SingleTokenConfidence, match.Confidence)
}

func TestMatchRestaurantNoMatch(t *testing.T) {
	match := MatchRestaurant("burger barn", candidateRestaurants())
	assert.False(t, match.Found)
	assert.Equal(t, 0.0, match.Confidence)

	match = MatchRestaurant("", candidateRestaurants())
	assert.False(t, match.Found)
}

func TestMatchRestaurantConfidenceFloor(t *testing.T) {
	inputs := []string{
		"golden", "spoon", "nagasai", "sai", "pizza world", "hotel",
		"sakura", "sushi bar", "vivana", "the", "xyz", "world pizza",
		"hotel nagasai", "golden spoon",
	}
	for _, in := range inputs {
		match := MatchRestaurant(in, candidateRestaurants())
		if match.Found {
			assert.Greater(t, match.Confidence, AcceptFloor, "accepted %q below the floor", in)
		}
	}
}

func TestMatchRestaurantAlternatives(t *testing.T) {
	restaurants := []models.Restaurant{
		{ID: "1", Name: "Hotel Taj Palace"},
		{ID: "2", Name: "Hotel Taj Gardens"},
		{ID: "3", Name: "Hotel Taj Express"},
		{ID: "4", Name: "Hotel Taj Royal"},
	}
	match := MatchRestaurant("hotel taj", restaurants)
	require.True(t, match.Found)
	assert.LessOrEqual(t, len(match.Alternatives), 3)
}

func TestSearchRestaurantInCommand(t *testing.T) {
	restaurants := candidateRestaurants()

	match := SearchRestaurantInCommand("book a table at pizza world for 4", restaurants)
	require.True(t, match.Found)
	assert.Equal(t, "Pizza World", match.Name)

	match = SearchRestaurantInCommand("reserve nagasai for two tomorrow", restaurants)
	require.True(t, match.Found)
	assert.Equal(t, "Hotel Nagasai", match.Name)

	match = SearchRestaurantInCommand("what's happening this evening", restaurants)
	assert.False(t, match.Found)
}

func TestMatchRestaurantShortNameToken(t *testing.T) {
	restaurants := []models.Restaurant{
		{ID: "7", Name: "Hotel TAJ"},
		{ID: "8", Name: "Spice Garden"},
	}

	match := MatchRestaurant("taj", restaurants)
	require.True(t, match.Found)
	assert.Equal(t, "Hotel TAJ", match.Name)
	assert.Equal(t, SingleTokenConfidence, match.Confidence)

	match = SearchRestaurantInCommand("book a table at taj for 4 people", restaurants)
	require.True(t, match.Found)
	assert.Equal(t, "Hotel TAJ", match.Name)
}
