package voicebot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"savora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	reply string
	err   error
}

func (f *fakeModel) GenerateContent(_ context.Context, _ string) (string, error) {
	return f.reply, f.err
}

func newTestResolver(model ModelClient) *Resolver {
	rs := NewResolver(model)
	rs.now = func() time.Time { return mondayNoon }
	return rs
}

func resolverRestaurants() []models.Restaurant {
	hours := weeklyHours("17:00", "23:00")
	return []models.Restaurant{
		{ID: "1", Name: "The Golden Spoon", Timezone: "UTC", OperatingHours: hours},
		{ID: "2", Name: "Hotel Nagasai", Timezone: "UTC", OperatingHours: hours},
		{ID: "3", Name: "Pizza World", Timezone: "UTC", OperatingHours: hours},
		{ID: "4", Name: "Sakura Sushi", Timezone: "UTC", OperatingHours: hours},
	}
}

func modelJSON(name string, found bool, date, clock, action string) string {
	return fmt.Sprintf(`{
		"intent": "reservation",
		"confidence": 0.9,
		"restaurant_match": {"found": %t, "name": %q, "confidence": 0.9},
		"reservation_details": {"guests": 2, "date": %q, "time": %q},
		"response_message": "Booking details understood.",
		"action_required": %q
	}`, found, name, date, clock, action)
}

func TestResolveFallbackWhenDisabled(t *testing.T) {
	rs := newTestResolver(nil)

	intent := rs.Resolve(context.Background(), "book a table for 4 tonight at golden spoon", resolverRestaurants(), nil)
	require.NotNil(t, intent)
	assert.Equal(t, models.IntentReservation, intent.Intent)
	require.True(t, intent.RestaurantMatch.Found)
	assert.Equal(t, "The Golden Spoon", intent.RestaurantMatch.Name)
	assert.Equal(t, 4, intent.ReservationDetails.Guests)
	assert.Equal(t, "2026-03-02", intent.ReservationDetails.Date)
	// No explicit time yet, so the booking is held for clarification.
	assert.Equal(t, models.ActionAskClarify, intent.ActionRequired)
}

func TestResolveFallbackOnModelError(t *testing.T) {
	rs := newTestResolver(&fakeModel{err: errors.New("quota exceeded")})

	intent := rs.Resolve(context.Background(), "reserve a table at pizza world", resolverRestaurants(), nil)
	require.NotNil(t, intent)
	assert.Equal(t, models.IntentReservation, intent.Intent)
	require.True(t, intent.RestaurantMatch.Found)
	assert.Equal(t, "Pizza World", intent.RestaurantMatch.Name)
}

func TestResolveTroubleOnUnusableReply(t *testing.T) {
	rs := newTestResolver(&fakeModel{reply: "I cannot help with that."})

	intent := rs.Resolve(context.Background(), "book a table at pizza world", resolverRestaurants(), nil)
	require.NotNil(t, intent)
	assert.Equal(t, models.ActionAskClarify, intent.ActionRequired)
	assert.Equal(t, 2, intent.ReservationDetails.Guests)
	assert.Contains(t, intent.ResponseMessage, "trouble understanding")
}

func TestResolveEndToEnd(t *testing.T) {
	reply := modelJSON("Hotel Nagasai", true, "2026-03-03", "", models.ActionBookTable)
	rs := newTestResolver(&fakeModel{reply: reply})

	intent := rs.Resolve(context.Background(), "Reserve nagasai for two tomorrow", resolverRestaurants(), nil)
	require.NotNil(t, intent)
	require.True(t, intent.RestaurantMatch.Found)
	assert.Equal(t, "Hotel Nagasai", intent.RestaurantMatch.Name)
	assert.Equal(t, "2", intent.RestaurantMatch.RestaurantID)
	assert.Equal(t, 2, intent.ReservationDetails.Guests)
	// Found but no time given: ask instead of booking.
	assert.Equal(t, models.ActionAskClarify, intent.ActionRequired)
	assert.Contains(t, intent.ResponseMessage, "What time")
}

func TestResolveBookingGatePasses(t *testing.T) {
	reply := modelJSON("Hotel Nagasai", true, "2026-03-02", "19:00", models.ActionBookTable)
	rs := newTestResolver(&fakeModel{reply: reply})

	intent := rs.Resolve(context.Background(), "book nagasai at 7 pm", resolverRestaurants(), nil)
	require.NotNil(t, intent)
	assert.Equal(t, models.ActionBookTable, intent.ActionRequired)
	assert.True(t, intent.TimeValidation.IsValid)
}

func TestResolveBookingGateRejectsOutsideHours(t *testing.T) {
	reply := modelJSON("Hotel Nagasai", true, "2026-03-02", "23:30", models.ActionBookTable)
	rs := newTestResolver(&fakeModel{reply: reply})

	intent := rs.Resolve(context.Background(), "book nagasai at 11:30 pm", resolverRestaurants(), nil)
	require.NotNil(t, intent)
	assert.Equal(t, models.ActionAskClarify, intent.ActionRequired)
	assert.False(t, intent.TimeValidation.IsValid)
	assert.Contains(t, intent.ResponseMessage, "bookings are not available at 23:30")
	// A rejected time never switches the restaurant.
	assert.Equal(t, "Hotel Nagasai", intent.RestaurantMatch.Name)
}

func TestResolveManualOverrideOnHallucination(t *testing.T) {
	// The model claims a restaurant with no textual basis in the command;
	// the command itself names a different one unambiguously.
	reply := modelJSON("Sakura Sushi", true, "2026-03-02", "19:00", models.ActionBookTable)
	rs := newTestResolver(&fakeModel{reply: reply})

	intent := rs.Resolve(context.Background(), "book a table at pizza world for 4 people", resolverRestaurants(), nil)
	require.NotNil(t, intent)
	require.True(t, intent.RestaurantMatch.Found)
	assert.Equal(t, "Pizza World", intent.RestaurantMatch.Name)
	assert.Contains(t, intent.ResponseMessage, "from your command")
}

func TestResolveHallucinationDowngrade(t *testing.T) {
	reply := modelJSON("Sakura Sushi", true, "2026-03-02", "19:00", models.ActionBookTable)
	rs := newTestResolver(&fakeModel{reply: reply})

	intent := rs.Resolve(context.Background(), "book a table somewhere nice", resolverRestaurants(), nil)
	require.NotNil(t, intent)
	assert.Equal(t, models.ActionAskClarify, intent.ActionRequired)
	assert.LessOrEqual(t, intent.RestaurantMatch.Confidence, 0.5)
	assert.Contains(t, intent.ResponseMessage, "not sure")
}

func TestResolveManualRescueWhenModelFindsNothing(t *testing.T) {
	reply := modelJSON("", false, "", "", models.ActionAskClarify)
	rs := newTestResolver(&fakeModel{reply: reply})

	intent := rs.Resolve(context.Background(), "reserve a table at pizza world tonight", resolverRestaurants(), nil)
	require.NotNil(t, intent)
	require.True(t, intent.RestaurantMatch.Found)
	assert.Equal(t, "Pizza World", intent.RestaurantMatch.Name)
}

func TestConversationReply(t *testing.T) {
	rs := newTestResolver(nil)
	assert.Contains(t, rs.ConversationReply(context.Background(), "hello"), "restaurant reservations")

	rs = newTestResolver(&fakeModel{reply: "  Hello! How can I help?  "})
	assert.Equal(t, "Hello! How can I help?", rs.ConversationReply(context.Background(), "hello"))

	rs = newTestResolver(&fakeModel{err: errors.New("down")})
	assert.Contains(t, rs.ConversationReply(context.Background(), "hello"), "assist you today")
}
