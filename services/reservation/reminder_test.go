package reservation

import (
	"testing"
	"time"

	"savora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderFireTime(t *testing.T) {
	r := &models.Restaurant{Timezone: "UTC"}
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	fireAt, ok := reminderFireTime(r, "2026-03-02", "19:00", now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), fireAt.UTC())

	// 12-hour clock spellings schedule the same moment.
	fireAt, ok = reminderFireTime(r, "2026-03-02", "7:00 PM", now)
	require.True(t, ok)
	assert.Equal(t, 17, fireAt.UTC().Hour())
}

func TestReminderFireTimeSkipsNearAndPastBookings(t *testing.T) {
	r := &models.Restaurant{Timezone: "UTC"}
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	// Reserved time already inside the lead window.
	_, ok := reminderFireTime(r, "2026-03-02", "13:00", now)
	assert.False(t, ok)

	// Unparseable inputs never schedule anything.
	_, ok = reminderFireTime(r, "2026-03-02", "evening", now)
	assert.False(t, ok)
	_, ok = reminderFireTime(r, "march 2nd", "19:00", now)
	assert.False(t, ok)
}
