package voicebot

import (
	"testing"

	"savora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableTimeSlots(t *testing.T) {
	r := testRestaurant("17:00", "23:00")

	slots := AvailableTimeSlots(r, "2026-03-02")
	require.NotEmpty(t, slots)
	assert.Equal(t, "17:00", slots[0])
	assert.Equal(t, "22:00", slots[len(slots)-1])
	assert.Len(t, slots, 11) // 17:00..22:00 on 30-minute boundaries
}

func TestAvailableTimeSlotsAscending(t *testing.T) {
	r := testRestaurant("11:00", "22:00")
	slots := AvailableTimeSlots(r, "2026-03-02")
	for i := 1; i < len(slots); i++ {
		prev, err := parseClockTime(slots[i-1])
		require.NoError(t, err)
		cur, err := parseClockTime(slots[i])
		require.NoError(t, err)
		assert.Equal(t, slotInterval, cur-prev)
	}
}

func TestAvailableTimeSlotsClosedDay(t *testing.T) {
	r := testRestaurant("17:00", "23:00")
	r.OperatingHours["monday"] = models.DayHours{IsClosed: true}

	assert.Empty(t, AvailableTimeSlots(r, "2026-03-02"))
	assert.Empty(t, AvailableTimeSlots(r, "not-a-date"))

	delete(r.OperatingHours, "tuesday")
	assert.Empty(t, AvailableTimeSlots(r, "2026-03-03"))
}

func TestAvailableTimeSlotsMidnightClose(t *testing.T) {
	r := testRestaurant("17:00", "00:00")

	slots := AvailableTimeSlots(r, "2026-03-02")
	require.NotEmpty(t, slots)
	assert.Equal(t, "17:00", slots[0])
	assert.Equal(t, "23:00", slots[len(slots)-1])
	assert.Len(t, slots, 13)
}

func TestAvailableTimeSlotsOvernightClose(t *testing.T) {
	r := testRestaurant("18:00", "02:00")

	slots := AvailableTimeSlots(r, "2026-03-02")
	require.NotEmpty(t, slots)
	assert.Equal(t, "18:00", slots[0])
	// The window extends past midnight; the last slot is one hour before
	// the 02:00 close.
	assert.Equal(t, "01:00", slots[len(slots)-1])
}
