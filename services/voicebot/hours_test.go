package voicebot

import (
	"testing"
	"time"

	"savora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklyHours(open, close string) models.OperatingHours {
	hours := make(models.OperatingHours, 7)
	for _, day := range weekdays {
		hours[day] = models.DayHours{Open: open, Close: close}
	}
	return hours
}

func testRestaurant(open, close string) *models.Restaurant {
	return &models.Restaurant{
		ID:             "r1",
		Name:           "The Golden Spoon",
		Timezone:       "UTC",
		OperatingHours: weeklyHours(open, close),
	}
}

// A fixed Monday noon, so same-day evening reservations are in the future.
var mondayNoon = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"17:00", 17 * 60},
		{"00:00", 0},
		{"7:30 PM", 19*60 + 30},
		{"07:30 pm", 19*60 + 30},
		{"12:00 AM", 0},
		{"12:15 PM", 12*60 + 15},
	}
	for _, c := range cases {
		got, err := parseClockTime(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}

	for _, bad := range []string{"", "25:00", "noon", "7 oclock"} {
		_, err := parseClockTime(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestValidateReservationTimeLastBookingCutoff(t *testing.T) {
	r := testRestaurant("17:00", "23:00")

	ok, reason := validateReservationTimeAt(r, "2026-03-02", "22:00", mondayNoon)
	assert.True(t, ok, "22:00 should be accepted: %s", reason)

	ok, reason = validateReservationTimeAt(r, "2026-03-02", "22:01", mondayNoon)
	assert.False(t, ok)
	assert.Contains(t, reason, "Last reservation is at 22:00")
}

func TestValidateReservationTimeBeforeOpening(t *testing.T) {
	r := testRestaurant("17:00", "23:00")
	ok, reason := validateReservationTimeAt(r, "2026-03-03", "12:30", mondayNoon)
	assert.False(t, ok)
	assert.Contains(t, reason, "opens at 17:00")
}

func TestValidateReservationTimeClosedDay(t *testing.T) {
	r := testRestaurant("17:00", "23:00")
	hours := r.OperatingHours
	hours["monday"] = models.DayHours{IsClosed: true}

	ok, reason := validateReservationTimeAt(r, "2026-03-02", "18:00", mondayNoon)
	assert.False(t, ok)
	assert.Equal(t, "Restaurant is closed on Mondays", reason)

	delete(hours, "tuesday")
	ok, reason = validateReservationTimeAt(r, "2026-03-03", "18:00", mondayNoon)
	assert.False(t, ok)
	assert.Equal(t, "Operating hours not available for Tuesday", reason)
}

func TestValidateReservationTimeRejectsPast(t *testing.T) {
	r := testRestaurant("09:00", "23:00")

	// 10:00 is within hours but before the fixed noon clock.
	ok, reason := validateReservationTimeAt(r, "2026-03-02", "10:00", mondayNoon)
	assert.False(t, ok)
	assert.Contains(t, reason, "already passed")

	// Previous day entirely.
	ok, _ = validateReservationTimeAt(r, "2026-03-01", "20:00", mondayNoon)
	assert.False(t, ok)
}

func TestValidateReservationTimeTwelveHourInput(t *testing.T) {
	r := testRestaurant("17:00", "23:00")
	ok, reason := validateReservationTimeAt(r, "2026-03-02", "7:30 PM", mondayNoon)
	assert.True(t, ok, reason)

	ok, reason = validateReservationTimeAt(r, "2026-03-02", "sevenish", mondayNoon)
	assert.False(t, ok)
	assert.Contains(t, reason, "Invalid time format")
}

func TestValidateReservationTimeMidnightClose(t *testing.T) {
	r := testRestaurant("17:00", "00:00")

	// Cutoff is 23:00, one hour before the midnight close.
	ok, reason := validateReservationTimeAt(r, "2026-03-02", "23:00", mondayNoon)
	assert.True(t, ok, reason)

	ok, reason = validateReservationTimeAt(r, "2026-03-02", "23:30", mondayNoon)
	assert.False(t, ok)
	assert.Contains(t, reason, "Last reservation is at 23:00")
}

func TestIsRestaurantOpenNormalHours(t *testing.T) {
	hours := weeklyHours("17:00", "23:00")

	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
	}

	status := isRestaurantOpenAt(hours, "UTC", at(18, 0))
	assert.True(t, status.IsOpen)
	assert.Equal(t, "open", status.Status)
	assert.Equal(t, "Closes at 23:00", status.NextChange)

	status = isRestaurantOpenAt(hours, "UTC", at(12, 0))
	assert.False(t, status.IsOpen)
	assert.Equal(t, "Opens at 17:00", status.NextChange)

	status = isRestaurantOpenAt(hours, "UTC", at(23, 30))
	assert.False(t, status.IsOpen)
	assert.Equal(t, "Opens Tuesday at 17:00", status.NextChange)
}

func TestIsRestaurantOpenOvernightClose(t *testing.T) {
	hours := weeklyHours("17:00", "00:00")

	late := time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)
	status := isRestaurantOpenAt(hours, "UTC", late)
	assert.True(t, status.IsOpen, "23:30 should be open with a midnight close")

	afterMidnight := time.Date(2026, 3, 2, 0, 30, 0, 0, time.UTC)
	status = isRestaurantOpenAt(hours, "UTC", afterMidnight)
	assert.True(t, status.IsOpen, "00:30 should be open with a midnight close")

	wrapped := weeklyHours("18:00", "02:00")
	status = isRestaurantOpenAt(wrapped, "UTC", afterMidnight)
	assert.True(t, status.IsOpen, "00:30 should be open when closing at 02:00")

	status = isRestaurantOpenAt(wrapped, "UTC", time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	assert.False(t, status.IsOpen)
}

func TestIsRestaurantOpenClosedToday(t *testing.T) {
	hours := weeklyHours("17:00", "23:00")
	hours["monday"] = models.DayHours{IsClosed: true}

	status := isRestaurantOpenAt(hours, "UTC", mondayNoon)
	assert.False(t, status.IsOpen)
	assert.Equal(t, "closed_today", status.Status)
	assert.Equal(t, "Opens Tuesday at 17:00", status.NextChange)
}

func TestFormatOperatingHours(t *testing.T) {
	hours := models.OperatingHours{
		"monday":  {IsClosed: true},
		"tuesday": {Open: "17:00", Close: "23:00"},
		"friday":  {Open: "17:00", Close: "00:00"},
	}

	formatted := FormatOperatingHours(hours)
	assert.Equal(t, "Closed", formatted["monday"].Display)
	assert.True(t, formatted["monday"].IsClosed)
	assert.Equal(t, "05:00 PM - 11:00 PM", formatted["tuesday"].Display)
	assert.Equal(t, "05:00 PM - 12:00 AM (next day)", formatted["friday"].Display)
	// Days absent from the schedule render as closed.
	assert.Equal(t, "Closed", formatted["sunday"].Display)
}
