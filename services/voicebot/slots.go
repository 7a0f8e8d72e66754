package voicebot

import (
	"strings"
	"time"

	"savora/models"
)

const slotInterval = 30 // minutes

// AvailableTimeSlots lists bookable times for the given date as "HH:MM"
// strings on 30-minute boundaries, from opening through one hour before
// closing inclusive. Closed or unknown days yield an empty list.
func AvailableTimeSlots(r *models.Restaurant, reservationDate string) []string {
	dateObj, err := time.Parse(dateLayout, reservationDate)
	if err != nil {
		return nil
	}
	dayName := strings.ToLower(dateObj.Weekday().String())

	dayHours, ok := r.OperatingHours[dayName]
	if !ok || dayHours.IsClosed {
		return nil
	}

	openMin, err := parseClockTime(dayHours.Open)
	if err != nil {
		return nil
	}
	closeMin, err := parseClockTime(dayHours.Close)
	if err != nil {
		return nil
	}

	// Same cutoff as the validator: one hour before closing, clock
	// arithmetic. A close past midnight extends the window across the
	// boundary rather than producing a negative range.
	lastMin := ((closeMin - 60) + 1440) % 1440
	if closeMin <= openMin && lastMin < openMin {
		lastMin += 1440
	}

	var slots []string
	for m := openMin; m <= lastMin; m += slotInterval {
		slots = append(slots, formatMinutes(m))
	}
	return slots
}
