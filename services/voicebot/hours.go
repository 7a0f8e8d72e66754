package voicebot

import (
	"fmt"
	"strings"
	"time"

	"savora/config"
	"savora/models"
)

const dateLayout = "2006-01-02"

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// parseClockTime accepts 24-hour "HH:MM" or 12-hour "HH:MM AM/PM" and returns
// minutes since midnight.
func parseClockTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Hour()*60 + t.Minute(), nil
	}
	if t, err := time.Parse("3:04 PM", strings.ToUpper(s)); err == nil {
		return t.Hour()*60 + t.Minute(), nil
	}
	return 0, fmt.Errorf("unparseable clock time %q", s)
}

func formatMinutes(m int) string {
	m = ((m % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Today returns the current date in reservation date format.
func Today() string {
	return time.Now().Format(dateLayout)
}

// restaurantLocation resolves the restaurant's timezone, falling back to the
// configured default and finally to the process-local zone.
func restaurantLocation(tz string) *time.Location {
	if tz == "" {
		tz = config.AppConfig.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}

// ReservationMoment resolves a reservation's date and clock time to an
// instant in the restaurant's timezone.
func ReservationMoment(r *models.Restaurant, date, timeStr string) (time.Time, bool) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	mins, err := parseClockTime(timeStr)
	if err != nil {
		return time.Time{}, false
	}
	loc := restaurantLocation(r.Timezone)
	return time.Date(day.Year(), day.Month(), day.Day(), mins/60, mins%60, 0, 0, loc), true
}

// ValidateReservationTime checks that the requested date and time fall within
// the restaurant's operating hours and are not in the past. It returns false
// with a human-readable reason on failure.
func ValidateReservationTime(r *models.Restaurant, reservationDate, reservationTime string) (bool, string) {
	return validateReservationTimeAt(r, reservationDate, reservationTime, time.Now())
}

func validateReservationTimeAt(r *models.Restaurant, reservationDate, reservationTime string, now time.Time) (bool, string) {
	dateObj, err := time.Parse(dateLayout, reservationDate)
	if err != nil {
		return false, "Invalid date format. Please use YYYY-MM-DD format"
	}
	dayName := strings.ToLower(dateObj.Weekday().String())

	dayHours, ok := r.OperatingHours[dayName]
	if !ok {
		return false, fmt.Sprintf("Operating hours not available for %s", titleCase(dayName))
	}
	if dayHours.IsClosed {
		return false, fmt.Sprintf("Restaurant is closed on %ss", titleCase(dayName))
	}

	requested, err := parseClockTime(reservationTime)
	if err != nil {
		return false, "Invalid time format. Please use HH:MM or HH:MM AM/PM format"
	}

	// Reject past times relative to the restaurant's timezone.
	loc := restaurantLocation(r.Timezone)
	reservationAt := time.Date(dateObj.Year(), dateObj.Month(), dateObj.Day(), requested/60, requested%60, 0, 0, loc)
	if !reservationAt.After(now.In(loc)) {
		return false, "Reservation time has already passed. Please select a future time."
	}

	openMin, err := parseClockTime(dayHours.Open)
	if err != nil {
		return false, fmt.Sprintf("Operating hours not available for %s", titleCase(dayName))
	}
	closeMin, err := parseClockTime(dayHours.Close)
	if err != nil {
		return false, fmt.Sprintf("Operating hours not available for %s", titleCase(dayName))
	}

	if requested < openMin {
		return false, fmt.Sprintf("Restaurant opens at %s. Please select a time after opening.", dayHours.Open)
	}

	// Last reservation is one hour before closing, computed with same-day
	// clock arithmetic (close at 00:00 yields a 23:00 cutoff).
	lastMin := ((closeMin - 60) + 1440) % 1440
	if requested > lastMin {
		return false, fmt.Sprintf("Last reservation is at %s (1 hour before closing at %s)", formatMinutes(lastMin), dayHours.Close)
	}

	return true, ""
}

// IsRestaurantOpen reports whether the restaurant is open right now in the
// given timezone, including the overnight-closing case where the open
// interval wraps past midnight.
func IsRestaurantOpen(hours models.OperatingHours, timezone string) models.OpenStatus {
	return isRestaurantOpenAt(hours, timezone, time.Now())
}

func isRestaurantOpenAt(hours models.OperatingHours, timezone string, now time.Time) models.OpenStatus {
	loc := restaurantLocation(timezone)
	now = now.In(loc)
	currentDay := strings.ToLower(now.Weekday().String())
	currentMin := now.Hour()*60 + now.Minute()
	currentClock := formatMinutes(currentMin)

	todayHours, ok := hours[currentDay]
	if !ok || todayHours.IsClosed {
		return models.OpenStatus{
			IsOpen:      false,
			Status:      "closed_today",
			CurrentDay:  currentDay,
			CurrentTime: currentClock,
			NextChange:  findNextOpening(hours, now),
		}
	}

	openMin, err := parseClockTime(todayHours.Open)
	if err != nil {
		return models.OpenStatus{Status: "hours_not_available", CurrentDay: currentDay, CurrentTime: currentClock}
	}
	closeStr := todayHours.Close
	if closeStr == "24:00" {
		closeStr = "23:59"
	}
	closeMin, err := parseClockTime(closeStr)
	if err != nil {
		return models.OpenStatus{Status: "hours_not_available", CurrentDay: currentDay, CurrentTime: currentClock}
	}

	var isOpen bool
	if todayHours.Close == "00:00" || closeMin < openMin {
		// Restaurant closes after midnight.
		if todayHours.Close == "00:00" {
			closeMin = 23*60 + 59
		}
		isOpen = currentMin >= openMin || currentMin <= closeMin
	} else {
		isOpen = currentMin >= openMin && currentMin <= closeMin
	}

	status := "closed"
	nextChange := ""
	if isOpen {
		status = "open"
		nextChange = fmt.Sprintf("Closes at %s", todayHours.Close)
	} else if currentMin < openMin {
		nextChange = fmt.Sprintf("Opens at %s", todayHours.Open)
	} else {
		nextChange = findNextOpening(hours, now)
	}

	th := todayHours
	return models.OpenStatus{
		IsOpen:      isOpen,
		Status:      status,
		CurrentDay:  currentDay,
		CurrentTime: currentClock,
		TodayHours:  &th,
		NextChange:  nextChange,
	}
}

// findNextOpening scans forward up to 7 days for the next non-closed day.
func findNextOpening(hours models.OperatingHours, now time.Time) string {
	for i := 1; i <= 7; i++ {
		next := now.AddDate(0, 0, i)
		nextDay := strings.ToLower(next.Weekday().String())
		if nextHours, ok := hours[nextDay]; ok && !nextHours.IsClosed {
			return fmt.Sprintf("Opens %s at %s", titleCase(nextDay), nextHours.Open)
		}
	}
	return "Opening hours not available"
}

// FormatOperatingHours renders each weekday's hours in 12-hour display form.
func FormatOperatingHours(hours models.OperatingHours) map[string]models.DayHoursDisplay {
	formatted := make(map[string]models.DayHoursDisplay, len(weekdays))
	for _, day := range weekdays {
		dh, ok := hours[day]
		if !ok || dh.IsClosed {
			formatted[day] = models.DayHoursDisplay{Display: "Closed", IsClosed: true}
			continue
		}
		openMin, errOpen := parseClockTime(dh.Open)
		closeDisplay := ""
		switch dh.Close {
		case "00:00", "24:00":
			closeDisplay = "12:00 AM (next day)"
		default:
			if closeMin, err := parseClockTime(dh.Close); err == nil {
				closeDisplay = minutesTo12Hour(closeMin)
			}
		}
		if errOpen != nil || closeDisplay == "" {
			formatted[day] = models.DayHoursDisplay{
				Display:  fmt.Sprintf("%s - %s", dh.Open, dh.Close),
				IsClosed: false,
				Open:     dh.Open,
				Close:    dh.Close,
			}
			continue
		}
		formatted[day] = models.DayHoursDisplay{
			Display:  fmt.Sprintf("%s - %s", minutesTo12Hour(openMin), closeDisplay),
			IsClosed: false,
			Open:     dh.Open,
			Close:    dh.Close,
		}
	}
	return formatted
}

func minutesTo12Hour(m int) string {
	m = ((m % 1440) + 1440) % 1440
	h, min := m/60, m%60
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, min, ampm)
}

// WithStatus decorates a restaurant with its live open status and formatted
// hours for the discovery endpoints.
func WithStatus(r models.Restaurant) models.RestaurantWithStatus {
	out := models.RestaurantWithStatus{Restaurant: r}
	if len(r.OperatingHours) == 0 {
		out.Status = models.OpenStatus{Status: "hours_not_available"}
		out.FormattedHours = map[string]models.DayHoursDisplay{}
		return out
	}
	out.Status = IsRestaurantOpen(r.OperatingHours, r.Timezone)
	out.FormattedHours = FormatOperatingHours(r.OperatingHours)
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
