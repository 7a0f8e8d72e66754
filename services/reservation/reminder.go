package reservation

import (
	"time"

	"savora/models"
	"savora/services/tasks"
	"savora/services/voicebot"
	"savora/utils"

	"go.uber.org/zap"
)

// How long before the reserved time the reminder email goes out.
const reminderLead = 2 * time.Hour

// reminderFireTime computes when the pre-visit reminder should fire. Returns
// false when the reservation is unparseable or already inside the lead
// window, in which case no reminder is scheduled.
func reminderFireTime(restaurant *models.Restaurant, date, timeStr string, now time.Time) (time.Time, bool) {
	at, ok := voicebot.ReservationMoment(restaurant, date, timeStr)
	if !ok {
		return time.Time{}, false
	}
	fireAt := at.Add(-reminderLead)
	if !fireAt.After(now) {
		return time.Time{}, false
	}
	return fireAt, true
}

func (s *DefaultReservationService) scheduleReminder(restaurant *models.Restaurant, reservation *models.Reservation) {
	if s.Tasks == nil {
		return
	}
	fireAt, ok := reminderFireTime(restaurant, reservation.Date, reservation.Time, time.Now())
	if !ok {
		return
	}

	task, opts, err := tasks.NewReservationReminderTask(reservation.ID, fireAt)
	if err == nil {
		_, err = s.Tasks.Enqueue(task, opts...)
	}
	if err != nil {
		utils.GetLogger().Warn("Failed to schedule reservation reminder",
			zap.String("reservationId", reservation.ID), zap.Error(err))
	}
}
