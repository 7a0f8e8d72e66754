package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeReservationReminder = "reservation:reminder"

// ReservationReminderPayload identifies the booking to remind about. The
// worker re-reads the reservation at fire time, so a booking cancelled after
// scheduling simply produces no email.
type ReservationReminderPayload struct {
	ReservationID string `json:"reservation_id"`
}

func NewReservationReminderTask(reservationID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReservationReminderPayload{ReservationID: reservationID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
