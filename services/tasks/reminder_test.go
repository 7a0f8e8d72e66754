package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservationReminderTask(t *testing.T) {
	task, opts, err := NewReservationReminderTask("res-42", time.Now().Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, TypeReservationReminder, task.Type())
	assert.Len(t, opts, 1)

	var p ReservationReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "res-42", p.ReservationID)
}
