package cron

import (
	"context"
	"encoding/json"
	"time"

	"savora/config"
	reservationRepo "savora/database/repository/reservation"
	userRepo "savora/database/repository/user"
	"savora/models"
	"savora/services/notification"
	"savora/services/tasks"
	"savora/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the reminder queue consumer in the background. It
// shares the Redis instance with the caches but lives in its own database.
func InitReminderWorker(email notification.EmailService, reservations reservationRepo.ReservationRepository, users userRepo.UserRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationReminder, handleReservationReminder(email, reservations, users))

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker")

		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			if attempt == maxAttempts {
				logger.Error("Reminder worker failed to start, giving up", zap.Error(err))
				return
			}
			logger.Warn("Reminder worker failed to start, retrying",
				zap.Int("attempt", attempt), zap.Error(err))
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

func handleReservationReminder(email notification.EmailService, reservations reservationRepo.ReservationRepository, users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.ReservationReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Reminder task has invalid payload", zap.Error(err))
			return err
		}

		reservation, err := reservations.GetByID(p.ReservationID)
		if err != nil {
			return err
		}
		if reservation == nil || reservation.Status != models.ReservationConfirmed {
			// Cancelled or removed since scheduling; nothing to send.
			logger.Info("Skipping reminder for inactive reservation",
				zap.String("reservationId", p.ReservationID))
			return nil
		}

		fullName := ""
		if usr, err := users.GetByID(reservation.UserID); err == nil && usr != nil {
			fullName = usr.FullName
		}

		if err := email.SendReservationReminder(ctx, reservation.UserEmail, fullName, reservation); err != nil {
			logger.Error("Reminder email failed",
				zap.String("reservationId", reservation.ID), zap.Error(err))
			return err
		}
		return nil
	}
}
