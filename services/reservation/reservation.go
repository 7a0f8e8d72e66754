package reservation

import (
	"context"
	"fmt"

	reservationRepo "savora/database/repository/reservation"
	restaurantRepo "savora/database/repository/restaurant"
	"savora/models"
	"savora/services/notification"
	"savora/services/voicebot"
	"savora/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	minGuests = 1
	maxGuests = 20
)

// CreateRequest carries booking details.
type CreateRequest struct {
	RestaurantID    string `json:"restaurant_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	SpecialRequests string `json:"special_requests"`
	BookingMethod   string `json:"-"`
}

type ReservationService interface {
	// Create books a table after validating against operating hours.
	Create(userObj *models.User, req CreateRequest) (*models.Reservation, error)
	// ListForUser retrieves a user's reservations, newest first.
	ListForUser(userID string) ([]models.Reservation, error)
	// Get retrieves a reservation owned by the user.
	Get(id, userID string) (*models.Reservation, error)
	// Cancel marks a reservation cancelled.
	Cancel(id string, userObj *models.User) (*models.Reservation, error)
}

// DefaultReservationService is the production implementation. A nil Tasks
// client disables reminder scheduling.
type DefaultReservationService struct {
	Repo           reservationRepo.ReservationRepository
	RestaurantRepo restaurantRepo.RestaurantRepository
	Email          notification.EmailService
	Tasks          *asynq.Client
}

// Create books a table after validating against operating hours.
func (s *DefaultReservationService) Create(userObj *models.User, req CreateRequest) (*models.Reservation, error) {
	logger := utils.GetLogger()

	if req.Guests < minGuests || req.Guests > maxGuests {
		return nil, fmt.Errorf("guest count must be between %d and %d", minGuests, maxGuests)
	}

	restaurant, err := s.RestaurantRepo.GetByID(req.RestaurantID)
	if err != nil {
		logger.Error("Create: failed to fetch restaurant", zap.Error(err))
		return nil, fmt.Errorf("booking failed, please try again")
	}
	if restaurant == nil || !restaurant.IsActive {
		return nil, fmt.Errorf("restaurant not found")
	}

	if ok, reason := voicebot.ValidateReservationTime(restaurant, req.Date, req.Time); !ok {
		return nil, fmt.Errorf("%s", reason)
	}

	method := req.BookingMethod
	if method == "" {
		method = models.BookingMethodWeb
	}

	reservation := &models.Reservation{
		ID:              uuid.New().String(),
		RestaurantID:    restaurant.ID,
		RestaurantName:  restaurant.Name,
		UserID:          userObj.ID,
		UserEmail:       userObj.Email,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Status:          models.ReservationConfirmed,
		BookingMethod:   method,
	}

	if err := s.Repo.Create(reservation); err != nil {
		logger.Error("Create: failed to persist reservation", zap.Error(err))
		return nil, fmt.Errorf("booking failed, please try again")
	}

	if s.Email != nil {
		booked := *reservation
		go func() {
			if err := s.Email.SendReservationConfirmation(context.Background(), userObj.Email, userObj.FullName, &booked); err != nil {
				logger.Warn("Create: confirmation email failed", zap.Error(err))
			}
		}()
	}

	s.scheduleReminder(restaurant, reservation)

	return reservation, nil
}

// ListForUser retrieves a user's reservations, newest first.
func (s *DefaultReservationService) ListForUser(userID string) ([]models.Reservation, error) {
	return s.Repo.ListByUser(userID)
}

// Get retrieves a reservation owned by the user.
func (s *DefaultReservationService) Get(id, userID string) (*models.Reservation, error) {
	reservation, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reservation == nil || reservation.UserID != userID {
		return nil, nil
	}
	return reservation, nil
}

// Cancel marks a reservation cancelled and notifies the user.
func (s *DefaultReservationService) Cancel(id string, userObj *models.User) (*models.Reservation, error) {
	logger := utils.GetLogger()

	reservation, err := s.Repo.Cancel(id, userObj.ID)
	if err != nil {
		logger.Error("Cancel: failed to cancel reservation", zap.Error(err))
		return nil, fmt.Errorf("cancellation failed, please try again")
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation not found or already cancelled")
	}

	if s.Email != nil {
		cancelled := *reservation
		go func() {
			if err := s.Email.SendCancellationEmail(context.Background(), userObj.Email, userObj.FullName, &cancelled); err != nil {
				logger.Warn("Cancel: cancellation email failed", zap.Error(err))
			}
		}()
	}

	return reservation, nil
}
