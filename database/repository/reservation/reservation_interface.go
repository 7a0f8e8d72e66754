package reservationRepo

import "savora/models"

// ReservationRepository defines methods for reservation data access.
type ReservationRepository interface {
	// Create inserts a new reservation record.
	Create(reservation *models.Reservation) error
	// GetByID retrieves a reservation by its unique ID, nil when absent.
	GetByID(id string) (*models.Reservation, error)
	// ListByUser retrieves a user's reservations, newest first.
	ListByUser(userID string) ([]models.Reservation, error)
	// Cancel marks a reservation cancelled. It only touches reservations
	// owned by the given user that are not already cancelled.
	Cancel(id, userID string) (*models.Reservation, error)
}
