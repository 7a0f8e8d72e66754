package userRepo

import "savora/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email, nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByPhoneDigits retrieves a user whose stored phone reduces to the
	// given digit string, nil when absent.
	GetByPhoneDigits(digits string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
}
