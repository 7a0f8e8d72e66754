package user

import (
	userRepo "savora/database/repository/user"
	"savora/models"
	"savora/services/notification"
)

// RegisterRequest carries new account details.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

// UpdateProfileRequest carries profile changes; empty fields are left alone.
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type UserService interface {
	// Registration and authentication
	Register(req RegisterRequest) (*models.AuthResponse, error)
	Login(email, password string) (*models.AuthResponse, error)

	// Profile management
	GetByID(userID string) (*models.User, error)
	UpdateProfile(userID string, req UpdateProfileRequest) (*models.User, error)
	ChangePassword(userID, currentPassword, newPassword string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo  userRepo.UserRepository
	Email notification.EmailService
}
