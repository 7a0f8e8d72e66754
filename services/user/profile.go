package user

import (
	"fmt"
	"strings"

	"savora/models"
	"savora/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetByID retrieves a user by ID.
func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// UpdateProfile applies non-empty fields from the request.
func (s *DefaultUserService) UpdateProfile(userID string, req UpdateProfileRequest) (*models.User, error) {
	logger := utils.GetLogger()

	userObj, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if name := strings.TrimSpace(req.FullName); name != "" {
		userObj.FullName = name
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		digits := phoneDigits(phone)
		if len(digits) >= minPhoneDigits {
			byPhone, err := s.Repo.GetByPhoneDigits(digits)
			if err != nil {
				logger.Error("UpdateProfile: failed to check for existing phone", zap.Error(err))
				return nil, fmt.Errorf("update failed, please try again")
			}
			if byPhone != nil && byPhone.ID != userID {
				return nil, fmt.Errorf("a user with this phone number already exists")
			}
		}
		userObj.Phone = phone
		userObj.PhoneDigits = digits
	}

	if err := s.Repo.Update(userObj); err != nil {
		logger.Error("UpdateProfile: failed to update user", zap.Error(err))
		return nil, fmt.Errorf("update failed, please try again")
	}
	return userObj, nil
}

// ChangePassword verifies the current password before setting a new one.
func (s *DefaultUserService) ChangePassword(userID, currentPassword, newPassword string) error {
	userObj, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userObj.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ChangePassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("password change failed, please try again")
	}

	userObj.PasswordHash = string(hashed)
	if err := s.Repo.Update(userObj); err != nil {
		utils.GetLogger().Error("ChangePassword: failed to update user", zap.Error(err))
		return fmt.Errorf("password change failed, please try again")
	}
	return nil
}
