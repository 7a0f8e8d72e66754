package user

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"savora/models"
	"savora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenDuration     = 24 * time.Hour
	minPasswordLength = 6
	minPhoneDigits    = 10
)

// phoneDigits strips everything but digits so "+1 (555) 010-2030" and
// "15550102030" compare equal.
func phoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Register validates the request, checks for duplicate email and phone,
// persists the user and returns a signed token.
func (s *DefaultUserService) Register(req RegisterRequest) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("email, password and full name are required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	digits := phoneDigits(req.Phone)
	if len(digits) >= minPhoneDigits {
		byPhone, err := s.Repo.GetByPhoneDigits(digits)
		if err != nil {
			logger.Error("Register: failed to check for existing phone", zap.Error(err))
			return nil, fmt.Errorf("registration failed, please try again")
		}
		if byPhone != nil {
			return nil, fmt.Errorf("a user with this phone number already exists")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        strings.TrimSpace(req.Phone),
		PhoneDigits:  digits,
		IsActive:     true,
	}

	if err := s.Repo.Create(&userObj); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	if s.Email != nil {
		go func() {
			if err := s.Email.SendWelcomeEmail(context.Background(), userObj.Email, userObj.FullName); err != nil {
				logger.Warn("Register: welcome email failed", zap.Error(err))
			}
		}()
	}

	return s.issueToken(&userObj)
}

// Login verifies credentials and returns a signed token.
func (s *DefaultUserService) Login(email, password string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	email = strings.ToLower(strings.TrimSpace(email))
	userObj, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	if userObj == nil || !userObj.IsActive {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userObj.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(userObj)
}

// issueToken signs a JWT and caches its hash so the auth middleware can
// verify tokens without a database round trip.
func (s *DefaultUserService) issueToken(userObj *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(userObj.ID, userObj.Email, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, userObj.ID, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *userObj,
	}, nil
}
