package service

import (
	"crypto/subtle"
	"fmt"

	"wortschatz/internal/repository"

	"go.uber.org/zap"
)

// AuthService is the shared-password gate in front of the bot
type AuthService struct {
	userRepo    repository.UserRepository
	botPassword string
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, botPassword string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		botPassword: botPassword,
		logger:      logger,
	}
}

// Access registers the user on first contact and reports whether the gate is open for them
func (s *AuthService) Access(userID int64) (bool, error) {
	authorized, err := s.userRepo.Touch(userID)
	if err != nil {
		return false, fmt.Errorf("check access: %w", err)
	}
	return authorized, nil
}

// Unlock opens the gate when password matches. A wrong password is not an error.
func (s *AuthService) Unlock(userID int64, password string) (bool, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.botPassword)) != 1 {
		s.logger.Warn("Wrong password", zap.Int64("user_id", userID))
		return false, nil
	}
	if err := s.userRepo.AuthorizeUser(userID); err != nil {
		return false, fmt.Errorf("unlock: %w", err)
	}
	s.logger.Info("User authorized", zap.Int64("user_id", userID))
	return true, nil
}
