package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/clevermart/internal/auth"
	"github.com/mmynk/clevermart/internal/models"
)

// AuthService gates the administrator area.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login authenticates the admin and returns a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.Admin, error) {
	s.logger.Info("Login request", "username", username)

	if username == "" || password == "" {
		return "", nil, auth.ErrInvalidCredentials
	}

	admin, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", "username", username, "error", err)
		return "", nil, auth.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(admin)
	if err != nil {
		s.logger.Error("Failed to generate token", "username", admin.Username, "error", err)
		return "", nil, err
	}

	s.logger.Info("Admin logged in successfully", "username", admin.Username)
	return token, admin, nil
}
