package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/clevermart/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyPassword      = errors.New("admin password must not be empty")
)

// PasswordAuthenticator implements password-based authentication for the
// configured admin account using bcrypt.
type PasswordAuthenticator struct {
	admin models.Admin
}

// NewPasswordAuthenticator hashes password and returns an authenticator
// accepting exactly username/password.
func NewPasswordAuthenticator(username, password string) (*PasswordAuthenticator, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &PasswordAuthenticator{
		admin: models.Admin{
			Username:     strings.TrimSpace(username),
			PasswordHash: string(hashed),
		},
	}, nil
}

// Authenticate verifies the username and password, returning the admin if valid.
// Surrounding whitespace is ignored.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, credential string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	credential = strings.TrimSpace(credential)

	if subtle.ConstantTimeCompare([]byte(username), []byte(a.admin.Username)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	admin := a.admin
	return &admin, nil
}
