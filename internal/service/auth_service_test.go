package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/clevermart/internal/auth"
)

func TestAuthService_Login(t *testing.T) {
	authenticator, err := auth.NewPasswordAuthenticator("admin", "1234")
	require.NoError(t, err)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(authenticator, jwtManager, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	token, admin, err := svc.Login(ctx, "admin", "1234")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	claims, err := jwtManager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, _, err = svc.Login(ctx, "admin", "nope")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
