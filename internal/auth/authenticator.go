package auth

import (
	"context"

	"github.com/mmynk/clevermart/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping the single configured admin for another
// credential source without changing the handler code.
type Authenticator interface {
	// Authenticate verifies the credentials and returns the admin if successful.
	// Returns ErrInvalidCredentials if authentication fails.
	Authenticate(ctx context.Context, username, credential string) (*models.Admin, error)
}
