package models

// Admin is the single administrator account allowed into inventory
// management and reports. Guests never authenticate.
type Admin struct {
	// Username is the login name (e.g., "admin").
	Username string

	// PasswordHash is the bcrypt hash of the admin password.
	// The plain password is never kept after start-up.
	PasswordHash string
}
