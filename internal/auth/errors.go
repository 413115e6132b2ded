package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	// Both causes share one message so usernames cannot be probed.
	ErrInvalidCredentials = errors.New("Invalid username or password") //nolint:staticcheck // shown to the user as is

	// ErrUserInactive is returned when the password is correct but the account is disabled.
	ErrUserInactive = errors.New("User is not active") //nolint:staticcheck // shown to the user as is

	// ErrUsernameTaken is returned when creating a user with an existing username.
	ErrUsernameTaken = errors.New("user with username already exists")

	// ErrUserNotFound is returned when a user cannot be found in the database.
	ErrUserNotFound = errors.New("user not found")
)
