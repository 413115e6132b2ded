// Package login provides HTTP handlers for local authentication.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be parsed.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInternalServerError is shown for unexpected failures during the login
	// process.
	ErrInternalServerError = errors.New("Internal server error") //nolint:staticcheck // rendered as is
)
