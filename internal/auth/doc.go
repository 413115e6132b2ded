// Package auth provides authentication for the website.
//
// Accounts live in the local database, passwords are stored as Argon2id hashes.
//
// # Login
//
// LocalProvider.Attempt runs a login through the states
// Anonymous -> Authenticating -> Authenticated | Rejected.
// A rejected attempt carries ErrInvalidCredentials or ErrUserInactive. The password is
// checked before the active flag, so only someone knowing the password learns that an
// account is disabled.
//
// # Registration
//
// LocalProvider.Register validates the registration form, rejects taken usernames and
// stores the new, active, non-staff account.
//
// # Middleware
//
// RequireStaff protects the admin area. It expects the current user in fiber locals,
// see the web/middleware/auth package.
//
// Example usage:
//
//	provider := auth.NewLocalProvider(db, validation.New())
//
//	attempt := provider.Attempt(username, password)
//	if attempt.State != auth.Authenticated {
//	    return attempt.Err
//	}
//
//	app.Get("/admin", auth.RequireStaff, handler)
package auth
