package auth

import (
	"errors"

	"github.com/webfolio/webfolio/internal/db/models"
)

// State is the position of a login attempt in its lifecycle.
type State int

// Login states.
const (
	Anonymous State = iota
	Authenticating
	Authenticated
	Rejected
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Attempt is one login.
type Attempt struct {
	State State
	// User is set once Authenticated.
	User *models.User
	// Err is set once Rejected.
	Err error
}

// Attempt checks the credentials and returns the finished attempt.
// Errors other than a rejection leave the attempt in Authenticating with Err set.
func (p *LocalProvider) Attempt(username, password string) *Attempt {
	a := &Attempt{State: Anonymous}
	a.State = Authenticating

	user, err := p.Authenticate(username, password)

	switch {
	case err == nil:
		a.State = Authenticated
		a.User = user
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUserInactive):
		a.State = Rejected
		a.Err = err
	default:
		a.Err = err
	}

	return a
}
