package auth

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/validation"
)

const whereUsername = "username = ?"

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB, v *validation.Validator) *LocalProvider {
	if v == nil {
		v = validation.New()
	}

	return &LocalProvider{
		db:        db,
		validator: v,
	}
}

// Authenticate authenticates a user against the local database.
func (p *LocalProvider) Authenticate(username, password string) (*models.User, error) {
	user, err := p.GetUserByUsername(username)
	if errors.Is(err, ErrUserNotFound) {
		// burn the same time as a real comparison
		(&models.User{Password: dummyHash()}).VerifyPassword(password)

		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, err
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

// Register validates in and creates an active, non-staff user.
// Field errors are returned for invalid input, err only for storage failures.
func (p *LocalProvider) Register(in forms.Register) (*models.User, validation.FieldErrors, error) {
	if errs := p.validator.Struct(&in); len(errs) > 0 {
		return nil, errs, nil
	}

	user, err := p.CreateUser(in.Username, in.Email, in.Password1, false)
	if errors.Is(err, ErrUsernameTaken) {
		return nil, validation.FieldErrors{"username": validation.MsgUsernameTaken}, nil
	}

	if err != nil {
		return nil, nil, err
	}

	return user, nil, nil
}

// CreateUser creates a new active local user.
func (p *LocalProvider) CreateUser(username, email, password string, staff bool) (*models.User, error) {
	taken, err := record.Exists[models.User](p.db, "username", username, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if taken {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := models.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
		IsStaff:  staff,
	}

	if err := record.Create(p.db, &user); err != nil {
		// another request took the name after the check
		if errors.Is(err, record.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}

		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// SetActive activates or deactivates a user account.
func (p *LocalProvider) SetActive(userID uint64, active bool) error {
	err := record.UpdateColumn[models.User](p.db, userID, "is_active", active)
	if errors.Is(err, record.ErrNotFound) {
		return ErrUserNotFound
	}

	return err
}

// GetUserByID retrieves a user by ID.
func (p *LocalProvider) GetUserByID(userID uint64) (*models.User, error) {
	user, err := record.Get[models.User](p.db, userID)
	if errors.Is(err, record.ErrNotFound) {
		return nil, ErrUserNotFound
	}

	return user, err
}

// GetUserByUsername retrieves a user by username.
func (p *LocalProvider) GetUserByUsername(username string) (*models.User, error) {
	if p.db == nil {
		return nil, record.ErrDBNil
	}

	var user models.User

	err := p.db.Where(whereUsername, username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// dummyHash is compared against when the username does not exist.
var dummyHash = sync.OnceValue(func() string {
	h, _ := models.HashPassword("not a password") //nolint:errcheck // only fails without entropy

	return h
})
