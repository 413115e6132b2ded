package intake

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/validation"
)

// Subscriptions stores newsletter subscriptions.
type Subscriptions struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewSubscriptions returns the subscription intake.
func NewSubscriptions(db *gorm.DB, v *validation.Validator) *Subscriptions {
	return &Subscriptions{db: db, validator: v}
}

// Submit stores in for username. An empty username stores models.AnonymousUsername.
// The same address may subscribe again, every submission is a new row.
func (s *Subscriptions) Submit(ctx context.Context, in forms.Subscribe, username string) (Result[*models.Subscriber], error) {
	if username == "" {
		username = models.AnonymousUsername
	}

	res, err := Handle(in,
		func(in forms.Subscribe) validation.FieldErrors {
			return s.validator.Struct(&in)
		},
		func(in forms.Subscribe) (*models.Subscriber, error) {
			sub := &models.Subscriber{Email: in.Email, Username: username, IsActive: true}

			return sub, record.Create(s.db.WithContext(ctx), sub)
		})
	if err == nil && res.OK() {
		log.Info().Uint64("id", res.Record.ID).Msg("subscription stored")
	}

	return res, err
}
