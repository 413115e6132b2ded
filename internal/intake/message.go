package intake

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/notify"
	"github.com/webfolio/webfolio/internal/validation"
)

const notifyTimeout = 30 * time.Second

// Messages stores contact messages.
type Messages struct {
	db        *gorm.DB
	validator *validation.Validator
	notifier  notify.Notifier
	wg        sync.WaitGroup
}

// NewMessages returns the contact message intake. A nil notifier disables notifications.
func NewMessages(db *gorm.DB, v *validation.Validator, n notify.Notifier) *Messages {
	if n == nil {
		n = notify.Noop{}
	}

	return &Messages{db: db, validator: v, notifier: n}
}

// Submit validates in and stores it as an unprocessed message.
func (m *Messages) Submit(ctx context.Context, in forms.Message) (Result[*models.Message], error) {
	res, err := Handle(in,
		func(in forms.Message) validation.FieldErrors {
			return m.validator.Struct(&in)
		},
		func(in forms.Message) (*models.Message, error) {
			msg := &models.Message{
				Name:        in.Name,
				Email:       in.Email,
				Subject:     in.Subject,
				Message:     in.Message,
				IsProcessed: false,
			}

			return msg, record.Create(m.db.WithContext(ctx), msg)
		})
	if err != nil || !res.OK() {
		return res, err
	}

	log.Info().Uint64("id", res.Record.ID).Msg("contact message stored")

	m.notify(ctx, res.Record)

	return res, nil
}

// Wait blocks until every pending notification finished.
func (m *Messages) Wait() {
	m.wg.Wait()
}

func (m *Messages) notify(ctx context.Context, msg *models.Message) {
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()

		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := m.notifier.MessageReceived(nctx, msg); err != nil {
			log.Error().Err(err).Uint64("id", msg.ID).Msg("failed to notify about contact message")
		}
	}()
}
