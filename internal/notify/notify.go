// Package notify tells the office about new contact messages.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/db/models"
)

// ErrNoRecipients is returned by NewSMTP when mail is enabled without recipients.
var ErrNoRecipients = errors.New("mail has no recipients")

// Notifier is informed about every stored contact message.
type Notifier interface {
	MessageReceived(ctx context.Context, m *models.Message) error
}

// Noop discards notifications.
type Noop struct{}

// MessageReceived does nothing.
func (Noop) MessageReceived(context.Context, *models.Message) error { return nil }

// SMTP mails a summary of each message to the configured recipients.
type SMTP struct {
	from string
	to   []string
	send func(msgs ...*gomail.Message) error
}

// New returns the notifier matching cfg: SMTP when mail is enabled, Noop otherwise.
func New(cfg config.Mail) (Notifier, error) {
	if !cfg.Enabled {
		return Noop{}, nil
	}

	return NewSMTP(cfg)
}

// NewSMTP dials cfg.Host for every message.
func NewSMTP(cfg config.Mail) (*SMTP, error) {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)

	return newSMTP(cfg, d.DialAndSend)
}

// NewSMTPWithSender hands the mails to s instead of dialing a server.
func NewSMTPWithSender(cfg config.Mail, s gomail.Sender) (*SMTP, error) {
	return newSMTP(cfg, func(msgs ...*gomail.Message) error {
		return gomail.Send(s, msgs...)
	})
}

func newSMTP(cfg config.Mail, send func(msgs ...*gomail.Message) error) (*SMTP, error) {
	if len(cfg.To) == 0 {
		return nil, ErrNoRecipients
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &SMTP{from: from, to: cfg.To, send: send}, nil
}

// MessageReceived sends the message. The visitor address is used as Reply-To.
func (s *SMTP) MessageReceived(ctx context.Context, m *models.Message) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", s.to...)
	msg.SetAddressHeader("Reply-To", m.Email, m.Name)
	msg.SetHeader("Subject", "New message: "+m.Subject)
	msg.SetBody("text/plain", body(m))

	if err := s.send(msg); err != nil {
		return errors.Wrap(err, "failed to send message notification")
	}

	return nil
}

func body(m *models.Message) string {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s <%s>\n", m.Name, m.Email)
	fmt.Fprintf(&b, "Received: %s\n", m.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Subject: %s\n\n", m.Subject)
	b.WriteString(m.Message)
	b.WriteString("\n")

	return b.String()
}
