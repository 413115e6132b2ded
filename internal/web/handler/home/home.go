// Package home serves the public page and its contact and newsletter forms.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/auth"
	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/content"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/intake"
	"github.com/webfolio/webfolio/internal/web/handler"
)

const (
	// Path is the path of the public page.
	Path = handler.RootPath

	template = "index"
)

// ErrUnknownForm is the response to a POST naming no known form.
var ErrUnknownForm = fiber.NewError(fiber.StatusBadRequest, "unknown form")

// Service is the public page handler service.
type Service struct {
	handler.Service
	db            *gorm.DB
	messages      *intake.Messages
	subscriptions *intake.Subscriptions
}

// Handler is the public page handler.
var Handler = Service{}

// Init initializes the public page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, m *intake.Messages, sub *intake.Subscriptions) error {
	if app == nil || cfg == nil || db == nil || m == nil || sub == nil {
		return handler.ErrNilDependency
	}

	s.Cfg = cfg
	s.db = db
	s.messages = m
	s.subscriptions = sub

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get renders the page with unbound forms.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, forms.Empty[forms.Message](), forms.Empty[forms.Subscribe]())
}

// Post handles one of the page forms, selected by its form_id.
// Only the submitted form carries data or errors in the response.
func (s *Service) Post(c *fiber.Ctx) error {
	var (
		msgForm = forms.Empty[forms.Message]()
		subForm = forms.Empty[forms.Subscribe]()
	)

	switch c.FormValue(forms.FormIDField) {
	case forms.MessageFormID:
		in := forms.Message{}
		if err := c.BodyParser(&in); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res, err := s.messages.Submit(c.UserContext(), in)
		if err != nil {
			log.Error().Err(err).Msg("failed to store message")

			return fiber.ErrInternalServerError
		}

		msgForm = formState(in, res)
	case forms.SubscribeFormID:
		in := forms.Subscribe{}
		if err := c.BodyParser(&in); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res, err := s.subscriptions.Submit(c.UserContext(), in, auth.Username(c))
		if err != nil {
			log.Error().Err(err).Msg("failed to store subscriber")

			return fiber.ErrInternalServerError
		}

		subForm = formState(in, res)
	default:
		return ErrUnknownForm
	}

	return s.render(c, msgForm, subForm)
}

// formState clears the form on success and keeps the input next to its errors otherwise.
func formState[F, Rec any](in F, res intake.Result[Rec]) forms.State[F] {
	if res.OK() {
		st := forms.Empty[F]()
		st.Success = true

		return st
	}

	return forms.State[F]{Data: in, Errors: res.Errors}
}

func (s *Service) render(c *fiber.Ctx, msgForm forms.State[forms.Message], subForm forms.State[forms.Subscribe]) error {
	page, err := content.Assemble(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to assemble page")

		return fiber.ErrInternalServerError
	}

	return c.Render(template, fiber.Map{
		"Title":         s.Cfg.Title,
		"Page":          page,
		"MessageForm":   msgForm,
		"SubscribeForm": subForm,
		"User":          auth.CurrentUser(c),
	}, handler.BaseLayout)
}
