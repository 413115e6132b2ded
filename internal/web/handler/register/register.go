// Package register lets visitors create an account.
package register

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/webfolio/webfolio/internal/auth"
	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/validation"
	"github.com/webfolio/webfolio/internal/web/handler"
)

const (
	// Path is the path to the registration page.
	Path = "/register"

	template = "register"
)

// Service is the registration handler service.
type Service struct {
	handler.Service
	provider *auth.LocalProvider
}

// Handler is the registration handler.
var Handler = Service{}

// Init initializes the registration handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, provider *auth.LocalProvider) error {
	if app == nil || cfg == nil || provider == nil {
		return handler.ErrNilDependency
	}

	s.Cfg = cfg
	s.provider = provider

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get renders the empty registration form.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, forms.Empty[forms.Register]())
}

// Post creates the account and sends the visitor to the login page.
func (s *Service) Post(c *fiber.Ctx) error {
	in := forms.Register{}
	if err := c.BodyParser(&in); err != nil {
		return s.render(c, forms.State[forms.Register]{
			Errors: validation.FieldErrors{validation.NonFieldKey: validation.MsgInvalid},
		})
	}

	user, errs, err := s.provider.Register(in)
	if err != nil {
		log.Error().Err(err).Msg("failed to register user")

		return s.render(c.Status(fiber.StatusInternalServerError), forms.State[forms.Register]{
			Data:   in.Clean(),
			Errors: validation.FieldErrors{validation.NonFieldKey: "Internal server error"},
		})
	}

	if len(errs) > 0 {
		return s.render(c, forms.State[forms.Register]{Data: in.Clean(), Errors: errs})
	}

	log.Info().Uint64("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	return c.Redirect(auth.LoginPath)
}

func (s *Service) render(c *fiber.Ctx, state forms.State[forms.Register]) error {
	m := fiber.Map{
		"Title": s.Cfg.Title,
		"Form":  state,
	}

	if msg := state.Errors.NonField(); msg != "" {
		m["error"] = msg
	}

	return c.Render(template, m, handler.BaseLayout)
}
