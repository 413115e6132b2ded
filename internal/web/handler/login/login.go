package login

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/webfolio/webfolio/internal/auth"
	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/validation"
	"github.com/webfolio/webfolio/internal/web/handler"
	"github.com/webfolio/webfolio/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = auth.LoginPath

	// SuccessPath is where a login without a next parameter lands.
	SuccessPath = handler.RootPath

	template = "login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	provider  *auth.LocalProvider
	validator *validation.Validator
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, provider *auth.LocalProvider, v *validation.Validator) error {
	if app == nil || cfg == nil || provider == nil || v == nil {
		return handler.ErrNilDependency
	}

	s.Cfg = cfg
	s.provider = provider
	s.validator = v

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, forms.Empty[forms.Login](), "")
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	in := forms.Login{}
	if err := c.BodyParser(&in); err != nil {
		log.Debug().Err(err).Msg(ErrInvalidFormData.Error())

		return s.render(c, forms.Empty[forms.Login](), auth.ErrInvalidCredentials.Error())
	}

	state := forms.State[forms.Login]{Data: forms.Login{Username: in.Username}}

	if errs := s.validator.Struct(&in); len(errs) > 0 {
		state.Errors = errs

		return s.render(c, state, "")
	}

	attempt := s.provider.Attempt(in.Username, in.Password)

	switch attempt.State {
	case auth.Authenticated:
	case auth.Rejected:
		log.Info().Str("username", in.Username).Str("reason", attempt.Err.Error()).Msg("login rejected")

		return s.render(c, state, attempt.Err.Error())
	default:
		log.Error().Err(attempt.Err).Msg("login failed")

		return s.render(c.Status(fiber.StatusInternalServerError), state, ErrInternalServerError.Error())
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")

		return s.render(c.Status(fiber.StatusInternalServerError), state, ErrInternalServerError.Error())
	}

	userSession := &session.Data{User: *attempt.User}

	if err = userSession.Write(sessionID, s.Cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return s.render(c.Status(fiber.StatusInternalServerError), state, ErrInternalServerError.Error())
	}

	c.Cookie(session.Cookie(sessionID, s.Cfg.Webserver.Session.ExpiryTime, s.SecureCookies()))

	return c.Redirect(Next(c.Query("next")))
}

func (s *Service) render(c *fiber.Ctx, state forms.State[forms.Login], msg string) error {
	if msg != "" {
		if state.Errors == nil {
			state.Errors = validation.FieldErrors{}
		}

		state.Errors.Add(validation.NonFieldKey, msg)
	}

	m := fiber.Map{
		"Title": s.Cfg.Title,
		"Form":  state,
		"Next":  c.Query("next"),
	}

	// the single non-field error of the form
	if msg != "" {
		m["error"] = msg
	}

	return c.Render(template, m, handler.BaseLayout)
}

// Next returns the local path to continue to after login.
// Anything not rooted on this site falls back to SuccessPath.
func Next(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return SuccessPath
	}

	return next
}
