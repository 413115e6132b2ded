package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	authn "github.com/webfolio/webfolio/internal/auth"
	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/web/session"
)

// New returns the middleware resolving the session cookie to the current user.
// It never redirects: anonymous requests simply carry no user.
func New(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if IsStaticPath(c) {
			return c.Next()
		}

		sessionID := c.Cookies(session.CookieName)
		if sessionID == "" {
			return c.Next()
		}

		sessData := new(session.Data)
		if err := sessData.Read(sessionID); err != nil {
			return c.Next()
		}

		if sessData.User.ID == 0 {
			return c.Next()
		}

		// reload, the account may have been disabled since login
		user, err := record.Get[models.User](db, sessData.User.ID)
		if err != nil {
			log.Debug().Err(err).Uint64("user_id", sessData.User.ID).Msg("session user not loaded")

			return c.Next()
		}

		if !user.IsActive {
			return c.Next()
		}

		c.Locals(authn.LocalsUser, user)

		return c.Next()
	}
}

// IsStaticPath reports whether the request is for static assets or media.
func IsStaticPath(c *fiber.Ctx) bool {
	p := strings.ToLower(c.Path())

	return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
}
