package auth

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/webfolio/webfolio/internal/db/models"
)

// LocalsUser is the fiber locals key holding the *models.User of the request.
const LocalsUser = "CurrentUser"

// LoginPath is where anonymous visitors of protected pages are sent.
const LoginPath = "/login"

// CurrentUser returns the authenticated user of the request or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	u, ok := c.Locals(LocalsUser).(*models.User)
	if !ok {
		return nil
	}

	return u
}

// Username returns the name of the authenticated user or "".
func Username(c *fiber.Ctx) string {
	if u := CurrentUser(c); u != nil {
		return u.Username
	}

	return ""
}

// RequireStaff lets only active staff users through.
// Anonymous requests are redirected to the login page, other users get 403.
func RequireStaff(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return c.Redirect(LoginPath + "?next=" + url.QueryEscape(c.OriginalURL()))
	}

	if !user.IsActive || !user.IsStaff {
		log.Warn().Uint64("user_id", user.ID).Str("path", c.Path()).Msg("non staff user denied")

		return c.Status(fiber.StatusForbidden).SendString("Forbidden: You don't have permission to access this resource")
	}

	return c.Next()
}
