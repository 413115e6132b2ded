// Package webtest holds the fixtures shared by the web handler tests.
package webtest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/db"
	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/migrate"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/web/session"
)

// dumpKeys are the view values written after the template name.
var dumpKeys = []string{"Page", "Form", "MessageForm", "SubscribeForm", "Widgets", "Rows", "Items"}

// Views is a minimal fiber Views engine. It writes the template name, the
// "error" value if any and a dump of the form values, so tests can assert on them.
type Views struct{}

// Load implements fiber.Views.
func (Views) Load() error { return nil }

// Render implements fiber.Views.
func (Views) Render(w io.Writer, name string, data any, _ ...string) error {
	_, _ = io.WriteString(w, name)

	m, ok := data.(fiber.Map)
	if !ok {
		return nil
	}

	if v, exists := m["error"]; exists && v != nil {
		_, _ = fmt.Fprintf(w, "\nerror: %v", v)
	}

	for _, k := range dumpKeys {
		if v, exists := m[k]; exists {
			_, _ = fmt.Fprintf(w, "\n%s: %+v", k, v)
		}
	}

	return nil
}

// App returns a fiber app rendering through Views.
func App() *fiber.App {
	return fiber.New(fiber.Config{Views: Views{}})
}

// Config returns a config fit for handler tests.
func Config() *config.Config {
	return &config.Config{
		Title:   "Webfolio",
		DevMode: false,
		DB:      config.DB{GormEngine: config.EngineSQLite, Path: ":memory:"},
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
		Media: config.Media{Backend: config.MediaLocal, URLPrefix: "/media/"},
	}
}

// DB opens a migrated in-memory database and resets the session store.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(Config())
	require.NoError(t, err)
	require.NoError(t, migrate.Up(gdb))

	session.Init(nil)

	return gdb
}

// User stores a user with password.
func User(t *testing.T, gdb *gorm.DB, username, password string, active, staff bool) *models.User {
	t.Helper()

	hash, err := models.HashPassword(password)
	require.NoError(t, err)

	u := &models.User{Username: username, Email: username + "@example.com", Password: hash, IsActive: active, IsStaff: staff}
	require.NoError(t, record.Create(gdb, u))

	return u
}

// Session writes a session for u and returns its cookie.
func Session(t *testing.T, u *models.User) *http.Cookie {
	t.Helper()

	id, err := session.GenerateSessionID()
	require.NoError(t, err)

	data := &session.Data{User: *u}
	require.NoError(t, data.Write(id, time.Minute))

	return &http.Cookie{Name: session.CookieName, Value: id}
}

// Form builds a urlencoded POST request.
func Form(target string, values url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// Get builds a GET request.
func Get(target string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// Do runs req against app and returns the response and its body.
func Do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, string(body)
}

// Cookie returns the response cookie named name.
func Cookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}
