package login

import (
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfolio/webfolio/internal/auth"
	"github.com/webfolio/webfolio/internal/validation"
	websess "github.com/webfolio/webfolio/internal/web/session"
	"github.com/webfolio/webfolio/internal/web/webtest"
)

// testStorage is a minimal in-memory implementation of fiber.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ fiber.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}

	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func setup(t *testing.T) (*fiber.App, *testStorage, *auth.LocalProvider) {
	t.Helper()

	db := webtest.DB(t)

	storage := &testStorage{data: make(map[string][]byte)}
	websess.Init(storage)

	v := validation.New()
	provider := auth.NewLocalProvider(db, v)
	app := webtest.App()

	var s Service
	require.NoError(t, s.Init(app, webtest.Config(), provider, v))

	webtest.User(t, db, "alice", "secret", true, false)
	webtest.User(t, db, "bob", "secret", false, false)

	return app, storage, provider
}

func TestInitRejectsNil(t *testing.T) {
	var s Service
	require.Error(t, s.Init(nil, nil, nil, nil))
}

func TestGet(t *testing.T) {
	app, _, _ := setup(t)

	resp, body := webtest.Do(t, app, webtest.Get(Path))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "login")
	assert.NotContains(t, body, "error:")
}

func TestPostSuccess(t *testing.T) {
	app, storage, _ := setup(t)

	resp, _ := webtest.Do(t, app, webtest.Form(Path, url.Values{"username": {"alice"}, "password": {"secret"}}))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, SuccessPath, resp.Header.Get(fiber.HeaderLocation))

	cookie := webtest.Cookie(resp, websess.CookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	data := new(websess.Data)
	require.NoError(t, data.Read(cookie.Value))
	assert.Equal(t, "alice", data.User.Username)
	assert.Len(t, storage.data, 1)
}

func TestPostFollowsLocalNext(t *testing.T) {
	app, _, _ := setup(t)

	resp, _ := webtest.Do(t, app, webtest.Form(Path+"?next=%2Fadmin%2Fskills", url.Values{"username": {"alice"}, "password": {"secret"}}))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/skills", resp.Header.Get(fiber.HeaderLocation))
}

func TestPostRejected(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     string
	}{
		{"wrong password", "alice", "nope", "Invalid username or password"},
		{"unknown user", "carol", "secret", "Invalid username or password"},
		{"inactive user", "bob", "secret", "User is not active"},
		{"inactive user wrong password", "bob", "nope", "Invalid username or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, storage, _ := setup(t)

			resp, body := webtest.Do(t, app, webtest.Form(Path, url.Values{"username": {tt.username}, "password": {tt.password}}))
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, body, "error: "+tt.want)
			assert.Nil(t, webtest.Cookie(resp, websess.CookieName))
			assert.Empty(t, storage.data)
		})
	}
}

func TestPostBlankFields(t *testing.T) {
	app, _, _ := setup(t)

	resp, body := webtest.Do(t, app, webtest.Form(Path, url.Values{"username": {""}}))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, validation.MsgRequired)
	assert.NotContains(t, body, "error:")
}

func TestNext(t *testing.T) {
	assert.Equal(t, "/admin", Next("/admin"))
	assert.Equal(t, SuccessPath, Next(""))
	assert.Equal(t, SuccessPath, Next("https://evil.example"))
	assert.Equal(t, SuccessPath, Next("//evil.example"))
	assert.Equal(t, SuccessPath, Next("/\\evil.example"))
}
