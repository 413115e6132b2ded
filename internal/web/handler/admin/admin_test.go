package admin

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	adm "github.com/webfolio/webfolio/internal/admin"
	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/media"
	"github.com/webfolio/webfolio/internal/validation"
	authmiddleware "github.com/webfolio/webfolio/internal/web/middleware/auth"
	"github.com/webfolio/webfolio/internal/web/webtest"
)

type fixture struct {
	app   *fiber.App
	db    *gorm.DB
	fs    afero.Fs
	staff *http.Cookie
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := webtest.DB(t)
	fs := afero.NewMemMapFs()

	app := webtest.App()
	app.Use(authmiddleware.New(db))

	var s Service
	require.NoError(t, s.Init(app, webtest.Config(), db, validation.New(), adm.NewRegistry(), media.NewLocalFs(fs, "/media/")))

	staff := webtest.User(t, db, "admin", "secret", true, true)

	return &fixture{app: app, db: db, fs: fs, staff: webtest.Session(t, staff)}
}

func (f *fixture) post(t *testing.T, target string, values url.Values) (*http.Response, string) {
	t.Helper()

	return webtest.Do(t, f.app, webtest.Form(target, values, f.staff))
}

func (f *fixture) get(t *testing.T, target string) (*http.Response, string) {
	t.Helper()

	return webtest.Do(t, f.app, webtest.Get(target, f.staff))
}

func category(name string, position int, visible bool) url.Values {
	v := url.Values{"name": {name}, "slug": {""}, "position": {strconv.Itoa(position)}}
	if visible {
		v.Set("is_visible", "true")
	}

	return v
}

func TestAccess(t *testing.T) {
	f := setup(t)

	resp, _ := webtest.Do(t, f.app, webtest.Get(Path))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fadmin", resp.Header.Get(fiber.HeaderLocation))

	visitor := webtest.User(t, f.db, "visitor", "secret", true, false)
	resp, _ = webtest.Do(t, f.app, webtest.Get(Path, webtest.Session(t, visitor)))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := f.get(t, Path)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "admin/index")
	assert.Contains(t, body, "Project categories")
	assert.Contains(t, body, "Subscribers")

	resp, _ = f.get(t, Path+"/unknown")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCategory(t *testing.T) {
	f := setup(t)

	resp, _ := f.post(t, Path+"/categories", category("Web Design", 1, true))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, Path+"/categories", resp.Header.Get(fiber.HeaderLocation))

	cat, err := record.First[models.ProjectCategory](f.db)
	require.NoError(t, err)
	assert.Equal(t, "web-design", cat.Slug)
	assert.True(t, cat.IsVisible)

	// same position again
	resp, body := f.post(t, Path+"/categories", category("Mobile", 1, false))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, validation.UniqueMessage("Project category", "Position"))

	resp, body = f.post(t, Path+"/categories", url.Values{"name": {"Mobile"}, "position": {"first"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, validation.MsgInvalidNumber)
	assert.Contains(t, body, "first", "submitted value is shown back")
}

func TestNewAndEditForms(t *testing.T) {
	f := setup(t)

	resp, body := f.get(t, Path+"/categories/new")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "admin/form")

	require.NoError(t, record.Create(f.db, &models.ProjectCategory{Name: "Web", Slug: "web", Position: 1}))

	resp, body = f.get(t, Path+"/categories/1/edit")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Value:web")

	resp, _ = f.get(t, Path+"/categories/9/edit")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = f.get(t, Path+"/messages/new")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestUpdate(t *testing.T) {
	f := setup(t)
	require.NoError(t, record.Create(f.db, &models.ProjectCategory{Name: "Web", Slug: "web", Position: 1, IsVisible: true}))

	resp, _ := f.post(t, Path+"/categories/1", url.Values{"name": {"Web"}, "slug": {"web-2"}, "position": {"3"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	cat, err := record.Get[models.ProjectCategory](f.db, 1)
	require.NoError(t, err)
	assert.Equal(t, "web-2", cat.Slug)
	assert.Equal(t, 3, cat.Position)
	assert.False(t, cat.IsVisible)
}

func TestListFilter(t *testing.T) {
	f := setup(t)
	require.NoError(t, record.Create(f.db, &models.ProjectCategory{Name: "Shown", Slug: "shown", Position: 1, IsVisible: true}))
	require.NoError(t, record.Create(f.db, &models.ProjectCategory{Name: "Hidden", Slug: "hidden", Position: 2}))

	resp, body := f.get(t, Path+"/categories?is_visible=true")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Shown")
	assert.NotContains(t, body, "Hidden")

	_, body = f.get(t, Path+"/categories")
	assert.Contains(t, body, "Hidden")
}

func TestInline(t *testing.T) {
	f := setup(t)
	require.NoError(t, record.Create(f.db, &models.ProjectCategory{Name: "Web", Slug: "web", Position: 1, IsVisible: true}))

	resp, _ := f.post(t, Path+"/categories/1/inline", url.Values{"name": {"Apps"}, "position": {"4"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	cat, err := record.Get[models.ProjectCategory](f.db, 1)
	require.NoError(t, err)
	assert.Equal(t, "Apps", cat.Name)
	assert.Equal(t, 4, cat.Position)
	assert.False(t, cat.IsVisible, "unchecked box")
	assert.Equal(t, "web", cat.Slug)

	resp, body := f.post(t, Path+"/categories/1/inline", url.Values{"position": {"x"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, validation.MsgInvalidNumber)

	resp, body = f.post(t, Path+"/categories/1/inline", url.Values{"slug": {"other"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, adm.MsgNotEditable)

	resp, _ = f.post(t, Path+"/categories/7/inline", url.Values{"position": {"2"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteProtectedCategory(t *testing.T) {
	f := setup(t)

	cat := models.ProjectCategory{Name: "Web", Slug: "web", Position: 1}
	require.NoError(t, record.Create(f.db, &cat))
	require.NoError(t, record.Create(f.db, &models.Project{Name: "Shop", Slug: "shop", CategoryID: cat.ID, Position: 1}))

	resp, body := f.post(t, Path+"/categories/1/delete", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, adm.MsgProtected)

	_, err := record.Get[models.ProjectCategory](f.db, cat.ID)
	require.NoError(t, err, "category survives")

	resp, _ = f.post(t, Path+"/projects/1/delete", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, _ = f.post(t, Path+"/categories/1/delete", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestProjectPhotoUpload(t *testing.T) {
	f := setup(t)
	require.NoError(t, record.Create(f.db, &models.ProjectCategory{Name: "Web", Slug: "web", Position: 1}))

	upload := func(target, content string) *http.Response {
		var buf bytes.Buffer

		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("name", "Shop"))
		require.NoError(t, w.WriteField("category_id", "1"))
		require.NoError(t, w.WriteField("position", "1"))
		require.NoError(t, w.WriteField("is_visible", "true"))

		part, err := w.CreateFormFile("photo", "Shop.PNG")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, target, &buf)
		req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
		req.AddCookie(f.staff)

		resp, _ := webtest.Do(t, f.app, req)

		return resp
	}

	resp := upload(Path+"/projects", "first")
	require.Equal(t, http.StatusFound, resp.StatusCode)

	p, err := record.Get[models.Project](f.db, 1)
	require.NoError(t, err)
	assert.Equal(t, "shop", p.Slug)
	assert.True(t, strings.HasPrefix(p.Photo, "projects/"), p.Photo)
	assert.True(t, strings.HasSuffix(p.Photo, ".png"), p.Photo)

	first := p.Photo
	data, err := afero.ReadFile(f.fs, "/"+first)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	resp = upload(Path+"/projects/1", "second")
	require.Equal(t, http.StatusFound, resp.StatusCode)

	p, err = record.Get[models.Project](f.db, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first, p.Photo)

	exists, err := afero.Exists(f.fs, "/"+first)
	require.NoError(t, err)
	assert.False(t, exists, "replaced photo is removed")

	resp, _ = f.post(t, Path+"/projects/1/delete", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	exists, err = afero.Exists(f.fs, "/"+p.Photo)
	require.NoError(t, err)
	assert.False(t, exists, "photo of a deleted project is removed")
}

func TestToggleProcessed(t *testing.T) {
	f := setup(t)
	require.NoError(t, record.Create(f.db, &models.Message{Name: "Ann", Email: "a@example.com", Subject: "Hi", Message: "Hello"}))

	resp, _ := f.post(t, Path+"/messages/1/processed", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	msg, err := record.Get[models.Message](f.db, 1)
	require.NoError(t, err)
	assert.True(t, msg.IsProcessed)

	f.post(t, Path+"/messages/1/processed", nil)

	msg, err = record.Get[models.Message](f.db, 1)
	require.NoError(t, err)
	assert.False(t, msg.IsProcessed)

	resp, _ = f.post(t, Path+"/messages/1", url.Values{"name": {"x"}})
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
