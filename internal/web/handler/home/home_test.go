package home

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/intake"
	"github.com/webfolio/webfolio/internal/validation"
	authmiddleware "github.com/webfolio/webfolio/internal/web/middleware/auth"
	"github.com/webfolio/webfolio/internal/web/webtest"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB, *intake.Messages) {
	t.Helper()

	db := webtest.DB(t)
	v := validation.New()
	messages := intake.NewMessages(db, v, nil)

	app := webtest.App()
	app.Use(authmiddleware.New(db))

	var s Service
	require.NoError(t, s.Init(app, webtest.Config(), db, messages, intake.NewSubscriptions(db, v)))

	return app, db, messages
}

func messageForm(email string) url.Values {
	return url.Values{
		forms.FormIDField: {forms.MessageFormID},
		"name":            {"Ann"},
		"email":           {email},
		"subject":         {"Offer"},
		"message":         {"Hello there"},
	}
}

func TestGetShowsVisibleContent(t *testing.T) {
	app, db, _ := setup(t)

	require.NoError(t, record.Create(db, &models.ProjectCategory{Name: "Shown", Slug: "shown", Position: 1, IsVisible: true}))
	require.NoError(t, record.Create(db, &models.ProjectCategory{Name: "Hidden", Slug: "hidden", Position: 2, IsVisible: false}))
	require.NoError(t, record.Create(db, &models.Skill{Name: "Go", Progress: 90, Position: 1, IsVisible: true}))

	resp, body := webtest.Do(t, app, webtest.Get(Path))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "index")
	assert.Contains(t, body, "Shown")
	assert.NotContains(t, body, "Hidden")
	assert.Contains(t, body, "Go")
	assert.Contains(t, body, "Success:false")
}

func TestPostMessage(t *testing.T) {
	t.Run("stored and cleared", func(t *testing.T) {
		app, db, messages := setup(t)

		resp, body := webtest.Do(t, app, webtest.Form(Path, messageForm("ann@example.com")))
		messages.Wait()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "MessageForm: {Data:{Name: Email: Subject: Message:} Errors:map[] Success:true}")

		stored, err := record.List[models.Message](db, "")
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Ann", stored[0].Name)
		assert.False(t, stored[0].IsProcessed)
	})

	t.Run("invalid email stays on the message form", func(t *testing.T) {
		app, db, _ := setup(t)

		resp, body := webtest.Do(t, app, webtest.Form(Path, messageForm("not-an-email")))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, validation.MsgInvalidEmail)
		assert.Contains(t, body, "not-an-email", "input is kept")
		assert.Contains(t, body, "SubscribeForm: {Data:{Email:} Errors:map[] Success:false}")

		var count int64
		require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestPostSubscribe(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		app, db, _ := setup(t)

		form := url.Values{forms.FormIDField: {forms.SubscribeFormID}, "email": {"x@example.com"}}
		resp, body := webtest.Do(t, app, webtest.Form(Path, form))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "SubscribeForm: {Data:{Email:} Errors:map[] Success:true}")

		// duplicates are accepted
		webtest.Do(t, app, webtest.Form(Path, form))

		subs, err := record.List[models.Subscriber](db, "")
		require.NoError(t, err)
		require.Len(t, subs, 2)
		assert.Equal(t, models.AnonymousUsername, subs[0].Username)
		assert.True(t, subs[0].IsActive)
	})

	t.Run("logged in user", func(t *testing.T) {
		app, db, _ := setup(t)
		user := webtest.User(t, db, "alice", "secret", true, false)

		form := url.Values{forms.FormIDField: {forms.SubscribeFormID}, "email": {"a@example.com"}}
		webtest.Do(t, app, webtest.Form(Path, form, webtest.Session(t, user)))

		sub, err := record.First[models.Subscriber](db)
		require.NoError(t, err)
		assert.Equal(t, "alice", sub.Username)
	})

	t.Run("invalid email", func(t *testing.T) {
		app, _, _ := setup(t)

		form := url.Values{forms.FormIDField: {forms.SubscribeFormID}, "email": {""}}
		_, body := webtest.Do(t, app, webtest.Form(Path, form))
		assert.Contains(t, body, validation.MsgRequired)
		assert.Contains(t, body, "MessageForm: {Data:{Name: Email: Subject: Message:} Errors:map[] Success:false}")
	})
}

func TestPostUnknownForm(t *testing.T) {
	app, _, _ := setup(t)

	resp, _ := webtest.Do(t, app, webtest.Form(Path, url.Values{forms.FormIDField: {"other"}, "email": {"x@example.com"}}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = webtest.Do(t, app, webtest.Form(Path, url.Values{"email": {"x@example.com"}}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
