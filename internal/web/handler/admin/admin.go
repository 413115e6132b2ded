// Package admin serves the staff area: an index of content kinds, list views
// with filters and inline edits, and create/edit forms with photo uploads.
package admin

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	adm "github.com/webfolio/webfolio/internal/admin"
	"github.com/webfolio/webfolio/internal/auth"
	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/media"
	"github.com/webfolio/webfolio/internal/validation"
	"github.com/webfolio/webfolio/internal/web/handler"
	"github.com/webfolio/webfolio/internal/web/navigation"
)

const (
	// Path is the root of the admin area.
	Path = "/admin"

	templateIndex = "admin/index"
	templateList  = "admin/list"
	templateForm  = "admin/form"

	section = "admin"
)

// Service is the admin handler service.
type Service struct {
	handler.Service
	db        *gorm.DB
	validator *validation.Validator
	registry  *adm.Registry
	store     media.Store
}

// Handler is the admin handler.
var Handler = Service{}

// Init initializes the admin handler. Every route requires an active staff user.
func (s *Service) Init(
	app *fiber.App, cfg *config.Config, db *gorm.DB,
	v *validation.Validator, registry *adm.Registry, store media.Store,
) error {
	if app == nil || cfg == nil || db == nil || v == nil || registry == nil || store == nil {
		return handler.ErrNilDependency
	}

	s.Cfg = cfg
	s.db = db
	s.validator = v
	s.registry = registry
	s.store = store

	app.Route(Path, func(router fiber.Router) {
		router.Use(auth.RequireStaff)
		router.Get(handler.RootPath, s.Index)
		router.Post("/"+string(models.KindMessage)+"/:id/processed", s.ToggleProcessed)
		router.Get("/:kind", s.List)
		router.Post("/:kind", s.Create)
		router.Get("/:kind/new", s.New)
		router.Get("/:kind/:id/edit", s.Edit)
		router.Post("/:kind/:id", s.Update)
		router.Post("/:kind/:id/inline", s.Inline)
		router.Post("/:kind/:id/delete", s.Delete)
	})

	return nil
}

// Index lists the content kinds with their row counts.
func (s *Service) Index(c *fiber.Ctx) error {
	items := make([]MenuItem, 0)

	for _, en := range s.registry.Entries() {
		var count int64
		if err := s.db.Model(en.Resource.Blank()).Count(&count).Error; err != nil {
			log.Error().Err(err).Str("kind", string(en.Kind)).Msg("failed to count rows")

			return fiber.ErrInternalServerError
		}

		items = append(items, MenuItem{Kind: en.Kind, Plural: en.Plural, Count: count, ReadOnly: en.ReadOnly})
	}

	nav := navigation.NewContext("Administration", section, "index").
		AddBreadcrumb("Admin", Path)

	return c.Render(templateIndex, fiber.Map{
		"Title":      s.Cfg.Title,
		"User":       auth.CurrentUser(c),
		"Navigation": nav,
		"Items":      items,
	}, handler.BaseLayout)
}

// List renders the rows of a kind, narrowed by the filters in the query string.
func (s *Service) List(c *fiber.Ctx) error {
	en, err := s.entry(c)
	if err != nil {
		return err
	}

	return s.renderList(c, en, nil, "")
}

// Inline updates the list editable fields of one row.
func (s *Service) Inline(c *fiber.Ctx) error {
	en, err := s.entry(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return err
	}

	errs, err := en.Inline(s.db, s.validator, id, formValues(c))
	if err != nil {
		return storageError(err, "inline update failed")
	}

	if len(errs) > 0 {
		return s.renderList(c.Status(fiber.StatusBadRequest), en, map[uint64]validation.FieldErrors{id: errs}, firstError(errs))
	}

	log.Info().Str("kind", string(en.Kind)).Uint64("id", id).Str("user", auth.Username(c)).Msg("admin inline update")

	return c.Redirect(listPath(en.Kind))
}

// Delete removes one row and its photo. Rows still referenced are kept and reported with 409.
func (s *Service) Delete(c *fiber.Ctx) error {
	en, err := s.entry(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return err
	}

	current, err := en.Resource.Get(s.db, id)
	if err != nil {
		return storageError(err, "failed to load row")
	}

	errs, err := en.Delete(s.db, id)
	if err != nil {
		return storageError(err, "delete failed")
	}

	if len(errs) > 0 {
		return s.renderList(c.Status(fiber.StatusConflict), en, map[uint64]validation.FieldErrors{id: errs}, firstError(errs))
	}

	if p, ok := current.(models.PhotoHolder); ok {
		s.removePhoto(c, p.PhotoPath())
	}

	log.Info().Str("kind", string(en.Kind)).Uint64("id", id).Str("user", auth.Username(c)).Msg("admin deleted record")

	return c.Redirect(listPath(en.Kind))
}

// ToggleProcessed flips the processed flag of a message.
func (s *Service) ToggleProcessed(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	msg, err := record.Get[models.Message](s.db, id)
	if err != nil {
		return storageError(err, "failed to load message")
	}

	if err = record.UpdateColumn[models.Message](s.db, id, "is_processed", !msg.IsProcessed); err != nil {
		return storageError(err, "failed to update message")
	}

	return c.Redirect(listPath(models.KindMessage))
}

func (s *Service) renderList(c *fiber.Ctx, en *adm.Entry, rowErrs map[uint64]validation.FieldErrors, msg string) error {
	query := c.Queries()

	list, err := en.List(s.db, query)
	if err != nil {
		return storageError(err, "failed to list rows")
	}

	options, err := s.options(en)
	if err != nil {
		return storageError(err, "failed to load choices")
	}

	nav := navigation.NewContext(en.Plural, section, string(en.Kind)).
		AddBreadcrumb("Admin", Path).
		AddBreadcrumb(en.Plural, listPath(en.Kind))

	m := fiber.Map{
		"Title":      s.Cfg.Title,
		"User":       auth.CurrentUser(c),
		"Navigation": nav,
		"Entry":      en,
		"Columns":    columns(en),
		"Rows":       rows(en, list, rowErrs),
		"Filters":    filters(en, options, query),
	}

	if msg != "" {
		m["error"] = msg
	}

	return c.Render(templateList, m, handler.BaseLayout)
}

func (s *Service) options(en *adm.Entry) (map[string][]forms.Option, error) {
	if en.Options == nil {
		return map[string][]forms.Option{}, nil
	}

	return en.Options(s.db)
}

func (s *Service) entry(c *fiber.Ctx) (*adm.Entry, error) {
	en, ok := s.registry.Get(models.Kind(c.Params("kind")))
	if !ok {
		return nil, fiber.ErrNotFound
	}

	return en, nil
}

func paramID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.ErrNotFound
	}

	return id, nil
}

func listPath(kind models.Kind) string {
	return Path + "/" + string(kind)
}

// formValues returns the first value of every submitted field, urlencoded or multipart.
func formValues(c *fiber.Ctx) map[string]string {
	out := map[string]string{}

	if mf, err := c.MultipartForm(); err == nil {
		for k, v := range mf.Value {
			if len(v) > 0 {
				out[k] = v[0]
			}
		}

		return out
	}

	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		out[string(k)] = string(v)
	})

	return out
}

// storageError maps storage failures to http errors.
func storageError(err error, msg string) error {
	if errors.Is(err, record.ErrNotFound) {
		return fiber.ErrNotFound
	}

	log.Error().Err(err).Msg(msg)

	return fiber.ErrInternalServerError
}
