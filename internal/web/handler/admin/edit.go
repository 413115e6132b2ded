package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	adm "github.com/webfolio/webfolio/internal/admin"
	"github.com/webfolio/webfolio/internal/auth"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/validation"
	"github.com/webfolio/webfolio/internal/web/handler"
	"github.com/webfolio/webfolio/internal/web/navigation"
)

const (
	photoField = "photo"
	// photoClear is the checkbox removing the current photo.
	photoClear = "photo-clear"

	defaultContentType = "application/octet-stream"
)

// New renders the empty form of a kind.
func (s *Service) New(c *fiber.Ctx) error {
	en, err := s.entry(c)
	if err != nil {
		return err
	}

	if en.ReadOnly {
		return fiber.ErrMethodNotAllowed
	}

	e := en.Resource.New()

	return s.renderForm(c, en, e, adm.Strings(e), nil)
}

// Edit renders the form of one row. Read only kinds get the form with inputs disabled.
func (s *Service) Edit(c *fiber.Ctx) error {
	en, err := s.entry(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return err
	}

	e, err := en.Resource.Get(s.db, id)
	if err != nil {
		return storageError(err, "failed to load row")
	}

	return s.renderForm(c, en, e, adm.Strings(e), nil)
}

// Create stores a new row from the submitted form.
func (s *Service) Create(c *fiber.Ctx) error {
	en, err := s.entry(c)
	if err != nil {
		return err
	}

	if en.ReadOnly {
		return fiber.ErrMethodNotAllowed
	}

	return s.save(c, en, en.Resource.Blank(), true)
}

// Update stores the submitted form over an existing row.
func (s *Service) Update(c *fiber.Ctx) error {
	en, err := s.entry(c)
	if err != nil {
		return err
	}

	if en.ReadOnly {
		return fiber.ErrMethodNotAllowed
	}

	id, err := paramID(c)
	if err != nil {
		return err
	}

	e, err := en.Resource.Get(s.db, id)
	if err != nil {
		return storageError(err, "failed to load row")
	}

	return s.save(c, en, e, false)
}

func (s *Service) save(c *fiber.Ctx, en *adm.Entry, e models.Entity, create bool) error {
	form := formValues(c)

	if errs := adm.Bind(e, form); len(errs) > 0 {
		return s.renderForm(c.Status(fiber.StatusBadRequest), en, e, merge(adm.Strings(e), form), errs)
	}

	oldPhoto, newPhoto, err := s.replacePhoto(c, e, form)
	if err != nil {
		log.Error().Err(err).Str("kind", string(en.Kind)).Msg("failed to store photo")

		return s.renderForm(c.Status(fiber.StatusInternalServerError), en, e, merge(adm.Strings(e), form),
			validation.FieldErrors{photoField: "Upload failed, please try again."})
	}

	errs, err := en.Save(s.db, s.validator, e, create)
	if err != nil || len(errs) > 0 {
		s.removePhoto(c, newPhoto)

		if err != nil {
			return storageError(err, "failed to save row")
		}

		return s.renderForm(c.Status(fiber.StatusBadRequest), en, e, merge(adm.Strings(e), form), errs)
	}

	if oldPhoto != "" {
		s.removePhoto(c, oldPhoto)
	}

	log.Info().Str("kind", string(en.Kind)).Uint64("id", e.GetID()).Str("user", auth.Username(c)).Msg("admin form saved")

	return c.Redirect(listPath(en.Kind))
}

// replacePhoto stores an uploaded photo on e, or clears it when asked.
// It returns the key to delete once the row is saved and the key just stored.
func (s *Service) replacePhoto(c *fiber.Ctx, e models.Entity, form map[string]string) (string, string, error) {
	p, ok := e.(models.PhotoHolder)
	if !ok {
		return "", "", nil
	}

	old := p.PhotoPath()

	fh, err := c.FormFile(photoField)
	if err != nil {
		if form[photoClear] != "" && old != "" {
			p.SetPhotoPath("")

			return old, "", nil
		}

		return "", "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close() //nolint:errcheck // read only

	contentType := fh.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = defaultContentType
	}

	key, err := s.store.Save(c.UserContext(), string(e.Kind()), fh.Filename, f, contentType)
	if err != nil {
		return "", "", err
	}

	p.SetPhotoPath(key)

	return old, key, nil
}

func (s *Service) removePhoto(c *fiber.Ctx, key string) {
	if key == "" {
		return
	}

	if err := s.store.Delete(c.UserContext(), key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to delete photo")
	}
}

func (s *Service) renderForm(c *fiber.Ctx, en *adm.Entry, e models.Entity, values map[string]string, errs validation.FieldErrors) error {
	options, err := s.options(en)
	if err != nil {
		return storageError(err, "failed to load choices")
	}

	var (
		id     = e.GetID()
		title  = "Add " + en.Label
		action = listPath(en.Kind)
	)

	if id != 0 {
		title = "Change " + en.Label
		action = listPath(en.Kind) + "/" + strconv.FormatUint(id, 10)
	}

	nav := navigation.NewContext(title, section, string(en.Kind)).
		AddBreadcrumb("Admin", Path).
		AddBreadcrumb(en.Plural, listPath(en.Kind)).
		AddBreadcrumb(title, "")

	m := fiber.Map{
		"Title":      s.Cfg.Title,
		"User":       auth.CurrentUser(c),
		"Navigation": nav,
		"Entry":      en,
		"ID":         id,
		"Action":     action,
		"Widgets":    forms.Widgets(e.Schema(), values, errs, options),
		"Errors":     errs,
	}

	if msg := firstError(errs); msg != "" {
		m["error"] = msg
	}

	return c.Render(templateForm, m, handler.BaseLayout)
}

// merge lays the raw submitted values over the bound ones so unparsable input is shown back.
func merge(bound, raw map[string]string) map[string]string {
	for k, v := range raw {
		if _, ok := bound[k]; ok {
			bound[k] = v
		}
	}

	return bound
}
