package admin

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/validation"
)

// Messages of the admin forms.
const (
	MsgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
	MsgProtected     = "This object is referenced by other objects and can't be deleted."
	MsgConflict      = "The data was changed concurrently. Please try again."
	MsgNotEditable   = "This field can't be edited from the list."
)

// ErrNotEditable is returned for inline updates of columns outside Entry.Editable.
var ErrNotEditable = errors.New("field is not list editable")

// List loads the rows matching the filters in query, e.g. {"is_visible": "true"}.
// Unknown or unparsable filters are ignored.
func (en *Entry) List(db *gorm.DB, query map[string]string) ([]models.Entity, error) {
	if db == nil {
		return nil, record.ErrDBNil
	}

	schema := en.Resource.New().Schema()

	for _, name := range en.Filters {
		raw, ok := query[name]
		if !ok || raw == "" {
			continue
		}

		f, ok := schema.Field(name)
		if !ok {
			continue
		}

		v, err := Parse(f, raw)
		if err != nil {
			continue
		}

		db = db.Where(clause.Eq{Column: clause.Column{Name: name}, Value: v})
	}

	for _, assoc := range en.Preload {
		db = db.Preload(assoc)
	}

	rows, err := en.Resource.List(db, en.Order)
	if err != nil {
		return nil, err
	}

	if en.Arrange != nil {
		rows = en.Arrange(rows)
	}

	return rows, nil
}

// fillDerived fills blank derived fields, e.g. a slug from the name.
func (en *Entry) fillDerived(e models.Entity) {
	s, ok := e.(models.Sluggable)
	if !ok || en.Prepopulate["slug"] == "" || s.GetSlug() != "" {
		return
	}

	maxLen := 0
	if f, ok := e.Schema().Field("slug"); ok {
		maxLen = f.MaxLength
	}

	s.SetSlug(Slugify(s.SlugSource(), maxLen))
}

// Save validates e and creates or updates it.
// Field errors are returned for anything the staff user can correct.
func (en *Entry) Save(db *gorm.DB, v *validation.Validator, e models.Entity, create bool) (validation.FieldErrors, error) {
	en.fillDerived(e)

	if errs := v.Struct(e); len(errs) > 0 {
		return errs, nil
	}

	errs, err := en.Resource.Unique(db, en.Label, e)
	if err != nil {
		return nil, err
	}

	if len(errs) > 0 {
		return errs, nil
	}

	if create {
		err = en.Resource.Create(db, e)
	} else {
		err = en.Resource.Save(db, e)
	}

	if err == nil {
		log.Info().Str("kind", string(en.Kind)).Uint64("id", e.GetID()).Bool("created", create).Msg("admin saved record")

		return nil, nil
	}

	return en.integrityErrors(db, e, err)
}

// Inline updates the list editable fields present in form on the row id.
// All fields are validated before any is written, the writes share one transaction.
func (en *Entry) Inline(db *gorm.DB, v *validation.Validator, id uint64, form map[string]string) (validation.FieldErrors, error) {
	current, err := en.Resource.Get(db, id)
	if err != nil {
		return nil, err
	}

	var (
		schema = current.Schema()
		values = map[string]any{}
		errs   = validation.FieldErrors{}
	)

	for _, name := range en.Editable {
		f, ok := schema.Field(name)
		if !ok {
			continue
		}

		raw, present := form[name]
		if !present && f.Input != models.InputCheckbox {
			continue
		}

		val, err := Parse(f, raw)
		if err != nil {
			errs.Add(name, validation.MsgInvalidNumber)

			continue
		}

		for k, m := range v.Var(name, val, f.Rules) {
			errs.Add(k, m)
		}

		values[name] = val
	}

	for name := range form {
		if _, ok := schema.Field(name); ok && !en.IsEditable(name) {
			errs.Add(name, MsgNotEditable)
		}
	}

	if len(errs) > 0 {
		return errs, nil
	}

	uniq, err := uniqueValues(db, en, current, values)
	if err != nil || len(uniq) > 0 {
		return uniq, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for name, val := range values {
			if err := en.Resource.UpdateColumn(tx, id, name, val); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return en.integrityErrors(db, current, err)
	}

	return nil, nil
}

// Delete removes the row id. A row still referenced yields a non-field error.
func (en *Entry) Delete(db *gorm.DB, id uint64) (validation.FieldErrors, error) {
	err := en.Resource.Delete(db, id)
	if errors.Is(err, record.ErrProtected) {
		return validation.FieldErrors{validation.NonFieldKey: MsgProtected}, nil
	}

	return nil, err
}

// integrityErrors maps a failed write to field errors when storage rejected it.
func (en *Entry) integrityErrors(db *gorm.DB, e models.Entity, err error) (validation.FieldErrors, error) {
	switch {
	case errors.Is(err, record.ErrDuplicate):
		// lost a race against another writer, name the field if it can be found
		errs, uerr := en.Resource.Unique(db, en.Label, e)
		if uerr == nil && len(errs) > 0 {
			return errs, nil
		}

		return validation.FieldErrors{validation.NonFieldKey: MsgConflict}, nil
	case errors.Is(err, record.ErrProtected):
		for _, f := range e.Schema() {
			if f.Input == models.InputSelect {
				return validation.FieldErrors{f.Name: MsgInvalidChoice}, nil
			}
		}

		return validation.FieldErrors{validation.NonFieldKey: MsgProtected}, nil
	default:
		return nil, err
	}
}

func uniqueValues(db *gorm.DB, en *Entry, current models.Entity, values map[string]any) (validation.FieldErrors, error) {
	var out validation.FieldErrors

	for _, f := range current.Schema().UniqueFields() {
		v, ok := values[f.Name]
		if !ok {
			continue
		}

		taken, err := existsFor(db, en, f.Name, v, current.GetID())
		if err != nil {
			return nil, err
		}

		if taken {
			if out == nil {
				out = validation.FieldErrors{}
			}

			out.Add(f.Name, validation.UniqueMessage(en.Label, f.Label))
		}
	}

	return out, nil
}

func existsFor(db *gorm.DB, en *Entry, column string, value any, exclude uint64) (bool, error) {
	var count int64

	err := db.Model(en.Resource.Blank()).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Where("id <> ?", exclude).
		Count(&count).Error

	return count > 0, err
}

// Parse converts a submitted string to the go value of field f.
func Parse(f models.Field, raw string) (any, error) {
	switch f.Input {
	case models.InputCheckbox:
		if raw == "" {
			return false, nil
		}

		if raw == "on" {
			return true, nil
		}

		return strconv.ParseBool(raw)
	case models.InputNumber:
		return strconv.Atoi(raw)
	case models.InputSelect:
		return strconv.ParseUint(raw, 10, 64)
	default:
		return raw, nil
	}
}
