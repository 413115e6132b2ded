package admin

import (
	"encoding/json"

	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/validation"
)

// Bind copies the submitted form onto e, field by field of its schema.
// File inputs are skipped, an absent checkbox means false. Unparsable values
// are reported and leave the field untouched.
func Bind(e models.Entity, form map[string]string) validation.FieldErrors {
	var (
		errs   = validation.FieldErrors{}
		values = map[string]any{}
	)

	for _, f := range e.Schema() {
		if f.Input == models.InputFile {
			continue
		}

		raw, present := form[f.Name]

		switch f.Input {
		case models.InputCheckbox:
		case models.InputNumber, models.InputSelect:
			if raw == "" {
				if f.Required {
					errs.Add(f.Name, validation.MsgRequired)
				}

				continue
			}
		default:
			if !present {
				continue
			}
		}

		v, err := Parse(f, raw)
		if err != nil {
			if f.Input == models.InputSelect {
				errs.Add(f.Name, MsgInvalidChoice)
			} else {
				errs.Add(f.Name, validation.MsgInvalidNumber)
			}

			continue
		}

		values[f.Name] = v
	}

	raw, err := json.Marshal(values)
	if err == nil {
		err = json.Unmarshal(raw, e)
	}

	if err != nil {
		errs.Add(validation.NonFieldKey, validation.MsgInvalid)
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
