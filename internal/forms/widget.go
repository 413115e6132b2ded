package forms

import (
	"strconv"

	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/validation"
)

// Option is one choice of a select widget.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Widget is a schema field ready to be rendered by the admin form template.
type Widget struct {
	models.Field
	Value   string
	Checked bool
	Error   string
	Options []Option
}

// Widgets builds the widgets of schema. values holds the current field values as strings,
// missing values fall back to the field default. options feeds select fields by name.
func Widgets(schema models.Schema, values map[string]string, errs validation.FieldErrors, options map[string][]Option) []Widget {
	out := make([]Widget, 0, len(schema))

	for _, f := range schema {
		v, ok := values[f.Name]
		if !ok {
			v = f.Default
		}

		w := Widget{Field: f, Value: v, Error: errs[f.Name]}

		switch f.Input {
		case models.InputCheckbox:
			w.Checked, _ = strconv.ParseBool(v) //nolint:errcheck // unparsable means unchecked
		case models.InputSelect:
			for _, o := range options[f.Name] {
				o.Selected = o.Value == v
				w.Options = append(w.Options, o)
			}
		case models.InputPassword:
			w.Value = ""
		}

		out = append(out, w)
	}

	return out
}
