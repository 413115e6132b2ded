package admin

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	adm "github.com/webfolio/webfolio/internal/admin"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/forms"
	"github.com/webfolio/webfolio/internal/validation"
)

// Column is a list view header.
type Column struct {
	Name  string
	Label string
}

// Cell is one value of a list row. Editable cells render an input of the inline form.
type Cell struct {
	Name     string
	Value    string
	Editable bool
	Input    models.InputType
	Checked  bool
}

// Row is one entity of a list view.
type Row struct {
	ID     uint64
	Cells  []Cell
	Errors validation.FieldErrors
}

// Filter is a list view filter with its choices, the current one selected.
type Filter struct {
	Name    string
	Label   string
	Choices []forms.Option
}

// MenuItem is an entry of the admin index.
type MenuItem struct {
	Kind     models.Kind
	Plural   string
	Count    int64
	ReadOnly bool
}

func columnLabel(schema models.Schema, name string) string {
	if name == "id" {
		return "ID"
	}

	if f, ok := schema.Field(name); ok {
		return f.Label
	}

	label := strings.ReplaceAll(name, "_", " ")

	return strings.ToUpper(label[:1]) + label[1:]
}

func columns(en *adm.Entry) []Column {
	schema := en.Resource.New().Schema()

	return lo.Map(en.Columns, func(name string, _ int) Column {
		return Column{Name: name, Label: columnLabel(schema, name)}
	})
}

func rows(en *adm.Entry, list []models.Entity, errs map[uint64]validation.FieldErrors) []Row {
	return lo.Map(list, func(e models.Entity, _ int) Row {
		var (
			vals   = adm.Values(e)
			schema = e.Schema()
		)

		r := Row{ID: e.GetID(), Errors: errs[e.GetID()]}

		for _, name := range en.Columns {
			c := Cell{Name: name, Value: adm.Format(vals[name])}

			if f, ok := schema.Field(name); ok && en.IsEditable(name) {
				c.Editable = true
				c.Input = f.Input
				c.Checked = c.Value == "true"
			}

			r.Cells = append(r.Cells, c)
		}

		return r
	})
}

func filters(en *adm.Entry, options map[string][]forms.Option, query map[string]string) []Filter {
	schema := en.Resource.New().Schema()

	return lo.FilterMap(en.Filters, func(name string, _ int) (Filter, bool) {
		f, ok := schema.Field(name)
		if !ok {
			return Filter{}, false
		}

		choices := []forms.Option{{Value: "", Label: "All"}}

		switch f.Input {
		case models.InputCheckbox:
			choices = append(choices, forms.Option{Value: "true", Label: "Yes"}, forms.Option{Value: "false", Label: "No"})
		case models.InputSelect:
			choices = append(choices, options[name]...)
		}

		for i := range choices {
			choices[i].Selected = choices[i].Value == query[name]
		}

		return Filter{Name: name, Label: f.Label, Choices: choices}, true
	})
}

// firstError returns the non-field error or else the error of the first field by name.
func firstError(errs validation.FieldErrors) string {
	if msg := errs.NonField(); msg != "" {
		return msg
	}

	keys := lo.Keys(errs)
	slices.Sort(keys)

	if len(keys) == 0 {
		return ""
	}

	return errs[keys[0]]
}
