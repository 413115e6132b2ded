// Package admin describes how staff list and edit each content kind.
package admin

import (
	"strconv"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/content"
	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/forms"
)

// OptionsFunc loads the choices of select fields by field name.
type OptionsFunc func(db *gorm.DB) (map[string][]forms.Option, error)

// Entry is the admin configuration of one kind.
type Entry struct {
	Kind   models.Kind
	Label  string
	Plural string
	// Columns are the list view columns, "id" included.
	Columns []string
	// Editable columns are edited in place from the list view.
	Editable []string
	// Filters are the fields the list view can be narrowed by.
	Filters []string
	Order   string
	// Prepopulate maps a field to the field it is derived from when left blank.
	Prepopulate map[string]string
	// ReadOnly entries have no create or edit form.
	ReadOnly bool
	Options  OptionsFunc
	// Preload names the associations shown in list columns.
	Preload []string
	// Arrange reorders a loaded list in memory.
	Arrange  func([]models.Entity) []models.Entity
	Resource Resource
}

// IsEditable reports whether field is edited from the list view.
func (e *Entry) IsEditable(field string) bool {
	return lo.Contains(e.Editable, field)
}

// Registry holds the entries by kind, in menu order.
type Registry struct {
	entries map[models.Kind]*Entry
	order   []models.Kind
}

// NewRegistry returns the registry of every content kind.
func NewRegistry() *Registry {
	r := &Registry{entries: map[models.Kind]*Entry{}}

	r.add(&Entry{
		Kind: models.KindCategory, Label: "Project category", Plural: "Project categories",
		Columns:     []string{"id", "name", "slug", "position", "is_visible"},
		Editable:    []string{"name", "position", "is_visible"},
		Filters:     []string{"is_visible"},
		Order:       content.OrderByPosition,
		Prepopulate: map[string]string{"slug": "name"},
		Resource:    NewResource(models.NewProjectCategory),
	})

	r.add(&Entry{
		Kind: models.KindProject, Label: "Project", Plural: "Projects",
		Columns:     []string{"id", "name", "category", "position", "is_visible"},
		Editable:    []string{"position", "is_visible"},
		Filters:     []string{"is_visible", "category_id"},
		Order:       content.OrderByPosition,
		Prepopulate: map[string]string{"slug": "name"},
		Options:     categoryOptions,
		Preload:     []string{"Category"},
		Resource:    NewResource(models.NewProject),
	})

	r.add(&Entry{
		Kind: models.KindEmployee, Label: "Employee", Plural: "Employees",
		Columns:  []string{"id", "name", "surname", "appointment", "position", "is_visible"},
		Editable: []string{"position", "is_visible"},
		Filters:  []string{"is_visible"},
		Order:    content.OrderByPosition,
		Resource: NewResource(models.NewEmployee),
	})

	r.add(&Entry{
		Kind: models.KindSkill, Label: "Skill", Plural: "Skills",
		Columns:  []string{"id", "name", "progress", "position", "is_visible"},
		Editable: []string{"progress", "position", "is_visible"},
		Filters:  []string{"is_visible"},
		Order:    content.OrderByPosition,
		Resource: NewResource(models.NewSkill),
	})

	r.add(&Entry{
		Kind: models.KindService, Label: "Service", Plural: "Services",
		Columns:  []string{"id", "title", "position", "is_visible"},
		Editable: []string{"position", "is_visible"},
		Filters:  []string{"is_visible"},
		Order:    content.OrderByPosition,
		Resource: NewResource(models.NewService),
	})

	r.add(&Entry{
		Kind: models.KindFAQ, Label: "Frequently question", Plural: "Frequently questions",
		Columns:  []string{"id", "question", "position", "is_visible"},
		Editable: []string{"position", "is_visible"},
		Filters:  []string{"is_visible"},
		Order:    content.OrderByPosition,
		Resource: NewResource(models.NewFrequentlyQuestion),
	})

	r.add(&Entry{
		Kind: models.KindGeneralInfo, Label: "General info", Plural: "General info",
		Columns:  []string{"id", "phone", "email"},
		Order:    "id ASC",
		Resource: NewResource[models.GeneralInfo](nil),
	})

	r.add(&Entry{
		Kind: models.KindMessage, Label: "Message", Plural: "Messages",
		Columns:  []string{"id", "name", "email", "subject", "is_processed", "created_at"},
		Filters:  []string{"is_processed"},
		Order:    "created_at DESC, id DESC",
		ReadOnly: true,
		Arrange:  newestFirst,
		Resource: NewResource[models.Message](nil),
	})

	r.add(&Entry{
		Kind: models.KindSubscriber, Label: "Subscriber", Plural: "Subscribers",
		Columns:  []string{"id", "email", "username", "is_active", "created_at"},
		Editable: []string{"is_active"},
		Filters:  []string{"is_active"},
		Order:    "id ASC",
		ReadOnly: true,
		Resource: NewResource[models.Subscriber](nil),
	})

	return r
}

func (r *Registry) add(e *Entry) {
	r.entries[e.Kind] = e
	r.order = append(r.order, e.Kind)
}

// Get returns the entry of kind.
func (r *Registry) Get(kind models.Kind) (*Entry, bool) {
	e, ok := r.entries[kind]

	return e, ok
}

// Entries returns all entries in menu order.
func (r *Registry) Entries() []*Entry {
	return lo.Map(r.order, func(k models.Kind, _ int) *Entry {
		return r.entries[k]
	})
}

func categoryOptions(db *gorm.DB) (map[string][]forms.Option, error) {
	cats, err := record.List[models.ProjectCategory](db, content.OrderByPosition)
	if err != nil {
		return nil, err
	}

	return map[string][]forms.Option{
		"category_id": lo.Map(cats, func(c models.ProjectCategory, _ int) forms.Option {
			return forms.Option{Value: strconv.FormatUint(c.ID, 10), Label: c.Name}
		}),
	}, nil
}

func newestFirst(in []models.Entity) []models.Entity {
	msgs := lo.FilterMap(in, func(e models.Entity, _ int) (models.Message, bool) {
		m, ok := e.(*models.Message)
		if !ok {
			return models.Message{}, false
		}

		return *m, true
	})

	sorted := content.NewestFirst(msgs)

	return lo.Map(sorted, func(_ models.Message, i int) models.Entity {
		return &sorted[i]
	})
}
