// Package models contains database model definitions.
package models

// Kind identifies an entity type in urls, the admin registry and media paths.
type Kind string

// Entity kinds.
const (
	KindCategory    Kind = "categories"
	KindProject     Kind = "projects"
	KindEmployee    Kind = "employees"
	KindSkill       Kind = "skills"
	KindMessage     Kind = "messages"
	KindGeneralInfo Kind = "general-info"
	KindFAQ         Kind = "faqs"
	KindService     Kind = "services"
	KindSubscriber  Kind = "subscribers"
)

// Entity is implemented by every content model.
type Entity interface {
	GetID() uint64
	SetID(id uint64)
	Kind() Kind
	Schema() Schema
}

// Ordered is implemented by entities shown publicly in position order.
type Ordered interface {
	GetPosition() int
	GetVisible() bool
}

// PhotoHolder is implemented by entities carrying an uploaded photo.
type PhotoHolder interface {
	PhotoPath() string
	SetPhotoPath(p string)
}

// Sluggable is implemented by entities whose slug is prepopulated from their name.
type Sluggable interface {
	SlugSource() string
	GetSlug() string
	SetSlug(slug string)
}
