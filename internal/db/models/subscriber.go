package models

import "time"

// AnonymousUsername is stored for subscriptions of visitors without a session.
const AnonymousUsername = "Anonymous"

// Subscriber is a newsletter subscription.
//
// Email carries no unique index: the same address may subscribe several times.
type Subscriber struct {
	ID        uint64    `gorm:"primaryKey"        json:"id"`
	Email     string    `gorm:"size:254;not null" json:"email"`
	Username  string    `gorm:"size:150;not null" json:"username"`
	IsActive  bool      `gorm:"not null"          json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the database table name for the Subscriber model.
func (Subscriber) TableName() string {
	return "subscribers"
}

func (s *Subscriber) GetID() uint64   { return s.ID }
func (s *Subscriber) SetID(id uint64) { s.ID = id }
func (*Subscriber) Kind() Kind        { return KindSubscriber }

// Schema returns the fields of a subscriber.
func (*Subscriber) Schema() Schema {
	return Schema{
		{Name: "email", Label: "Email", Input: InputEmail, MaxLength: 254, Required: true},
		{Name: "username", Label: "Username", Input: InputText, MaxLength: 150},
		{Name: "is_active", Label: "Is active", Input: InputCheckbox, Default: "true"},
	}
}
