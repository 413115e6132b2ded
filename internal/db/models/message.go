package models

import "time"

// Message is a contact form submission.
//
// Visitors only create messages. IsProcessed is flipped by staff in the admin area.
type Message struct {
	ID          uint64    `gorm:"primaryKey"         json:"id"`
	Name        string    `gorm:"size:100;not null"  json:"name"`
	Email       string    `gorm:"size:254;not null"  json:"email"`
	Subject     string    `gorm:"size:100;not null"  json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	IsProcessed bool      `gorm:"not null"           json:"is_processed"`
	CreatedAt   time.Time `gorm:"index"              json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Message model.
func (Message) TableName() string {
	return "messages"
}

func (m *Message) GetID() uint64   { return m.ID }
func (m *Message) SetID(id uint64) { m.ID = id }
func (*Message) Kind() Kind        { return KindMessage }

// Schema returns the fields of a message. Only is_processed is editable by staff.
func (*Message) Schema() Schema {
	return Schema{
		{Name: "name", Label: "Name", Input: InputText, MaxLength: 100, Required: true},
		{Name: "email", Label: "Email", Input: InputEmail, MaxLength: 254, Required: true},
		{Name: "subject", Label: "Subject", Input: InputText, MaxLength: 100, Required: true},
		{Name: "message", Label: "Message", Input: InputTextarea, Required: true},
		{Name: "is_processed", Label: "Is processed", Input: InputCheckbox},
	}
}
