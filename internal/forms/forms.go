// Package forms defines the visitor and account forms and maps entity schemas to html widgets.
package forms

import (
	"github.com/webfolio/webfolio/internal/validation"
)

// FormIDField carries the form identifier on the public page.
const FormIDField = "form_id"

// Form identifiers of the public page.
const (
	MessageFormID   = "messageForm"
	SubscribeFormID = "subscribeForm"
)

// Message is the contact form.
type Message struct {
	Name    string `form:"name"    validate:"required,max=100"`
	Email   string `form:"email"   validate:"required,email,max=254"`
	Subject string `form:"subject" validate:"required,max=100"`
	Message string `form:"message" validate:"required"`
}

// Subscribe is the newsletter form.
type Subscribe struct {
	Email string `form:"email" validate:"required,email,max=254"`
}

// Login is the login form. The password is never rendered back.
type Login struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Register is the account creation form.
type Register struct {
	Username  string `form:"username"  validate:"required,max=150,username"`
	Email     string `form:"email"     validate:"required,email,max=254"`
	Password1 string `form:"password1" validate:"required"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// Clean drops the passwords before the form is rendered again.
func (r Register) Clean() Register {
	r.Password1 = ""
	r.Password2 = ""

	return r
}

// State is a form as rendered: its data, the errors of the last submission and whether it succeeded.
type State[F any] struct {
	Data    F
	Errors  validation.FieldErrors
	Success bool
}

// Empty returns the unbound state of F.
func Empty[F any]() State[F] {
	var zero F

	return State[F]{Data: zero}
}
