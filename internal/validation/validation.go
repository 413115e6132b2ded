// Package validation turns validator/v10 results into per-field messages for the html forms.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages shown next to form fields.
const (
	MsgRequired      = "This field is required."
	MsgInvalidEmail  = "Invalid email"
	MsgInvalidURL    = "Enter a valid URL."
	MsgInvalidSlug   = "Enter a valid slug."
	MsgInvalidNumber = "Enter a whole number."
	MsgPasswordMatch = "Passwords do not match"
	MsgInvalidUser   = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	MsgInvalid       = "Enter a valid value."
)

// NonFieldKey collects errors that belong to the form rather than one field.
const NonFieldKey = "__all__"

var (
	slugRe     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
)

// FieldErrors maps a form field name to its error message.
type FieldErrors map[string]string

// Add sets the message of field unless the field already has one.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// NonField returns the form level error, if any.
func (fe FieldErrors) NonField() string {
	return fe[NonFieldKey]
}

// Validator wraps a configured validator.Validate.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator reporting fields by their form tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0] //nolint:mnd
		if name == "-" {
			return ""
		}

		if name == "" {
			return fld.Name
		}

		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool { //nolint:errcheck // static tag
		return slugRe.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool { //nolint:errcheck // static tag
		return usernameRe.MatchString(fl.Field().String())
	})

	return &Validator{v: v}
}

// Struct validates s and returns nil when it is valid.
func (v *Validator) Struct(s any) FieldErrors {
	return collect(v.v.Struct(s), "")
}

// Var validates a single value against rules and reports it as field.
func (v *Validator) Var(field string, value any, rules string) FieldErrors {
	if rules == "" {
		return nil
	}

	return collect(v.v.Var(value, rules), field)
}

func collect(err error, field string) FieldErrors {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return FieldErrors{NonFieldKey: err.Error()}
	}

	out := FieldErrors{}

	for _, ve := range ves {
		name := field
		if name == "" {
			name = ve.Field()
		}

		out.Add(name, Message(ve))
	}

	return out
}

// Message renders the human readable text of a single validation failure.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "email":
		return MsgInvalidEmail
	case "url", "http_url":
		return MsgInvalidURL
	case "slug":
		return MsgInvalidSlug
	case "username":
		return MsgInvalidUser
	case "eqfield":
		return MsgPasswordMatch
	case "max", "lte":
		if isNumber(fe.Kind()) {
			return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
		}

		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min", "gte":
		if isNumber(fe.Kind()) {
			return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
		}

		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	default:
		return MsgInvalid
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
