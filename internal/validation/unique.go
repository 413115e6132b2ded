package validation

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
)

// MsgUsernameTaken is reported for a duplicate username at registration.
const MsgUsernameTaken = "A user with that username already exists."

// UniqueMessage is the text for a value already held by another row.
func UniqueMessage(entity, label string) string {
	return fmt.Sprintf("%s with this %s already exists.", entity, label)
}

// Unique checks the unique fields of schema against the rows currently stored.
// values holds the candidate column values by field name, exclude is the id of the row being edited.
func Unique[T any](db *gorm.DB, entity string, schema models.Schema, values map[string]any, exclude uint64) (FieldErrors, error) {
	var out FieldErrors

	for _, f := range schema.UniqueFields() {
		v, ok := values[f.Name]
		if !ok {
			continue
		}

		taken, err := record.Exists[T](db, f.Name, v, exclude)
		if err != nil {
			return nil, err
		}

		if taken {
			if out == nil {
				out = FieldErrors{}
			}

			out.Add(f.Name, UniqueMessage(entity, f.Label))
		}
	}

	return out, nil
}
