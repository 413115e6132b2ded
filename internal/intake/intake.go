// Package intake validates and stores the forms submitted by visitors.
package intake

import (
	"errors"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/validation"
)

// MsgIntegrity is reported when storage rejects a submission that passed validation.
const MsgIntegrity = "This submission conflicts with existing data. Please try again."

// Result is the outcome of one submission.
// Either Errors is non-empty and nothing was stored, or Record holds the stored row.
type Result[Rec any] struct {
	Record Rec
	Errors validation.FieldErrors
}

// OK reports whether the submission was stored.
func (r Result[Rec]) OK() bool {
	return len(r.Errors) == 0
}

// Handle runs validate and, only when it reports nothing, persist.
// Integrity errors from persist become a non-field error, any other error is returned.
func Handle[In, Rec any](in In, validate func(In) validation.FieldErrors, persist func(In) (Rec, error)) (Result[Rec], error) {
	var res Result[Rec]

	if errs := validate(in); len(errs) > 0 {
		res.Errors = errs

		return res, nil
	}

	rec, err := persist(in)
	if err != nil {
		if errors.Is(err, record.ErrIntegrity) {
			res.Errors = validation.FieldErrors{validation.NonFieldKey: MsgIntegrity}

			return res, nil
		}

		return res, err
	}

	res.Record = rec

	return res, nil
}
