package admin

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/validation"
)

// ErrWrongKind is returned when an entity is handed to the resource of another kind.
var ErrWrongKind = errors.New("entity does not belong to this resource")

// Resource performs storage operations for one entity kind without exposing its concrete type.
type Resource interface {
	// New returns an entity carrying the defaults of an empty form.
	New() models.Entity
	// Blank returns a zero entity to bind submitted form data into.
	Blank() models.Entity
	List(db *gorm.DB, order string) ([]models.Entity, error)
	Get(db *gorm.DB, id uint64) (models.Entity, error)
	Create(db *gorm.DB, e models.Entity) error
	Save(db *gorm.DB, e models.Entity) error
	Delete(db *gorm.DB, id uint64) error
	UpdateColumn(db *gorm.DB, id uint64, column string, value any) error
	// Unique reports unique fields of e already used by another row.
	Unique(db *gorm.DB, label string, e models.Entity) (validation.FieldErrors, error)
}

type entityPtr[T any] interface {
	*T
	models.Entity
}

type resource[T any, P entityPtr[T]] struct {
	defaults func() P
}

// NewResource returns the Resource of T. defaults builds the entity of an empty form,
// nil means the zero value.
func NewResource[T any, P entityPtr[T]](defaults func() P) Resource {
	if defaults == nil {
		defaults = func() P { return P(new(T)) }
	}

	return resource[T, P]{defaults: defaults}
}

func (r resource[T, P]) New() models.Entity {
	return r.defaults()
}

func (resource[T, P]) Blank() models.Entity {
	return P(new(T))
}

func (resource[T, P]) List(db *gorm.DB, order string) ([]models.Entity, error) {
	rows, err := record.List[T](db, order)
	if err != nil {
		return nil, err
	}

	out := make([]models.Entity, len(rows))
	for i := range rows {
		out[i] = P(&rows[i])
	}

	return out, nil
}

func (resource[T, P]) Get(db *gorm.DB, id uint64) (models.Entity, error) {
	row, err := record.Get[T](db, id)
	if err != nil {
		return nil, err
	}

	return P(row), nil
}

func (r resource[T, P]) Create(db *gorm.DB, e models.Entity) error {
	p, err := r.cast(e)
	if err != nil {
		return err
	}

	return record.Create[T](db, p)
}

func (r resource[T, P]) Save(db *gorm.DB, e models.Entity) error {
	p, err := r.cast(e)
	if err != nil {
		return err
	}

	return record.Save[T](db, p)
}

func (resource[T, P]) Delete(db *gorm.DB, id uint64) error {
	return record.Delete[T](db, id)
}

func (resource[T, P]) UpdateColumn(db *gorm.DB, id uint64, column string, value any) error {
	return record.UpdateColumn[T](db, id, column, value)
}

func (resource[T, P]) Unique(db *gorm.DB, label string, e models.Entity) (validation.FieldErrors, error) {
	return validation.Unique[T](db, label, e.Schema(), Values(e), e.GetID())
}

func (resource[T, P]) cast(e models.Entity) (*T, error) {
	p, ok := e.(P)
	if !ok {
		return nil, ErrWrongKind
	}

	return (*T)(p), nil
}
