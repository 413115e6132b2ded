// Package content selects and orders what the public page shows.
package content

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
)

// OrderByPosition is the storage ordering of every positioned entity.
const OrderByPosition = "position ASC, id ASC"

// orderedPtr is satisfied by pointers to positioned models.
type orderedPtr[T any] interface {
	*T
	models.Ordered
}

// Visible returns the visible records ordered by position ascending.
// Records sharing a position keep their input order. in is not modified.
func Visible[T any, P orderedPtr[T]](in []T) []T {
	out := lo.Filter(in, func(r T, _ int) bool {
		return P(&r).GetVisible()
	})

	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(P(&a).GetPosition(), P(&b).GetPosition())
	})

	return out
}

// NewestFirst returns messages sorted by creation time descending. in is not modified.
func NewestFirst(in []models.Message) []models.Message {
	out := slices.Clone(in)

	slices.SortStableFunc(out, func(a, b models.Message) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out
}

// ListVisible loads the visible rows of T in position order.
func ListVisible[T any, P orderedPtr[T]](db *gorm.DB) ([]T, error) {
	return record.ListWhere[T](db, OrderByPosition, "is_visible = ?", true)
}
