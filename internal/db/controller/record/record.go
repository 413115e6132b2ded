// Package record provides generic CRUD operations for the content models.
package record

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const idQueryPattern = "id = ?"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned when no row matches the id.
	ErrNotFound = errors.New("record not found")
	// ErrIntegrity is wrapped by every constraint violation.
	ErrIntegrity = errors.New("integrity error")
	// ErrDuplicate is returned when a unique constraint rejects the write.
	ErrDuplicate = fmt.Errorf("%w: unique constraint violated", ErrIntegrity)
	// ErrProtected is returned when a foreign key forbids the write or delete.
	ErrProtected = fmt.Errorf("%w: record is referenced by other records", ErrIntegrity)
	// ErrColumnEmpty is returned when a single column update names no column.
	ErrColumnEmpty = errors.New("column name cannot be empty")
)

// Get retrieves a row by its ID.
func Get[T any](db *gorm.DB, id uint64) (*T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row T

	result := db.First(&row, id)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &row, nil
}

// List retrieves all rows sorted by order, e.g. "position ASC". An empty order sorts by id.
func List[T any](db *gorm.DB, order string) ([]T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if order == "" {
		order = "id ASC"
	}

	var rows []T

	result := db.Order(order).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// ListWhere retrieves the rows matching query sorted by order.
func ListWhere[T any](db *gorm.DB, order string, query any, args ...any) ([]T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return List[T](db.Where(query, args...), order)
}

// First returns the row with the lowest id.
func First[T any](db *gorm.DB) (*T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row T

	result := db.Order("id ASC").Limit(1).Find(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return &row, nil
}

// Create inserts row. Associations are never written along.
func Create[T any](db *gorm.DB, row *T) error {
	if db == nil {
		return ErrDBNil
	}

	return translate(db.Omit(clause.Associations).Create(row).Error)
}

// Save updates every column of an existing row.
func Save[T any](db *gorm.DB, row *T) error {
	if db == nil {
		return ErrDBNil
	}

	return translate(db.Omit(clause.Associations).Save(row).Error)
}

// UpdateColumn sets a single column of the row with the given ID.
func UpdateColumn[T any](db *gorm.DB, id uint64, column string, value any) error {
	if db == nil {
		return ErrDBNil
	}

	if column == "" {
		return ErrColumnEmpty
	}

	var row T

	result := db.Model(&row).Where(idQueryPattern, id).Update(column, value)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		if _, err := Get[T](db, id); err != nil {
			return err
		}
	}

	return nil
}

// Delete deletes a row by ID.
func Delete[T any](db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	var row T

	result := db.Delete(&row, id)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Exists reports whether another row than exclude has column equal to value.
func Exists[T any](db *gorm.DB, column string, value any, exclude uint64) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	var (
		row   T
		count int64
	)

	q := db.Model(&row).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if exclude != 0 {
		q = q.Where("id <> ?", exclude)
	}

	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// translate maps driver errors to the package sentinels.
// TranslateError covers mysql and postgres, sqlite reports plain messages.
func translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrProtected
	}

	msg := err.Error()

	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "Duplicate entry"),
		strings.Contains(msg, "duplicate key value violates"):
		return ErrDuplicate
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "a foreign key constraint fails"),
		strings.Contains(msg, "violates foreign key constraint"):
		return ErrProtected
	}

	return err
}
