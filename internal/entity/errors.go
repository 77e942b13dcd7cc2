package entity

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrDanglingReference: a foreign key does not resolve to an existing row.
	ErrDanglingReference = errors.New("referenced record does not exist")
	// ErrInvalidEnumValue: an enumerated field holds an unrecognized variant.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrNotFound: the requested record does not exist.
	ErrNotFound = errors.New("record not found")
)

// MustExist resolves a foreign key reference at write time. dest must be a
// pointer to the referenced model.
func MustExist(db *gorm.DB, dest any, id uint) error {
	if err := db.First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %T id %d", ErrDanglingReference, dest, id)
		}
		return err
	}
	return nil
}

// AsNotFound converts gorm's record-not-found into the store taxonomy.
func AsNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
