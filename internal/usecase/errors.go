package usecase

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound marks lookups for records that do not exist. Handlers map
	// it to 404.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput marks rejected payloads. Handlers map it to 400.
	ErrInvalidInput = errors.New("invalid input")
)

// notFound translates the persistence layer's missing-record error.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
