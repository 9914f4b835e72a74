package storage

import (
	"errors"
	"strings"
)

// ErrNotFound keeps storage-specific 404s consistent across every entity
// store. Services translate it into entity-specific not-found errors.
var ErrNotFound = errors.New("record not found")

// IsUniqueViolation reports whether err is a SQLite uniqueness violation.
// The driver exposes constraint failures only through the error text, so the
// match is on the constant prefix SQLite itself emits.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
