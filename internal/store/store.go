// Package store persists households, lists, archives, suggestions, and
// user records in SQLite. Households are document-style rows: the member
// and active-list arrays are JSON fields read and written whole, so the
// household row is the unit of contention for every list mutation.
package store

import (
	"fmt"

	"github.com/gustavor29/Tablon/internal/apperr"
)

// persistence wraps a driver error so callers can classify it with
// errors.Is(err, apperr.ErrPersistence).
func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperr.ErrPersistence, err)
}
