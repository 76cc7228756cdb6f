package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateIdentity reports a username or email that is already taken.
	ErrDuplicateIdentity = errors.New("username or email already exists")

	// ErrNotFound reports a row that is absent or not owned by the caller.
	// Ownership mismatch and nonexistence are deliberately indistinguishable.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so callers cannot probe for registered usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// classify maps engine errors onto the store's error set. Duplicate keys are
// recognized from the driver's structured error code (surfaced by gorm's
// TranslateError), never by matching message text.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateIdentity
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("storage: %w", err)
	}
}
