// Package store is the persistence layer. A Store wraps a single long-lived
// database handle constructed once at process start and passed explicitly to
// every component that needs it.
package store

import (
	"context"
	"fmt"
	"time"

	"spendtrack/models"

	"gorm.io/gorm"
)

// queryTimeout bounds every store operation.
const queryTimeout = 5 * time.Second

type Store struct {
	db *gorm.DB
}

// Open connects through the given dialector. TranslateError is enabled so
// unique-constraint violations arrive as gorm.ErrDuplicatedKey from the
// engine's structured error code, regardless of the underlying driver.
func Open(dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Store{db: db}, nil
}

// New wraps an existing gorm handle. Useful for tests that build their own
// connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the users and expenses tables. Models migrate
// individually so a failure on one does not block the other.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	if err := s.db.AutoMigrate(&models.Expense{}); err != nil {
		return fmt.Errorf("migrate expenses: %w", err)
	}
	return nil
}

// session returns a handle bound to a fresh timeout context. The context is
// detached from the request, so a client disconnect cannot abort a write that
// has already been issued.
func (s *Store) session() (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	return s.db.WithContext(ctx), cancel
}
