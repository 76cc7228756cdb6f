package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockStore runs the Postgres dialector over sqlmock so driver errors can
// be fabricated with exact SQLSTATE codes.
func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return New(gdb), mock
}

func TestDuplicateKeyClassifiedByCode(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(&pgconn.PgError{
		Code:    "23505",
		Message: "duplicate key value violates unique constraint \"uni_users_username\"",
	})

	_, err := s.CreateUser("alice", "alice@example.com", "pass-one")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageFaultIsNotDuplicate(t *testing.T) {
	s, mock := newMockStore(t)
	// An admin-initiated shutdown mentions nothing about constraints, but a
	// message-sniffing classifier could still be fooled by a crafted value.
	mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(&pgconn.PgError{
		Code:    "57P01",
		Message: "terminating connection due to duplicate key administrator command",
	})

	_, err := s.CreateUser("alice", "alice@example.com", "pass-one")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateIdentity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
