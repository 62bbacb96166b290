// Package testutil provides in-memory databases for tests.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/store"
	"github.com/fsbteam/chat/internal/store/migrations"
)

// NewTestDB opens a private in-memory SQLite database, migrated to the
// latest schema and closed at the end of the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// every new connection to :memory: is a fresh, empty database
	db.SetMaxOpenConns(1)
	require.NoError(t, migrations.Run(db), "migrate test database")
	return db
}

// NewTestStore returns a store over NewTestDB with cheap password hashing.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t), store.WithHashCost(bcrypt.MinCost))
}

// SeedUsers registers each username with the password "secret".
func SeedUsers(t *testing.T, s domain.ChatStore, usernames ...string) []domain.User {
	t.Helper()

	users := make([]domain.User, 0, len(usernames))
	for _, name := range usernames {
		u, err := s.CreateUser(name, "secret")
		require.NoError(t, err, "failed to seed user %s", name)
		users = append(users, u)
	}
	return users
}
