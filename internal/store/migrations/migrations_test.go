package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/fsbteam/chat/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	// each pooled connection would see its own empty database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad_Embedded(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)

	var names []string
	for _, m := range all {
		names = append(names, m.String())
		require.NotEmpty(t, m.SQL, m.String())
	}
	require.Equal(t, []string{"01_users", "02_friends", "03_groups", "04_messages"}, names)
}

func TestRun_AppliesEverythingOnce(t *testing.T) {
	db := openMemory(t)

	pending, err := migrations.Pending(db)
	require.NoError(t, err)
	require.Len(t, pending, 4)

	version, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Zero(t, version)

	require.NoError(t, migrations.Run(db))
	require.NoError(t, migrations.Run(db))

	pending, err = migrations.Pending(db)
	require.NoError(t, err)
	require.Empty(t, pending)

	version, err = migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, 4, version)

	var recorded int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&recorded))
	require.Equal(t, 4, recorded)
}

func TestRun_CreatesSchema(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	for _, table := range []string{
		"schema_migrations", "users", "friend_requests", "friendships",
		"chat_groups", "group_members", "group_invites", "messages",
	} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}
}

func TestRun_RoleConstraint(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	_, err := db.Exec(`INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES (1, 1, 'emperor', 'now')`)
	require.Error(t, err, "unknown role should violate the CHECK constraint")
}
