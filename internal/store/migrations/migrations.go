// Package migrations applies the versioned chat schema embedded from sql/.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"

	"github.com/fsbteam/chat/internal/log"
)

//go:embed sql/*.sql
var embedded embed.FS

// Migration is one schema change. Files are named NN_description.sql.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

func (m Migration) String() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Description)
}

const schemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations in version order.
func Load() ([]Migration, error) {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		return nil, err
	}
	return load(sub)
}

func load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	all := make([]Migration, 0, len(names))
	byVersion := make(map[int]string, len(names))
	for _, name := range names {
		m, err := parseName(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if other, dup := byVersion[m.Version]; dup {
			return nil, fmt.Errorf("%s: version %d already used by %s", name, m.Version, other)
		}
		byVersion[m.Version] = name

		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		m.SQL = string(body)
		all = append(all, m)
	}

	slices.SortFunc(all, func(a, b Migration) int { return a.Version - b.Version })
	return all, nil
}

func parseName(name string) (Migration, error) {
	num, desc, ok := strings.Cut(strings.TrimSuffix(name, ".sql"), "_")
	if !ok || desc == "" {
		return Migration{}, fmt.Errorf("expected NN_description.sql")
	}
	version, err := strconv.Atoi(num)
	if err != nil || version <= 0 {
		return Migration{}, fmt.Errorf("bad version %q", num)
	}
	return Migration{Version: version, Description: desc}, nil
}

// Run applies every migration that has not been recorded yet, each in
// its own transaction.
func Run(db *sql.DB) error {
	return RunContext(context.Background(), db)
}

// RunContext is Run with a context.
func RunContext(ctx context.Context, db *sql.DB) error {
	pending, err := pending(ctx, db)
	if err != nil {
		return err
	}
	for _, m := range pending {
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m, err)
		}
		log.Debug("migrations: applied %s", m)
	}
	return nil
}

func apply(ctx context.Context, db *sql.DB, m Migration) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, m.SQL); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return tx.Commit()
}

// applied returns the recorded versions, creating the bookkeeping table
// on first use.
func applied(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	if _, err := db.ExecContext(ctx, schemaTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	done := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		done[v] = true
	}
	return done, rows.Err()
}

func pending(ctx context.Context, db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	done, err := applied(ctx, db)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(m Migration) bool { return done[m.Version] }), nil
}

// Pending returns the migrations Run would apply.
func Pending(db *sql.DB) ([]Migration, error) {
	return pending(context.Background(), db)
}

// CurrentVersion returns the highest applied version, 0 for a new database.
func CurrentVersion(db *sql.DB) (int, error) {
	done, err := applied(context.Background(), db)
	if err != nil {
		return 0, err
	}
	current := 0
	for v := range done {
		current = max(current, v)
	}
	return current, nil
}
