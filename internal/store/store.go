// Package store persists round history in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the round-history database.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies pragmas, and creates
// the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func createSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS rounds (
	id          TEXT PRIMARY KEY,
	played_at   TIMESTAMP NOT NULL,
	interval_a  REAL NOT NULL,
	interval_b  REAL NOT NULL,
	unitary     INTEGER NOT NULL,
	acute       INTEGER NOT NULL,
	f1          TEXT NOT NULL,
	f2          TEXT NOT NULL,
	angle       REAL NOT NULL,
	guess       REAL NOT NULL,
	score       REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS rounds_played_at ON rounds (played_at);
`
	_, err := db.Exec(schema)
	return err
}

// Reset deletes all recorded rounds.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("reset rounds: %w", err)
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. ANGLER_DB environment variable
// 2. $XDG_DATA_HOME/angler/angler.db
// 3. ~/.local/share/angler/angler.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ANGLER_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "angler", "angler.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
