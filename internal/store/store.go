// Package store handles SQLite persistence for cards, review events and
// daily progress. The review engine itself never touches the database;
// commands read state out, run the pure computations, and write results
// back here.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps SQLite access for learner data.
type Store struct {
	db *sql.DB
}

// Open creates a Store connected to the SQLite database at path.
// It applies recommended pragmas and runs migrations.
func Open(path string) (*Store, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
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

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			front TEXT NOT NULL,
			back TEXT NOT NULL,
			deck TEXT NOT NULL DEFAULT '',
			high_yield INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			status TEXT NOT NULL,
			interval REAL NOT NULL DEFAULT 0,
			stability REAL NOT NULL DEFAULT 0.5,
			difficulty REAL NOT NULL DEFAULT 5,
			ease REAL NOT NULL DEFAULT 2.5,
			box INTEGER NOT NULL DEFAULT 1,
			due TEXT NOT NULL,
			reps INTEGER NOT NULL DEFAULT 0,
			lapses INTEGER NOT NULL DEFAULT 0,
			consecutive_good INTEGER NOT NULL DEFAULT 0,
			history TEXT NOT NULL DEFAULT '[]'
		);`,
		`CREATE TABLE IF NOT EXISTS review_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			card_id TEXT NOT NULL,
			rating TEXT NOT NULL,
			recorded_at TEXT NOT NULL,
			prev_interval REAL NOT NULL,
			new_interval REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS daily_progress (
			date TEXT PRIMARY KEY,
			new_consumed INTEGER NOT NULL DEFAULT 0,
			review_consumed INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_cards_due ON cards(due);`,
		`CREATE INDEX IF NOT EXISTS idx_review_events_recorded_at ON review_events(recorded_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SMARTCARDS_DB environment variable
// 2. $XDG_DATA_HOME/smartcards/smartcards.db
// 3. ~/.local/share/smartcards/smartcards.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SMARTCARDS_DB"); p != "" {
		return p, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "smartcards", "smartcards.db"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
