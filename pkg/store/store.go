// Package store owns the SQLite database: the vocabulary reference
// table, imported word records and the user-curated family mappings.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps the database connection and its schema.
type Store struct {
	db *sql.DB
}

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS vocabulary (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		headword      TEXT NOT NULL,
		derivative    TEXT,
		definition    TEXT,
		pronunciation TEXT,
		partofspeech  TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vocabulary_headword ON vocabulary (headword)`,
	`CREATE TABLE IF NOT EXISTS word_records (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		word        TEXT NOT NULL,
		reference   TEXT NOT NULL,
		unit        TEXT,
		section     TEXT,
		test_point  TEXT,
		collocation TEXT,
		word_family TEXT,
		book        TEXT,
		grade       TEXT,
		chinese     TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_word_records_word ON word_records (word)`,
	`CREATE INDEX IF NOT EXISTS idx_word_records_family ON word_records (word_family)`,
	`CREATE TABLE IF NOT EXISTS word_family_mappings (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		word       TEXT NOT NULL UNIQUE,
		headword   TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
}

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// OpenMemory opens a fresh in-memory database, used by tests and dry runs.
func OpenMemory() (*Store, error) {
	s, err := Open(":memory:")
	if err != nil {
		return nil, err
	}
	// A second connection would see its own empty :memory: database.
	s.db.SetMaxOpenConns(1)
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection for read-only views (the
// vocabulary index).
func (s *Store) DB() *sql.DB {
	return s.db
}
