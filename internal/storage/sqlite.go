package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"
)

// DefaultSQLitePath returns the default SQLite database file.
func DefaultSQLitePath() string {
	return filepath.Join(xdg.DataHome, AppName, "pomotime.db")
}

// SQLiteStore is a Store backed by a single SQLite table. Several processes
// may share the file; concurrent writers to one key resolve last-write-wins.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite store at path. ":memory:" opens a
// private in-memory database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the value for key.
func (s *SQLiteStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

// Set replaces the value for key.
func (s *SQLiteStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		if isDiskFullError(err) {
			return diskFull("write")
		}
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Keys lists keys with prefix in ascending order.
func (s *SQLiteStore) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT key FROM kv WHERE substr(key, 1, length(?)) = ? ORDER BY key`,
		prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
