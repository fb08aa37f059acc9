// Package storage provides the persistence layer for pomotime: a small
// key-value port with Badger, SQLite and in-memory backends, and the
// settings and stats repositories built on it.
package storage

import (
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"
)

const (
	// AppName is the application name used for data directories.
	AppName = "pomotime"
)

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string

	minFree uint64
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
	// MinFreeSpace refuses writes when the disk has less free space than
	// this. Zero uses the package default.
	MinFreeSpace uint64
}

// DefaultPath returns the default database path following XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens or creates a database at the given path.
func Open(opts Options) (*DB, error) {
	var badgerOpts badger.Options
	path := ""

	if opts.InMemory || opts.Path == "" {
		// In-memory mode for testing
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := EnsureDirectory(opts.Path); err != nil {
			return nil, err
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
		path = opts.Path
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}

	minFree := opts.MinFreeSpace
	if minFree == 0 {
		minFree = MinFreeSpace
	}

	return &DB{db: db, path: path, minFree: minFree}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database directory, or "" for an in-memory database.
func (d *DB) Path() string {
	return d.path
}
