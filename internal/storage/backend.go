package storage

import (
	"fmt"
	"strings"
)

// Backend names a Store implementation.
type Backend string

const (
	BackendBadger Backend = "badger"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ParseBackend parses a backend name.
func ParseBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case "", BackendBadger:
		return BackendBadger, nil
	case BackendSQLite:
		return BackendSQLite, nil
	case BackendMemory:
		return BackendMemory, nil
	}
	return "", fmt.Errorf("unknown storage backend %q (use badger, sqlite or memory)", name)
}

// BackendOptions selects and configures a Store.
type BackendOptions struct {
	Backend Backend
	// Path overrides the backend's default location.
	Path string
	// MinFreeSpace is passed to the Badger backend.
	MinFreeSpace uint64
}

// ResolvedPath returns the path the backend will use.
func (o BackendOptions) ResolvedPath() string {
	if o.Path != "" {
		return o.Path
	}
	switch o.Backend {
	case BackendSQLite:
		return DefaultSQLitePath()
	case BackendMemory:
		return ""
	default:
		return DefaultPath()
	}
}

// OpenStore opens the configured backend.
func OpenStore(opts BackendOptions) (Store, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		s, err := OpenSQLite(opts.ResolvedPath())
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendBadger, "":
		db, err := Open(Options{Path: opts.ResolvedPath(), MinFreeSpace: opts.MinFreeSpace})
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
}
