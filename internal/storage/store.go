package storage

import (
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

var (
	// ErrKeyNotFound is returned when a key is not found in the store.
	ErrKeyNotFound = errors.New("key not found")
)

// IsErrKeyNotFound returns true if the error is a key not found error.
func IsErrKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, badger.ErrKeyNotFound)
}

// Store is a string-keyed store of opaque values.
type Store interface {
	// Get returns the value for key or ErrKeyNotFound.
	Get(key string) ([]byte, error)
	// Set replaces the value for key.
	Set(key string, value []byte) error
	// Keys lists the keys with the given prefix in ascending order.
	Keys(prefix string) ([]string, error)
	Close() error
}

// getJSON reads key from s and unmarshals it into v.
func getJSON(s Store, key string, v any) error {
	data, err := s.Get(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// setJSON marshals v and stores it under key.
func setJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, data)
}
