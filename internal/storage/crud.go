package storage

import (
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// Get retrieves raw bytes by key.
func (d *DB) Get(key string) ([]byte, error) {
	var result []byte
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			result = make([]byte, len(val))
			copy(result, val)
			return nil
		})
	})
	return result, err
}

// Set stores raw bytes with the given key. On-disk databases check free
// space first.
func (d *DB) Set(key string, data []byte) error {
	if d.path != "" {
		if err := CheckDiskSpaceMin(d.path, d.minFree); err != nil {
			return err
		}
	}

	err := d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if isDiskFullError(err) {
		return diskFull("write")
	}
	return err
}

// Keys retrieves all keys with the given prefix.
func (d *DB) Keys(prefix string) ([]string, error) {
	var keys []string
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := make([]byte, len(item.Key()))
			copy(key, item.Key())
			keys = append(keys, string(key))
		}
		return nil
	})
	return keys, err
}
