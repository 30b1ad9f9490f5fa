// Package store implements the persistent storage of Weir, backed by a
// bolt database file. The only state kept there is the interactive command
// history; evaluation state is never persisted.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"src.weir.sh/pkg/store/storedefs"
)

// Buckets are created on open by the initDB functions; code using a bucket
// registers its initializer in an init function next to that code.
var initDB = map[string]func(*bolt.Tx) error{}

// DBStore is a storedefs.Store that can be closed.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens a Store backed by the named database file, creating the
// file if it does not exist. Opening blocks for at most a second when
// another process holds the file lock.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a Store from an already open bolt database.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	st := &dbStore{db}
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	return st, err
}

// Close closes the store, flushing and releasing the database file.
func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
