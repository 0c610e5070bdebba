// Package cache persists derived gallery data between server restarts.
// Only values computed from image files (blur placeholders) are stored here; tournament
// and challenge data is always read fresh from disk.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"go.etcd.io/bbolt"
)

// PlaceholdersBucket is the BoltDB bucket holding blur data URLs keyed by image fingerprint.
const PlaceholdersBucket = "placeholders"

// Store is a string key/value cache.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Count() (int, error)
	Close() error
}

// BoltStore implements Store on a single BoltDB file.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (or creates) the BoltDB file at dbPath.
func NewBoltStore(dbPath string) (*BoltStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open BoltDB at %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(PlaceholdersBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("placeholder cache initialized")
	return &BoltStore{db: db}, nil
}

// Get returns the cached value for key and whether it was present.
func (s *BoltStore) Get(key string) (string, bool, error) {
	var value string
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(PlaceholdersBucket))
		if bucket == nil {
			return nil
		}
		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}
		// data is only valid inside the transaction, so copy it out.
		value = string(data)
		found = true
		return nil
	})
	return value, found, err
}

// Set stores value under key, replacing any previous value.
func (s *BoltStore) Set(key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(PlaceholdersBucket))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), []byte(value))
	})
}

// Count returns the number of cached entries.
func (s *BoltStore) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(PlaceholdersBucket))
		if bucket == nil {
			return nil
		}
		n = bucket.Stats().KeyN
		return nil
	})
	return n, err
}

// Close releases the BoltDB file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Nop is a Store that never holds anything. It is used when no cache path is configured.
type Nop struct{}

func (Nop) Get(string) (string, bool, error) { return "", false, nil }
func (Nop) Set(string, string) error         { return nil }
func (Nop) Count() (int, error)              { return 0, nil }
func (Nop) Close() error                     { return nil }
