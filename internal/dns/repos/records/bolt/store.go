// Package bolt provides an embedded HashStore adapter backed by bbolt:
// one bucket per storage key, one key/value pair per record-type field.
// Useful where a Redis deployment is unavailable or undesirable.
package bolt

import (
	"context"
	"errors"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/redstore-dns/redstore/internal/dns/repos/records"
)

// Store implements records.HashStore using bbolt.
type Store struct {
	db *bbolt.DB
}

// New opens (or creates) a Bolt database at path.
func New(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) GetField(_ context.Context, key, field string) ([]byte, bool, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(key))
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(field)); v != nil {
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	return out, out != nil, err
}

func (s *Store) GetAll(_ context.Context, key string) (map[string][]byte, error) {
	out := make(map[string][]byte)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(key))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			cp := make([]byte, len(v))
			copy(cp, v)
			out[string(k)] = cp
			return nil
		})
	})
	return out, err
}

func (s *Store) SetField(_ context.Context, key, field string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(key))
		if err != nil {
			return err
		}
		return b.Put([]byte(field), value)
	})
}

func (s *Store) DeleteFields(_ context.Context, key string, fields ...string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(key))
		if b == nil {
			return nil
		}
		for _, f := range fields {
			if err := b.Delete([]byte(f)); err != nil {
				return err
			}
		}
		// no dangling empty keys: drop the bucket once its last field is gone
		if k, _ := b.Cursor().First(); k == nil {
			return tx.DeleteBucket([]byte(key))
		}
		return nil
	})
}

func (s *Store) DeleteKey(_ context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		err := tx.DeleteBucket([]byte(key))
		if errors.Is(err, bbolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}

func (s *Store) Close() error { return s.db.Close() }

// Ensure Store implements records.HashStore at compile time
var _ records.HashStore = (*Store)(nil)
