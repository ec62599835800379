// Package redis provides the Redis HashStore adapter: one Redis hash per
// storage key, one hash field per record type. Redis removes a hash whose
// last field is deleted, which gives the no-dangling-key invariant natively.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/redstore-dns/redstore/internal/dns/repos/records"
)

// ErrNoConfig is returned when neither a client nor connection options are
// supplied at construction.
var ErrNoConfig = errors.New("redis: no client or connection options provided")

const dialTimeout = 5 * time.Second

// Config selects how the adapter connects. Either supply an existing
// Client (its lifecycle stays with the caller) or connection options used
// to build one (then owned and closed by the adapter).
type Config struct {
	// Client is a pre-built connection. Takes precedence over the
	// option fields below.
	Client *goredis.Client

	// Addr is the host:port of the Redis server.
	Addr string
	// Password authenticates the connection; empty for none.
	Password string
	// DB selects the Redis logical database index.
	DB int
}

// Store implements records.HashStore over Redis.
type Store struct {
	client *goredis.Client
	owned  bool
}

// New constructs a Store from cfg. When options are supplied instead of a
// client, the connection is verified with a ping before returning.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Client != nil {
		return &Store{client: cfg.Client}, nil
	}
	if cfg.Addr == "" {
		return nil, ErrNoConfig
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: connection failed: %w", err)
	}
	return &Store{client: client, owned: true}, nil
}

func (s *Store) GetField(ctx context.Context, key, field string) ([]byte, bool, error) {
	raw, err := s.client.HGet(ctx, key, field).Result()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(raw), true, nil
}

func (s *Store) GetAll(ctx context.Context, key string) (map[string][]byte, error) {
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(fields))
	for tag, raw := range fields {
		out[tag] = []byte(raw)
	}
	return out, nil
}

func (s *Store) SetField(ctx context.Context, key, field string, value []byte) error {
	return s.client.HSet(ctx, key, field, value).Err()
}

func (s *Store) DeleteFields(ctx context.Context, key string, fields ...string) error {
	return s.client.HDel(ctx, key, fields...).Err()
}

func (s *Store) DeleteKey(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Close closes the underlying client only when this adapter built it; a
// caller-supplied client stays open.
func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}

// Ensure Store implements records.HashStore at compile time
var _ records.HashStore = (*Store)(nil)
