// Package store implements the name-facing operations of the DNS record
// store: hierarchical wildcard resolution on the read path and explicit-key
// writes, plus the middleware request handler.
//
// Resolution order is fixed: the exact storage key first, then wildcard
// keys from most to least specific, then the root wildcard "*". Writes
// never resolve wildcards; they always target the key encoding the given
// name.
package store

import (
	"context"

	"github.com/redstore-dns/redstore/internal/dns/common/keys"
	"github.com/redstore-dns/redstore/internal/dns/common/log"
	"github.com/redstore-dns/redstore/internal/dns/domain"
)

// Store exposes the public record-store operations over a RecordRepo.
type Store struct {
	records RecordRepo
	logger  log.Logger
}

// Options configures a Store.
type Options struct {
	Records RecordRepo
	Logger  log.Logger
}

// New constructs a Store.
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Store{records: opts.Records, logger: logger}
}

// Get returns the value list for one record type under name, or nil when
// nothing matches. With wildcards enabled the full resolution walk runs;
// disabled, only the exact key is probed — each wildcard level costs one
// extra backing-store round trip, so callers may opt out.
func (s *Store) Get(ctx context.Context, name string, rrtype domain.RRType, wildcards bool) ([]any, error) {
	for _, key := range s.searchPath(name, wildcards) {
		values, err := s.records.Get(ctx, key, rrtype)
		if err != nil {
			return nil, err
		}
		if values != nil {
			s.logger.Debug(map[string]any{"name": name, "type": rrtype.String(), "key": key, "wildcard": keys.IsWildcard(key)}, "record lookup hit")
			return values, nil
		}
	}
	return nil, nil
}

// GetAll returns the full type-keyed record collection for name, or nil
// when nothing matches. Resolution follows the same walk as Get.
func (s *Store) GetAll(ctx context.Context, name string, wildcards bool) (domain.RecordSet, error) {
	for _, key := range s.searchPath(name, wildcards) {
		set, err := s.records.GetAll(ctx, key)
		if err != nil {
			return nil, err
		}
		if !set.IsEmpty() {
			s.logger.Debug(map[string]any{"name": name, "key": key, "wildcard": keys.IsWildcard(key)}, "record lookup hit")
			return set, nil
		}
	}
	return nil, nil
}

// Resolve performs the resolution walk for name and returns the canonical
// domain name of the matched storage key ("*.example.com" for a wildcard
// key, "*" for the root wildcard), or the empty string when nothing
// matches. Intended for diagnostics.
func (s *Store) Resolve(ctx context.Context, name string) (string, error) {
	for _, key := range keys.SearchPath(name) {
		set, err := s.records.GetAll(ctx, key)
		if err != nil {
			return "", err
		}
		if !set.IsEmpty() {
			return keys.KeyToName(key), nil
		}
	}
	return "", nil
}

// Exists reports whether any records exist under name's exact storage key.
// No wildcard fallback is applied.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	set, err := s.records.GetAll(ctx, keys.NameToKey(name))
	if err != nil {
		return false, err
	}
	return !set.IsEmpty(), nil
}

// Set replaces the value list for one record type under name's exact key.
func (s *Store) Set(ctx context.Context, name string, rrtype domain.RRType, values []any) error {
	return s.records.Set(ctx, keys.NameToKey(name), rrtype, values)
}

// Append adds one value to the end of the record type's list under name's
// exact key.
func (s *Store) Append(ctx context.Context, name string, rrtype domain.RRType, value any) error {
	return s.records.Append(ctx, keys.NameToKey(name), rrtype, value)
}

// Delete removes every record type stored under name's exact key.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.records.Delete(ctx, keys.NameToKey(name))
}

// DeleteType removes one record type, all values included, from name's
// exact key.
func (s *Store) DeleteType(ctx context.Context, name string, rrtype domain.RRType) error {
	return s.records.DeleteType(ctx, keys.NameToKey(name), rrtype)
}

// DeleteValue removes the values deep-equal to value from the record
// type's list under name's exact key.
func (s *Store) DeleteValue(ctx context.Context, name string, rrtype domain.RRType, value any) error {
	return s.records.DeleteValue(ctx, keys.NameToKey(name), rrtype, value)
}

func (s *Store) searchPath(name string, wildcards bool) []string {
	path := keys.SearchPath(name)
	if !wildcards {
		return path[:1]
	}
	return path
}
