// Package records implements CRUD over the per-key record collections of
// the store. Every operation targets one explicit storage key; wildcard
// resolution happens a layer above. The repo holds no record state of its
// own: each call is a direct read or read-modify-write against the backing
// store, so concurrent Append/DeleteValue calls on the same (key, type)
// follow last-writer-wins semantics (see the method comments).
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/redstore-dns/redstore/internal/dns/common/log"
	"github.com/redstore-dns/redstore/internal/dns/domain"
)

// ErrCorruptRecord indicates a stored field value is not a valid JSON
// array. It is never swallowed: garbled data means store corruption and
// must surface to the caller.
var ErrCorruptRecord = errors.New("stored record value is not valid JSON")

// Repo provides record-collection CRUD over a HashStore.
type Repo struct {
	store  HashStore
	logger log.Logger
}

// New constructs a Repo over the given backing store adapter.
func New(store HashStore, logger log.Logger) *Repo {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Repo{store: store, logger: logger}
}

// Get returns the ordered value list stored for one record type under key,
// or nil when the key or field does not exist.
func (r *Repo) Get(ctx context.Context, key string, rrtype domain.RRType) ([]any, error) {
	raw, ok, err := r.store.GetField(ctx, key, rrtype.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return decodeList(key, rrtype.String(), raw)
}

// GetAll returns the full record collection under key as a type-keyed map,
// or nil when the key does not exist. Fields with unrecognized type tags
// are skipped with a warning; they indicate foreign data written past this
// store's schema.
func (r *Repo) GetAll(ctx context.Context, key string) (domain.RecordSet, error) {
	fields, err := r.store.GetAll(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	set := make(domain.RecordSet, len(fields))
	for tag, raw := range fields {
		rrtype := domain.RRTypeFromString(tag)
		if rrtype == 0 {
			r.logger.Warn(map[string]any{"key": key, "field": tag}, "skipping field with unknown record type tag")
			continue
		}
		values, err := decodeList(key, tag, raw)
		if err != nil {
			return nil, err
		}
		set[rrtype] = values
	}
	if len(set) == 0 {
		return nil, nil
	}
	return set, nil
}

// Set replaces the entire value list for one record type under key.
// Repeated identical calls leave the store unchanged. An empty values list
// removes the field instead of writing an empty list, keeping the
// no-empty-collection invariant.
func (r *Repo) Set(ctx context.Context, key string, rrtype domain.RRType, values []any) error {
	if len(values) == 0 {
		return r.DeleteType(ctx, key, rrtype)
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding %s values for key %q: %w", rrtype, key, err)
	}
	r.logger.Debug(map[string]any{"key": key, "type": rrtype.String(), "count": len(values)}, "set record values")
	return r.store.SetField(ctx, key, rrtype.String(), raw)
}

// Append adds value to the end of the record type's list, creating a
// singleton list when the field is absent. Duplicates are allowed and
// insertion order is preserved.
//
// The read-modify-write is not atomic: two concurrent appends on the same
// (key, type) may both read the same prior list and the later write wins,
// losing the earlier addition.
func (r *Repo) Append(ctx context.Context, key string, rrtype domain.RRType, value any) error {
	current, err := r.Get(ctx, key, rrtype)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, rrtype, append(current, value))
}

// Delete removes the entire key and every record type under it. Deleting a
// missing key is a no-op.
func (r *Repo) Delete(ctx context.Context, key string) error {
	r.logger.Debug(map[string]any{"key": key}, "delete record key")
	return r.store.DeleteKey(ctx, key)
}

// DeleteType removes one record type's field from the key, all values
// included. Deleting a missing field is a no-op.
func (r *Repo) DeleteType(ctx context.Context, key string, rrtype domain.RRType) error {
	r.logger.Debug(map[string]any{"key": key, "type": rrtype.String()}, "delete record type")
	return r.store.DeleteFields(ctx, key, rrtype.String())
}

// DeleteValue removes every value deep-equal to value from the record
// type's list. An emptied list deletes the field rather than writing an
// empty list; a missing key, field, or value is a silent no-op.
//
// Like Append, this is a non-atomic read-modify-write.
func (r *Repo) DeleteValue(ctx context.Context, key string, rrtype domain.RRType, value any) error {
	current, err := r.Get(ctx, key, rrtype)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}
	target, err := normalize(value)
	if err != nil {
		return fmt.Errorf("encoding %s match value for key %q: %w", rrtype, key, err)
	}
	remaining := current[:0:0]
	for _, v := range current {
		if !reflect.DeepEqual(v, target) {
			remaining = append(remaining, v)
		}
	}
	switch {
	case len(remaining) == len(current):
		return nil
	case len(remaining) == 0:
		return r.DeleteType(ctx, key, rrtype)
	default:
		return r.Set(ctx, key, rrtype, remaining)
	}
}

// Close releases the backing store adapter.
func (r *Repo) Close() error {
	return r.store.Close()
}

// decodeList deserializes one stored field value, mapping JSON failures to
// ErrCorruptRecord.
func decodeList(key, tag string, raw []byte) ([]any, error) {
	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%w: key %q field %q: %v", ErrCorruptRecord, key, tag, err)
	}
	return values, nil
}

// normalize round-trips value through JSON so caller-supplied values
// compare deep-equal against their decoded stored forms (ints become
// float64, structs become maps).
func normalize(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
