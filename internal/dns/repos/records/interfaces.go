package records

import "context"

// HashStore is the capability interface any backing-store adapter must
// implement. Each storage key owns a hash-like structure whose fields are
// record-type tags and whose values are raw UTF-8 JSON arrays.
//
// Adapters must uphold the no-dangling-key invariant: deleting the last
// field of a key removes the key itself.
type HashStore interface {
	// GetField returns the raw value of one field, or ok=false when the
	// key or field does not exist.
	GetField(ctx context.Context, key, field string) (value []byte, ok bool, err error)

	// GetAll returns every field of the key. A missing key yields an
	// empty map, not an error.
	GetAll(ctx context.Context, key string) (map[string][]byte, error)

	// SetField writes one field, creating the key if needed.
	SetField(ctx context.Context, key, field string, value []byte) error

	// DeleteFields removes the named fields. Missing fields are ignored.
	DeleteFields(ctx context.Context, key string, fields ...string) error

	// DeleteKey removes the key and all its fields. Missing keys are
	// ignored.
	DeleteKey(ctx context.Context, key string) error

	// Close releases the adapter's resources.
	Close() error
}
