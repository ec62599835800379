package store

import (
	"context"

	"github.com/redstore-dns/redstore/internal/dns/domain"
)

// RecordRepo is the record-collection capability the store resolves
// against. All operations target one explicit storage key; absence is
// (nil, nil), never an error.
type RecordRepo interface {
	Get(ctx context.Context, key string, rrtype domain.RRType) ([]any, error)
	GetAll(ctx context.Context, key string) (domain.RecordSet, error)
	Set(ctx context.Context, key string, rrtype domain.RRType, values []any) error
	Append(ctx context.Context, key string, rrtype domain.RRType, value any) error
	Delete(ctx context.Context, key string) error
	DeleteType(ctx context.Context, key string, rrtype domain.RRType) error
	DeleteValue(ctx context.Context, key string, rrtype domain.RRType, value any) error
}

// ResponseWriter is the slice of the host framework's response object this
// handler needs: whether a downstream handler already answered, and a way
// to append answers.
type ResponseWriter interface {
	// Finished reports whether a response has already been produced.
	Finished() bool

	// Answer appends records to the response.
	Answer(records []domain.ResourceRecord)
}

// CacheNotification is the side-channel event emitted after a successful
// lookup so a downstream cache or observer can ingest the answer set.
type CacheNotification struct {
	ZoneName   string
	RecordType domain.RRType
	Records    []any
}

// CacheNotifier consumes cache notifications. Invocations are
// fire-and-forget; a panicking notifier never affects the response path.
type CacheNotifier func(CacheNotification)
