package store

import (
	"context"

	"github.com/redstore-dns/redstore/internal/dns/common/log"
	"github.com/redstore-dns/redstore/internal/dns/domain"
)

// DefaultTTL is the TTL stamped on every answer. The store holds no TTL
// authority of its own.
const DefaultTTL uint32 = 300

// Handler adapts one DNS question into a record-store lookup. It is built
// for a middleware chain: it never overwrites a response a downstream
// handler already produced, and it always passes control onward whether or
// not it answered.
type Handler struct {
	store    *Store
	notifier CacheNotifier
	ttl      uint32
	logger   log.Logger
}

// HandlerOptions configures a Handler. A nil Notifier disables cache
// notifications.
type HandlerOptions struct {
	Store    *Store
	Notifier CacheNotifier
	TTL      uint32 // zero means DefaultTTL
	Logger   log.Logger
}

// NewHandler constructs a Handler.
func NewHandler(opts HandlerOptions) *Handler {
	ttl := opts.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Handler{
		store:    opts.Store,
		notifier: opts.Notifier,
		ttl:      ttl,
		logger:   logger,
	}
}

// ServeQuestion answers q from the store. Answers always echo the queried
// name, never the wildcard key that matched, per DNS wildcard synthesis.
// A lookup failure produces no answers and is never surfaced to the
// framework. next is invoked unconditionally.
func (h *Handler) ServeQuestion(ctx context.Context, q domain.Question, w ResponseWriter, next func()) {
	if next != nil {
		defer next()
	}
	if w.Finished() {
		return
	}

	answers, flat, err := h.lookup(ctx, q)
	if err != nil {
		h.logger.Error(map[string]any{"name": q.Name, "type": q.Type.String(), "error": err}, "record lookup failed")
		return
	}
	if len(answers) == 0 {
		return
	}

	w.Answer(answers)

	if h.notifier != nil {
		h.dispatch(q, flat)
	}
}

// lookup returns the answer entries for q plus the flat value list carried
// by the cache notification. ANY questions aggregate every stored type.
func (h *Handler) lookup(ctx context.Context, q domain.Question) ([]domain.ResourceRecord, []any, error) {
	if q.Type == domain.RRTypeANY {
		set, err := h.store.GetAll(ctx, q.Name, true)
		if err != nil || set.IsEmpty() {
			return nil, nil, err
		}
		var answers []domain.ResourceRecord
		var flat []any
		for _, rrtype := range set.Types() {
			answers, flat = h.appendAnswers(answers, flat, q.Name, rrtype, set[rrtype])
		}
		return answers, flat, nil
	}

	values, err := h.store.Get(ctx, q.Name, q.Type, true)
	if err != nil || values == nil {
		return nil, nil, err
	}
	answers, flat := h.appendAnswers(nil, nil, q.Name, q.Type, values)
	return answers, flat, nil
}

// appendAnswers builds one answer entry per stored value, skipping values
// that cannot form a valid record (a stored JSON null decodes to nil). The
// flat list tracks exactly the values carried by the produced answers.
func (h *Handler) appendAnswers(answers []domain.ResourceRecord, flat []any, name string, rrtype domain.RRType, values []any) ([]domain.ResourceRecord, []any) {
	for _, value := range values {
		rr, err := domain.NewResourceRecord(name, rrtype, h.ttl, value)
		if err != nil {
			h.logger.Warn(map[string]any{"name": name, "type": rrtype.String(), "error": err}, "skipping unusable stored value")
			continue
		}
		answers = append(answers, rr)
		flat = append(flat, rr.Data)
	}
	return answers, flat
}

// dispatch emits the cache notification, isolating the response path from
// a panicking notifier.
func (h *Handler) dispatch(q domain.Question, records []any) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Warn(map[string]any{"name": q.Name, "panic": r}, "cache notifier panicked")
		}
	}()
	h.notifier(CacheNotification{
		ZoneName:   q.Name,
		RecordType: q.Type,
		Records:    records,
	})
}
