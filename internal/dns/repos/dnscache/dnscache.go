// Package dnscache is an in-memory LRU consumer for the store's cache
// notifications. It keeps the flat value lists of recently answered
// questions so a fronting server can short-circuit repeat lookups.
package dnscache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/redstore-dns/redstore/internal/dns/domain"
	"github.com/redstore-dns/redstore/internal/dns/services/store"
)

// Cache holds recently answered value lists keyed by (name, type).
type Cache struct {
	lru *lru.Cache[string, []any]
}

// New returns a Cache bounded to size entries.
func New(size int) (*Cache, error) {
	c, err := lru.New[string, []any](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Notifier returns the callback to hand to the request handler. Each
// notification replaces the cached entry for its (name, type) pair.
func (c *Cache) Notifier() store.CacheNotifier {
	return func(n store.CacheNotification) {
		if len(n.Records) == 0 {
			return
		}
		c.lru.Add(cacheKey(n.ZoneName, n.RecordType), n.Records)
	}
}

// Get returns the cached value list for (name, rrtype), if present.
func (c *Cache) Get(name string, rrtype domain.RRType) ([]any, bool) {
	return c.lru.Get(cacheKey(name, rrtype))
}

// Invalidate drops the cached entry for (name, rrtype).
func (c *Cache) Invalidate(name string, rrtype domain.RRType) {
	c.lru.Remove(cacheKey(name, rrtype))
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

func cacheKey(name string, rrtype domain.RRType) string {
	return name + "|" + rrtype.String()
}
