package dnscache

import (
	"reflect"
	"testing"

	"github.com/redstore-dns/redstore/internal/dns/domain"
	"github.com/redstore-dns/redstore/internal/dns/services/store"
)

func TestCache_NotifierStoresRecords(t *testing.T) {
	c, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	notify := c.Notifier()
	notify(store.CacheNotification{
		ZoneName:   "example.com",
		RecordType: domain.RRTypeA,
		Records:    []any{"1.1.1.1", "2.2.2.2"},
	})

	got, ok := c.Get("example.com", domain.RRTypeA)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if !reflect.DeepEqual(got, []any{"1.1.1.1", "2.2.2.2"}) {
		t.Errorf("Get = %v", got)
	}

	if _, ok := c.Get("example.com", domain.RRTypeTXT); ok {
		t.Error("different type must be a separate entry")
	}
	if _, ok := c.Get("other.com", domain.RRTypeA); ok {
		t.Error("different name must be a separate entry")
	}
}

func TestCache_EmptyNotificationIgnored(t *testing.T) {
	c, _ := New(16)
	c.Notifier()(store.CacheNotification{ZoneName: "example.com", RecordType: domain.RRTypeA})
	if c.Len() != 0 {
		t.Error("empty notifications must not be cached")
	}
}

func TestCache_NotificationReplaces(t *testing.T) {
	c, _ := New(16)
	notify := c.Notifier()

	notify(store.CacheNotification{ZoneName: "example.com", RecordType: domain.RRTypeA, Records: []any{"1.1.1.1"}})
	notify(store.CacheNotification{ZoneName: "example.com", RecordType: domain.RRTypeA, Records: []any{"9.9.9.9"}})

	got, _ := c.Get("example.com", domain.RRTypeA)
	if !reflect.DeepEqual(got, []any{"9.9.9.9"}) {
		t.Errorf("Get after replace = %v", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := New(16)
	c.Notifier()(store.CacheNotification{ZoneName: "example.com", RecordType: domain.RRTypeA, Records: []any{"1.1.1.1"}})

	c.Invalidate("example.com", domain.RRTypeA)
	if _, ok := c.Get("example.com", domain.RRTypeA); ok {
		t.Error("entry should be gone after Invalidate")
	}
}
