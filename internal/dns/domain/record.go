package domain

import "fmt"

// ResourceRecord represents one answer entry produced for a DNS question.
// Name always echoes the originally queried name, even when the record was
// matched by a wildcard storage key, per DNS wildcard synthesis convention.
// Data holds the stored record value: a string for simple types (A, AAAA,
// CNAME, TXT) or a structured object for compound types (MX, SRV, SOA).
type ResourceRecord struct {
	Name string
	Type RRType
	TTL  uint32
	Data any
}

// NewResourceRecord constructs a ResourceRecord and validates its fields.
func NewResourceRecord(name string, rrtype RRType, ttl uint32, data any) (ResourceRecord, error) {
	rr := ResourceRecord{
		Name: name,
		Type: rrtype,
		TTL:  ttl,
		Data: data,
	}
	if err := rr.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return rr, nil
}

// Validate checks whether the ResourceRecord fields are valid.
func (rr ResourceRecord) Validate() error {
	if rr.Name == "" {
		return fmt.Errorf("record name must not be empty")
	}
	if !rr.Type.IsValid() {
		return fmt.Errorf("invalid RRType: %d", rr.Type)
	}
	if rr.Data == nil {
		return fmt.Errorf("record data must not be nil")
	}
	return nil
}
