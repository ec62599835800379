package domain

import "fmt"

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA     RRType = 1   // A - IPv4 address
	RRTypeNS    RRType = 2   // NS - Name server
	RRTypeCNAME RRType = 5   // CNAME - Canonical name
	RRTypeSOA   RRType = 6   // SOA - Start of authority
	RRTypePTR   RRType = 12  // PTR - Pointer
	RRTypeMX    RRType = 15  // MX - Mail exchange
	RRTypeTXT   RRType = 16  // TXT - Text
	RRTypeAAAA  RRType = 28  // AAAA - IPv6 address
	RRTypeSRV   RRType = 33  // SRV - Service
	RRTypeANY   RRType = 255 // ANY - Any type (query only)
	RRTypeCAA   RRType = 257 // CAA - Certificate authority authorization
)

// rrTypeTags maps each supported RRType to the field tag used in the
// backing store. Hash fields are named by these tags, so additions here
// extend the persisted layout.
var rrTypeTags = map[RRType]string{
	RRTypeA:     "A",
	RRTypeNS:    "NS",
	RRTypeCNAME: "CNAME",
	RRTypeSOA:   "SOA",
	RRTypePTR:   "PTR",
	RRTypeMX:    "MX",
	RRTypeTXT:   "TXT",
	RRTypeAAAA:  "AAAA",
	RRTypeSRV:   "SRV",
	RRTypeANY:   "ANY",
	RRTypeCAA:   "CAA",
}

var rrTypeValues = func() map[string]RRType {
	m := make(map[string]RRType, len(rrTypeTags))
	for t, tag := range rrTypeTags {
		m[tag] = t
	}
	return m
}()

// IsValid returns true if the RRType is one of the supported types.
func (t RRType) IsValid() bool {
	_, ok := rrTypeTags[t]
	return ok
}

// String returns the textual tag of the RRType.
// For unknown types, it returns "UNKNOWN(<value>)".
func (t RRType) String() string {
	if tag, ok := rrTypeTags[t]; ok {
		return tag
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint16(t))
}

// RRTypeFromString converts a record type tag to its RRType value.
// Returns 0 for unknown tags.
func RRTypeFromString(s string) RRType {
	return rrTypeValues[s]
}
