package domain

import "testing"

func TestRRType_String(t *testing.T) {
	tests := []struct {
		rrtype RRType
		want   string
	}{
		{RRTypeA, "A"},
		{RRTypeNS, "NS"},
		{RRTypeCNAME, "CNAME"},
		{RRTypeSOA, "SOA"},
		{RRTypePTR, "PTR"},
		{RRTypeMX, "MX"},
		{RRTypeTXT, "TXT"},
		{RRTypeAAAA, "AAAA"},
		{RRTypeSRV, "SRV"},
		{RRTypeANY, "ANY"},
		{RRTypeCAA, "CAA"},
		{RRType(999), "UNKNOWN(999)"},
	}
	for _, tt := range tests {
		if got := tt.rrtype.String(); got != tt.want {
			t.Errorf("RRType(%d).String() = %q, want %q", tt.rrtype, got, tt.want)
		}
	}
}

func TestRRTypeFromString(t *testing.T) {
	for rrtype, tag := range rrTypeTags {
		if got := RRTypeFromString(tag); got != rrtype {
			t.Errorf("RRTypeFromString(%q) = %d, want %d", tag, got, rrtype)
		}
	}
	if got := RRTypeFromString("NOPE"); got != 0 {
		t.Errorf("RRTypeFromString(\"NOPE\") = %d, want 0", got)
	}
}

func TestRRType_IsValid(t *testing.T) {
	if !RRTypeMX.IsValid() {
		t.Error("MX should be valid")
	}
	if RRType(0).IsValid() {
		t.Error("zero RRType should be invalid")
	}
	if RRType(12345).IsValid() {
		t.Error("unassigned RRType should be invalid")
	}
}
