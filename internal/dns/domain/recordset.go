package domain

import "sort"

// RecordSet is the full record collection stored under one storage key:
// a mapping from record type to its ordered, non-empty value list. This is
// the canonical shape returned by typeless lookups, preserving which type
// each value belongs to so callers can build mixed-type responses.
type RecordSet map[RRType][]any

// IsEmpty reports whether the set holds no record types.
func (rs RecordSet) IsEmpty() bool {
	return len(rs) == 0
}

// Types returns the record types present in the set, in ascending numeric
// order so iteration is deterministic.
func (rs RecordSet) Types() []RRType {
	types := make([]RRType, 0, len(rs))
	for t := range rs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Flatten returns every value in the set as a single list, ordered by
// record type and preserving each type's stored value order.
func (rs RecordSet) Flatten() []any {
	var out []any
	for _, t := range rs.Types() {
		out = append(out, rs[t]...)
	}
	return out
}
