// Package keys implements the canonical mapping between domain names and
// the storage keys used by the backing key-value store. A name's labels are
// reversed and joined with ':' so that keys sort and trim from the root
// side, e.g. "www.example.com" becomes "com:example:www" and the wildcard
// "*.example.com" becomes "com:example:*".
package keys

import "strings"

const (
	// Separator joins reversed labels inside a storage key.
	Separator = ":"

	// RootWildcard is the storage key matching any name when no more
	// specific key exists. It carries no separator.
	RootWildcard = "*"

	// WildcardLabel is the label marking a wildcard name or key segment.
	WildcardLabel = "*"
)

// NameToKey converts a domain name to its storage key: labels are split on
// '.', reversed, and joined with ':'. A single-label name maps to itself,
// and the bare wildcard name "*" maps to the root wildcard key "*".
func NameToKey(name string) string {
	labels := strings.Split(name, ".")
	reverse(labels)
	return strings.Join(labels, Separator)
}

// KeyToName is the inverse of NameToKey: segments are split on ':',
// reversed, and joined with '.'. It is defined for every key except the
// root wildcard, whose name form is the key itself. Round-trip holds for
// all names containing no ':' characters.
func KeyToName(key string) string {
	segments := strings.Split(key, Separator)
	reverse(segments)
	return strings.Join(segments, ".")
}

// IsWildcard reports whether key is a wildcard storage key: either the
// root wildcard or any key whose most specific segment is "*".
func IsWildcard(key string) bool {
	return key == RootWildcard || strings.HasSuffix(key, Separator+WildcardLabel)
}

// SearchPath returns the ordered storage keys to probe when resolving
// name: the exact key first, then wildcard keys from most to least
// specific, ending with the root wildcard. Each step drops the most
// specific segment of the previous key and appends ":*".
func SearchPath(name string) []string {
	exact := NameToKey(name)
	path := []string{exact}
	segments := strings.Split(exact, Separator)
	for i := len(segments) - 1; i >= 1; i-- {
		wild := strings.Join(segments[:i], Separator) + Separator + WildcardLabel
		if wild == exact {
			continue // querying a wildcard name; exact probe already covers it
		}
		path = append(path, wild)
	}
	if exact != RootWildcard {
		path = append(path, RootWildcard)
	}
	return path
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
