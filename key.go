package seenset

import (
	"encoding/binary"
	"slices"
)

// Key is the canonical byte representation of an item. Every item is
// converted to a Key by exactly one of the typed constructors below before
// hashing, so the hashing contract ("equal values hash identically, unequal
// values hash differently with overwhelming probability") is enforced by
// construction rather than by runtime type inspection.
//
// Each constructor prefixes a type tag byte so keys of different kinds
// occupy disjoint byte spaces: IntKey(42) never collides with
// StringKey("42").
type Key []byte

// Type tags separating the key kinds.
const (
	tagString  byte = 's'
	tagBytes   byte = 'b'
	tagInt     byte = 'i'
	tagRequest byte = 'r'
)

// StringKey returns the canonical key for a string value.
func StringKey(s string) Key {
	k := make(Key, 0, 1+len(s))
	k = append(k, tagString)
	return append(k, s...)
}

// BytesKey returns the canonical key for a raw byte value.
func BytesKey(b []byte) Key {
	k := make(Key, 0, 1+len(b))
	k = append(k, tagBytes)
	return append(k, b...)
}

// IntKey returns the canonical key for an integer value. The fixed-width
// big-endian encoding keeps equal integers identical regardless of how the
// caller formatted them.
func IntKey(n int64) Key {
	k := make(Key, 1, 1+8)
	k[0] = tagInt
	return binary.BigEndian.AppendUint64(k, uint64(n))
}

// RequestKey returns the canonical key for an HTTP request identity: method,
// URL, and the set of parameter names and values. Parameter order does not
// matter; two requests with the same parameters in different order produce
// the same key. Every field is length-prefixed so unequal requests cannot
// produce equal bytes by concatenation.
func RequestKey(method, url string, params map[string]string) Key {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	slices.Sort(names)

	k := make(Key, 1, 1+len(method)+len(url)+16)
	k[0] = tagRequest
	k = appendField(k, method)
	k = appendField(k, url)
	for _, name := range names {
		k = appendField(k, name)
		k = appendField(k, params[name])
	}
	return k
}

func appendField(k Key, s string) Key {
	k = binary.AppendUvarint(k, uint64(len(s)))
	return append(k, s...)
}
