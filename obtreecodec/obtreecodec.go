// Package obtreecodec provides msgpack serialization for obtree.Map, built
// on top of the public iteration and construction surface rather than any
// node or edge internals — the wire format is the sorted entry stream, not
// the tree shape, so encode/decode round-trips are stable across tree
// rebalancing and across KeyArray changes.
package obtreecodec

import (
	"cmp"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/harudb/obtree/obtree"
)

// entry is the wire-level shape of one key/value pair.
type entry[K, V any] struct {
	Key K `msgpack:"k"`
	Val V `msgpack:"v"`
}

// Encode serializes m's entries, in ascending key order, to msgpack bytes.
func Encode[K, V any](m *obtree.Map[K, V]) ([]byte, error) {
	entries := make([]entry[K, V], 0, m.Len())
	it := m.Entries()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		entries = append(entries, entry[K, V]{Key: k, Val: v})
	}
	data, err := msgpack.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("obtreecodec: encode: %w", err)
	}
	return data, nil
}

// Decode deserializes msgpack bytes produced by Encode back into a fresh
// Map, ordered with cmp.Compare. Use DecodeFunc for key types with no
// natural ordering.
func Decode[K cmp.Ordered, V any](data []byte) (*obtree.Map[K, V], error) {
	return DecodeFunc[K, V](data, cmp.Compare[K])
}

// DecodeFunc is Decode's counterpart for key types that need an explicit
// comparator, such as a fixed-size byte array compared lexicographically.
func DecodeFunc[K, V any](data []byte, compare func(a, b K) int) (*obtree.Map[K, V], error) {
	var entries []entry[K, V]
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("obtreecodec: decode: %w", err)
	}
	m := obtree.New[K, V](compare)
	for _, e := range entries {
		m.Insert(e.Key, e.Val)
	}
	return m, nil
}
