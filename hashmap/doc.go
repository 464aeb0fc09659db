// Package hashmap implements a fixed-capacity, string-keyed map.
//
// A Hashmap stores keys and values in parallel slot tables of the capacity
// given at creation. A slot is live exactly when its key is non-empty, so the
// empty string cannot be used as a key. Removing an entry clears its slot and
// never moves the other entries.
//
// Every live slot also records the xxHash64 of its key in an array.Array of
// stride 8. Lookups scan the slots in order, compare the 8-byte hash first and
// only then the key string, so a hash collision never merges two keys.
//
//	m, err := hashmap.New[int](16)
//	if err != nil {
//	    return err
//	}
//	defer m.Destroy()
//
//	m.Set("a", 1)
//	v, ok := m.Get("a") // 1, true
//
// Hashmaps are not safe for concurrent use.
package hashmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stdx'
func tracer() tracing.Trace {
	return tracing.Select("stdx")
}
