// Package stdx provides allocation-aware containers built on a single
// header-prefixed array type.
//
// The library offers four container kinds, each in its own package:
//
//   - array: fixed-capacity arrays whose {count, max, size, stride} header
//     travels with the element buffer, with the push/pop/put/pull primitives
//     and resize
//   - linked: doubly linked chains of arrays addressed by checked handles
//   - hashmap: fixed-capacity string-keyed maps with slot-stable removal
//   - quadtree: quad tree nodes owning object arrays, plus a point tree with
//     an insertion policy
//
// Package snapshot serializes arrays, chains and byte-valued hashmaps, with
// optional compression.
//
// # Structs Context
//
// Every structure draws its memory from an alloc.Allocator. A Structs value
// bundles the allocator and byte order shared by all structures of a program
// and replaces process-wide setup and teardown:
//
//	s, err := stdx.New(stdx.WithPooling(), stdx.WithTracking())
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	arr, err := s.CreateArray(8, 64)
//	if err != nil {
//	    return err
//	}
//	defer arr.Destroy()
//
// With tracking enabled, Close reports structures that were never destroyed
// as errs.ErrLeakedAllocations.
//
// # Thread Safety
//
// A Structs value may be shared between goroutines; the allocators it builds
// are safe for concurrent use. The structures themselves are not: callers
// serialize access to each handle.
package stdx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stdx'
func tracer() tracing.Trace {
	return tracing.Select("stdx")
}
