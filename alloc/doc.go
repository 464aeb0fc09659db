// Package alloc defines the allocation contract every stdx structure goes through.
//
// Arrays, linked arrays, hashmaps and quad trees never call make for their
// element storage directly. They ask an Allocator for a zeroed buffer and hand
// it back with Free when they are destroyed or resized. This keeps the memory
// behaviour of a program built on stdx observable and replaceable:
//
//   - Heap delegates to the Go runtime; Free is a no-op.
//   - Pooled recycles freed buffers in power-of-two size classes.
//   - Tracker wraps another allocator and accounts for every buffer, reporting
//     double frees and leaks.
//   - Limited wraps another allocator and refuses allocations beyond a byte
//     budget, which is how allocation failure surfaces in Go.
//
// Allocators are safe for concurrent use; the structures built on them are not.
package alloc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stdx'
func tracer() tracing.Trace {
	return tracing.Select("stdx")
}
