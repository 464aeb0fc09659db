// Package array implements the header-prefixed array every stdx structure is built on.
//
// An Array is a single contiguous buffer obtained from an alloc.Allocator. The
// first section.ArrayHeaderSize bytes hold the header {count, max, size, stride};
// the element slots follow directly after it. Any code holding only the Array
// can therefore recover all of its metadata:
//
//	arr, err := array.Create(8, 4)  // 4 slots of 8 bytes, count=0
//	if err != nil {
//	    return err
//	}
//	defer arr.Destroy()
//
//	head := arr.Head()  // {Stride: 8, Max: 4, Size: 32, Count: 0}
//
// # Two Cursors
//
// Arrays distinguish the logical count from the capacity, and the four access
// primitives treat the count differently:
//
//   - Push writes at index count and increments it. Pop decrements count,
//     returns the slot at the new count and zeroes it.
//   - Put writes at an absolute index. Writing at or beyond count advances
//     count to index+1, so later pushes resume after the placed element.
//   - Pull returns the slot at an absolute index and zeroes it, leaving a hole.
//     It never changes count and never shifts other elements.
//
// Push and Pop only ever look at count. Slots written by Put below count, or
// emptied by Pull, are invisible to them.
//
// # Resizing
//
// Arrays have a fixed capacity. Resize allocates a new buffer, copies the
// element bytes that fit and the header (clamping count to the new capacity),
// releases the old buffer and returns a new handle. The old handle is invalid
// afterwards and every operation on it reports errs.ErrInvalidHandle.
//
// # Thread Safety
//
// Arrays are not safe for concurrent use. Callers serialize access to a handle.
package array

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stdx'
func tracer() tracing.Trace {
	return tracing.Select("stdx")
}
