package alloc

import (
	"fmt"

	"github.com/arloliu/stdx/errs"
)

// Allocator provides and releases byte buffers.
type Allocator interface {
	// Alloc returns a zeroed buffer of length size, or an error wrapping
	// errs.ErrAllocationFailed when the memory cannot be provided.
	Alloc(size int) ([]byte, error)
	// Free releases a buffer previously returned by Alloc. The caller must not
	// use buf afterwards.
	Free(buf []byte)
}

type heapAllocator struct{}

// Heap returns the allocator backed directly by the Go runtime.
func Heap() Allocator {
	return heapAllocator{}
}

func (heapAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, negativeSize(size)
	}

	return make([]byte, size), nil
}

func (heapAllocator) Free([]byte) {}

func negativeSize(size int) error {
	return fmt.Errorf("%w: negative size %d", errs.ErrAllocationFailed, size)
}
