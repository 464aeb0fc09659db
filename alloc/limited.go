package alloc

import (
	"fmt"
	"sync"

	"github.com/arloliu/stdx/errs"
)

// Limited wraps an allocator with a budget of live bytes.
//
// Allocations that would push the live total above the budget fail with
// errs.ErrAllocationFailed. Freed bytes return to the budget.
type Limited struct {
	mu    sync.Mutex
	inner Allocator
	limit int
	used  int
}

var _ Allocator = (*Limited)(nil)

// NewLimited wraps inner with a budget of limit bytes. A nil inner uses the heap.
func NewLimited(inner Allocator, limit int) *Limited {
	if inner == nil {
		inner = Heap()
	}

	return &Limited{inner: inner, limit: limit}
}

// Alloc allocates size bytes if the budget allows it.
func (l *Limited) Alloc(size int) ([]byte, error) {
	l.mu.Lock()
	if size > l.limit-l.used {
		used := l.used
		l.mu.Unlock()

		return nil, fmt.Errorf("%w: requested %d bytes, %d of %d in use",
			errs.ErrAllocationFailed, size, used, l.limit)
	}
	l.used += size
	l.mu.Unlock()

	buf, err := l.inner.Alloc(size)
	if err != nil {
		l.mu.Lock()
		l.used -= size
		l.mu.Unlock()

		return nil, err
	}

	return buf, nil
}

// Free releases buf and returns its bytes to the budget.
func (l *Limited) Free(buf []byte) {
	l.mu.Lock()
	l.used = max(l.used-len(buf), 0)
	l.mu.Unlock()

	l.inner.Free(buf)
}

// Used returns the bytes currently charged against the budget.
func (l *Limited) Used() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.used
}

// Limit returns the budget in bytes.
func (l *Limited) Limit() int {
	return l.limit
}
