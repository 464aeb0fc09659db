package alloc

import (
	"sync"
	"unsafe"
)

// Stats is a snapshot of the accounting of a Tracker.
type Stats struct {
	Allocs       int // successful allocations
	Frees        int // frees of live buffers
	Live         int // buffers allocated and not yet freed
	LiveBytes    int // bytes held by live buffers
	PeakBytes    int // maximum of LiveBytes over the tracker's lifetime
	DoubleFrees  int // frees of buffers that were already freed
	ForeignFrees int // frees of buffers this tracker never handed out
}

// Tracker wraps an allocator and accounts for every buffer it hands out.
//
// Buffers are identified by the address of their first byte, so a Tracker
// detects a buffer freed twice even when the wrapped allocator would silently
// recycle it. Zero-length buffers are not tracked.
type Tracker struct {
	mu    sync.Mutex
	inner Allocator
	live  map[uintptr]int
	freed map[uintptr]struct{}
	stats Stats
}

var _ Allocator = (*Tracker)(nil)

// NewTracker wraps inner. A nil inner tracks heap allocations.
func NewTracker(inner Allocator) *Tracker {
	if inner == nil {
		inner = Heap()
	}

	return &Tracker{
		inner: inner,
		live:  make(map[uintptr]int),
		freed: make(map[uintptr]struct{}),
	}
}

func addr(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
}

// Alloc allocates through the wrapped allocator and records the buffer.
func (t *Tracker) Alloc(size int) ([]byte, error) {
	buf, err := t.inner.Alloc(size)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return buf, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := addr(buf)
	delete(t.freed, key)
	t.live[key] = len(buf)

	t.stats.Allocs++
	t.stats.Live++
	t.stats.LiveBytes += len(buf)
	t.stats.PeakBytes = max(t.stats.PeakBytes, t.stats.LiveBytes)

	return buf, nil
}

// Free releases buf through the wrapped allocator. Double and foreign frees
// are counted and reported but never passed on.
func (t *Tracker) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}

	t.mu.Lock()
	key := addr(buf)
	size, ok := t.live[key]
	if !ok {
		if _, wasFreed := t.freed[key]; wasFreed {
			t.stats.DoubleFrees++
			t.mu.Unlock()
			tracer().Errorf("alloc tracker: double free of %d-byte buffer", len(buf))

			return
		}
		t.stats.ForeignFrees++
		t.mu.Unlock()
		tracer().Errorf("alloc tracker: free of untracked %d-byte buffer", len(buf))

		return
	}

	delete(t.live, key)
	t.freed[key] = struct{}{}
	t.stats.Frees++
	t.stats.Live--
	t.stats.LiveBytes -= size
	t.mu.Unlock()

	t.inner.Free(buf)
}

// Stats returns a snapshot of the accounting.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stats
}

// Reset forgets all tracked buffers and zeroes the accounting.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	clear(t.live)
	clear(t.freed)
	t.stats = Stats{}
}
