package stdx

import (
	"fmt"
	"sync/atomic"

	"github.com/arloliu/stdx/alloc"
	"github.com/arloliu/stdx/array"
	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/hashmap"
	"github.com/arloliu/stdx/internal/options"
	"github.com/arloliu/stdx/linked"
	"github.com/arloliu/stdx/quadtree"
)

// Structs is the context every structure is created from. It owns the
// allocator stack and the byte order of array headers.
type Structs struct {
	allocator alloc.Allocator
	tracker   *alloc.Tracker
	limited   *alloc.Limited
	engine    endian.EndianEngine
	closed    atomic.Bool
}

// New creates a Structs context.
//
// The allocator stack is assembled from the options, innermost first: the
// base allocator (heap, pooled, or WithAllocator), the memory limit, then
// tracking.
//
// Returns:
//   - *Structs: Ready to use context
//   - error: Invalid option values
func New(opts ...Option) (*Structs, error) {
	cfg := &Config{engine: endian.GetLittleEndianEngine()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	s := &Structs{engine: cfg.engine}

	base := cfg.allocator
	switch {
	case base != nil:
	case cfg.pooling:
		base = alloc.NewPooled()
	default:
		base = alloc.Heap()
	}

	if cfg.limit > 0 {
		s.limited = alloc.NewLimited(base, cfg.limit)
		base = s.limited
	}
	if cfg.tracking {
		s.tracker = alloc.NewTracker(base)
		base = s.tracker
	}
	s.allocator = base

	tracer().Debugf("stdx: new context (pooling=%v, tracking=%v, limit=%d, big-endian=%v)",
		cfg.pooling, cfg.tracking, cfg.limit, endian.IsBigEndian(cfg.engine))

	return s, nil
}

// Allocator returns the allocator structures of s draw from.
func (s *Structs) Allocator() alloc.Allocator {
	return s.allocator
}

// ArrayOptions returns the array options matching s, for use with packages
// that take them directly, such as snapshot decoding.
func (s *Structs) ArrayOptions() []array.Option {
	return []array.Option{array.WithAllocator(s.allocator), array.WithEngine(s.engine)}
}

// CreateArray creates an array of max elements of stride bytes.
func (s *Structs) CreateArray(stride, max uint32) (*array.Array, error) {
	if s.closed.Load() {
		return nil, errs.ErrClosed
	}

	return array.Create(stride, max, s.ArrayOptions()...)
}

// ResizeArray resizes a to capacity max. a must have been created by s.
// Resizing works after Close since a already exists.
func (s *Structs) ResizeArray(a *array.Array, max uint32) (*array.Array, error) {
	return array.Resize(a, max)
}

// NewChain creates an empty chain whose links draw from s.
func (s *Structs) NewChain() (*linked.Chain, error) {
	if s.closed.Load() {
		return nil, errs.ErrClosed
	}

	return linked.NewChain(s.ArrayOptions()...), nil
}

// CreateQuadTree creates a quad tree leaf with an object buffer of max
// records of stride bytes.
func (s *Structs) CreateQuadTree(stride, max uint32, opts ...quadtree.Option) (*quadtree.Node, error) {
	if s.closed.Load() {
		return nil, errs.ErrClosed
	}

	return quadtree.New(stride, max, s.quadtreeOptions(opts)...)
}

// NewSpatialTree creates a point quad tree covering bounds.
func (s *Structs) NewSpatialTree(bounds quadtree.Bounds, stride, max uint32, opts ...quadtree.Option) (*quadtree.Tree, error) {
	if s.closed.Load() {
		return nil, errs.ErrClosed
	}

	return quadtree.NewTree(bounds, stride, max, s.quadtreeOptions(opts)...)
}

func (s *Structs) quadtreeOptions(opts []quadtree.Option) []quadtree.Option {
	return append([]quadtree.Option{quadtree.WithArrayOptions(s.ArrayOptions()...)}, opts...)
}

// NewHashmap creates a hashmap with room for max entries whose key hash
// table draws from s.
func NewHashmap[V any](s *Structs, max uint32) (*hashmap.Hashmap[V], error) {
	if s.closed.Load() {
		return nil, errs.ErrClosed
	}

	return hashmap.New[V](max, s.ArrayOptions()...)
}

// Stats returns the allocation accounting of s. Without WithTracking the
// result is the zero Stats.
func (s *Structs) Stats() alloc.Stats {
	if s.tracker == nil {
		return alloc.Stats{}
	}

	return s.tracker.Stats()
}

// MemoryUsed returns the bytes charged against the memory limit, or 0
// without WithMemoryLimit.
func (s *Structs) MemoryUsed() int {
	if s.limited == nil {
		return 0
	}

	return s.limited.Used()
}

// Close ends the context. Later creations fail with errs.ErrClosed.
// Structures created before Close stay usable: they can be resized with
// ResizeArray and destroyed.
//
// With tracking enabled, Close returns errs.ErrLeakedAllocations if buffers
// are still live. Closing twice returns nil.
func (s *Structs) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	stats := s.Stats()
	if stats.Live > 0 {
		tracer().Errorf("stdx: closed with %d live buffers (%d bytes)", stats.Live, stats.LiveBytes)
		return fmt.Errorf("%w: %d buffers, %d bytes", errs.ErrLeakedAllocations, stats.Live, stats.LiveBytes)
	}
	if stats.DoubleFrees > 0 || stats.ForeignFrees > 0 {
		tracer().Errorf("stdx: %d double frees, %d foreign frees", stats.DoubleFrees, stats.ForeignFrees)
	}

	return nil
}
