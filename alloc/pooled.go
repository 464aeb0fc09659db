package alloc

import (
	"math/bits"

	"github.com/arloliu/stdx/internal/pool"
)

// Size classes of the pooled allocator: 32B up to 1MiB.
const (
	minClassShift = 5
	maxClassShift = 20
)

// Pooled is an allocator that recycles freed buffers.
//
// Requests are rounded up to a power-of-two size class, each class backed by
// its own pool. Requests above the largest class go straight to the heap and
// are dropped on Free.
type Pooled struct {
	classes [maxClassShift - minClassShift + 1]*pool.ByteBufferPool
}

var _ Allocator = (*Pooled)(nil)

// NewPooled creates a pooled allocator.
func NewPooled() *Pooled {
	p := &Pooled{}
	for i := range p.classes {
		size := 1 << (i + minClassShift)
		p.classes[i] = pool.NewByteBufferPool(size, size)
	}

	return p
}

// classIndex returns the class serving size bytes, or -1 when none does.
func classIndex(size int) int {
	shift := minClassShift
	if size > 1<<minClassShift {
		shift = bits.Len(uint(size - 1))
	}
	if shift > maxClassShift {
		return -1
	}

	return shift - minClassShift
}

// Alloc returns a zeroed buffer of length size.
func (p *Pooled) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, negativeSize(size)
	}

	idx := classIndex(size)
	if idx < 0 {
		return make([]byte, size), nil
	}

	bb := p.classes[idx].Get()
	buf := bb.B[:size]
	clear(buf)

	return buf, nil
}

// Free hands buf back to its size class.
func (p *Pooled) Free(buf []byte) {
	c := cap(buf)
	if c == 0 || c&(c-1) != 0 {
		return
	}

	idx := classIndex(c)
	if idx < 0 || 1<<(idx+minClassShift) != c {
		return
	}

	p.classes[idx].Put(&pool.ByteBuffer{B: buf[:0]})
}
