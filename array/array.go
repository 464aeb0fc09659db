package array

import (
	"fmt"
	"iter"

	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/format"
	"github.com/arloliu/stdx/section"
)

// Head is a value snapshot of an array header.
type Head = section.ArrayHeader

// Array is a handle to a header-prefixed element buffer.
//
// The zero value and destroyed arrays are invalid handles.
type Array struct {
	buf []byte // header followed by stride*max element bytes
	cfg *Config
}

// Create allocates an array of max elements of stride bytes each.
//
// The element storage is zeroed and count starts at 0.
//
// Returns:
//   - *Array: New array handle
//   - error: ErrInvalidStride for stride 0, ErrSizeOverflow when stride*max
//     does not fit the header, or the allocator's ErrAllocationFailed
func Create(stride, max uint32, opts ...Option) (*Array, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return create(cfg, stride, max)
}

func create(cfg *Config, stride, capacity uint32) (*Array, error) {
	h, err := section.NewArrayHeader(stride, capacity)
	if err != nil {
		return nil, err
	}

	buf, err := cfg.allocator.Alloc(h.TotalSize())
	if err != nil {
		return nil, fmt.Errorf("create array (stride=%d, max=%d): %w", stride, capacity, err)
	}
	if err := h.WriteToSlice(buf, cfg.engine); err != nil {
		cfg.allocator.Free(buf)
		return nil, err
	}

	return &Array{buf: buf, cfg: cfg}, nil
}

// FromBytes creates an array holding a copy of raw, a header-prefixed buffer
// as returned by Bytes. The header is read with the configured byte order and
// validated before any memory is allocated.
func FromBytes(raw []byte, opts ...Option) (*Array, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	h, err := parseRaw(raw, cfg.engine)
	if err != nil {
		return nil, err
	}

	a, err := create(cfg, h.Stride, h.Max)
	if err != nil {
		return nil, err
	}
	if err := a.Load(raw, cfg.engine); err != nil {
		a.Destroy()
		return nil, err
	}

	return a, nil
}

// Load replaces the contents of a with raw, a header-prefixed buffer whose
// header was written with engine (nil means the byte order of a).
//
// raw must have the stride of a and at most its capacity. Slots of a beyond
// the capacity of raw are zeroed.
func (a *Array) Load(raw []byte, engine endian.EndianEngine) error {
	if !a.Valid() {
		return errs.ErrInvalidHandle
	}
	if engine == nil {
		engine = a.cfg.engine
	}

	h, err := parseRaw(raw, engine)
	if err != nil {
		return err
	}
	stride, capacity := a.stride(), a.max()
	if h.Stride != stride {
		return fmt.Errorf("%w: load stride %d into stride %d", errs.ErrStrideMismatch, h.Stride, stride)
	}
	if h.Max > capacity {
		return fmt.Errorf("%w: load %d slots into %d", errs.ErrCapacityExceeded, h.Max, capacity)
	}

	data := a.buf[section.ArrayHeaderSize:]
	n := copy(data, raw[section.ArrayHeaderSize:h.TotalSize()])
	clear(data[n:])
	a.setCount(h.Count)

	return nil
}

func parseRaw(raw []byte, engine endian.EndianEngine) (Head, error) {
	h, err := section.ParseArrayHeader(raw, engine)
	if err != nil {
		return Head{}, err
	}
	if err := h.Validate(); err != nil {
		return Head{}, err
	}
	if len(raw) < h.TotalSize() {
		return Head{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, h.TotalSize(), len(raw))
	}

	return h, nil
}

// Resize moves the contents of a into a new array of capacity max.
//
// Element bytes up to min(old max, max)*stride are preserved and count is
// clamped to max. On success a is destroyed and must not be used again; on
// failure a is left untouched and stays valid.
func Resize(a *Array, max uint32) (*Array, error) {
	if !a.Valid() {
		return nil, errs.ErrInvalidHandle
	}

	old := a.Head()
	h, err := section.NewArrayHeader(old.Stride, max)
	if err != nil {
		return nil, err
	}

	buf, err := a.cfg.allocator.Alloc(h.TotalSize())
	if err != nil {
		return nil, fmt.Errorf("resize array (stride=%d, max %d -> %d): %w", old.Stride, old.Max, max, err)
	}

	keep := section.ArrayHeaderSize + int(min(old.Size, h.Size))
	copy(buf[section.ArrayHeaderSize:keep], a.buf[section.ArrayHeaderSize:keep])

	h.Count = min(old.Count, max)
	if err := h.WriteToSlice(buf, a.cfg.engine); err != nil {
		a.cfg.allocator.Free(buf)
		return nil, err
	}

	tracer().Debugf("array: resized stride=%d max %d -> %d, count %d -> %d",
		old.Stride, old.Max, h.Max, old.Count, h.Count)

	resized := &Array{buf: buf, cfg: a.cfg}
	a.Destroy()

	return resized, nil
}

// Valid reports whether a refers to a live buffer.
func (a *Array) Valid() bool {
	return a != nil && a.buf != nil
}

// Destroy releases the buffer. Calling Destroy on an invalid handle does nothing.
func (a *Array) Destroy() {
	if !a.Valid() {
		return
	}

	a.cfg.allocator.Free(a.buf)
	a.buf = nil
}

// Head returns a copy of the header. An invalid handle yields the zero Head.
func (a *Array) Head() Head {
	if !a.Valid() {
		return Head{}
	}

	h, _ := section.ParseArrayHeader(a.buf, a.cfg.engine)

	return h
}

// Field returns a single header field.
func (a *Array) Field(f format.HeaderField) uint32 {
	return a.Head().Field(f)
}

// Count returns the logical element count.
func (a *Array) Count() uint32 {
	if !a.Valid() {
		return 0
	}

	return a.count()
}

// Max returns the element capacity.
func (a *Array) Max() uint32 {
	if !a.Valid() {
		return 0
	}

	return a.max()
}

// Stride returns the byte size of one element.
func (a *Array) Stride() uint32 {
	if !a.Valid() {
		return 0
	}

	return a.stride()
}

// Config returns the configuration the array was created with.
func (a *Array) Config() *Config {
	return a.cfg
}

// Push copies stride bytes of in into slot count and increments count.
//
// Push only looks at count; slots previously written by Put below count are
// never revisited, and a slot at count written by Put is overwritten.
//
// Returns:
//   - error: ErrCapacityExceeded when count == max (nothing is written),
//     ErrStrideMismatch when in is shorter than stride, ErrInvalidHandle
func (a *Array) Push(in []byte) error {
	if !a.Valid() {
		return errs.ErrInvalidHandle
	}

	stride, count, capacity := a.stride(), a.count(), a.max()
	if len(in) < int(stride) {
		return fmt.Errorf("%w: got %d bytes, stride %d", errs.ErrStrideMismatch, len(in), stride)
	}
	if count >= capacity {
		return fmt.Errorf("%w: push at count %d, max %d", errs.ErrCapacityExceeded, count, capacity)
	}

	copy(a.slot(count, stride), in[:stride])
	a.setCount(count + 1)

	return nil
}

// Pop decrements count, copies the slot at the new count into out and zeroes it.
//
// A nil out discards the value. Other slots are not moved.
//
// Returns:
//   - error: ErrEmpty when count == 0, ErrStrideMismatch when out is non-nil
//     and shorter than stride, ErrInvalidHandle
func (a *Array) Pop(out []byte) error {
	if !a.Valid() {
		return errs.ErrInvalidHandle
	}

	stride, count := a.stride(), a.count()
	if out != nil && len(out) < int(stride) {
		return fmt.Errorf("%w: got %d bytes, stride %d", errs.ErrStrideMismatch, len(out), stride)
	}
	if count == 0 {
		return errs.ErrEmpty
	}

	count--
	slot := a.slot(count, stride)
	if out != nil {
		copy(out, slot)
	}
	clear(slot)
	a.setCount(count)

	return nil
}

// Put copies stride bytes of in into slot index, regardless of count.
//
// If index >= count, count becomes index+1 so that subsequent pushes resume
// after the placed element. Otherwise Put is a plain overwrite.
//
// Returns:
//   - error: ErrIndexOutOfRange when index >= max, ErrStrideMismatch, ErrInvalidHandle
func (a *Array) Put(index uint32, in []byte) error {
	if !a.Valid() {
		return errs.ErrInvalidHandle
	}

	stride, count, capacity := a.stride(), a.count(), a.max()
	if len(in) < int(stride) {
		return fmt.Errorf("%w: got %d bytes, stride %d", errs.ErrStrideMismatch, len(in), stride)
	}
	if index >= capacity {
		return fmt.Errorf("%w: put at %d, max %d", errs.ErrIndexOutOfRange, index, capacity)
	}

	copy(a.slot(index, stride), in[:stride])
	if index >= count {
		a.setCount(index + 1)
	}

	return nil
}

// Pull copies slot index into out and zeroes the slot.
//
// Count is unchanged and later elements are not shifted: pulling leaves a
// hole. A nil out discards the value.
//
// Returns:
//   - error: ErrIndexOutOfRange when index >= max, ErrStrideMismatch, ErrInvalidHandle
func (a *Array) Pull(index uint32, out []byte) error {
	if !a.Valid() {
		return errs.ErrInvalidHandle
	}

	stride, capacity := a.stride(), a.max()
	if out != nil && len(out) < int(stride) {
		return fmt.Errorf("%w: got %d bytes, stride %d", errs.ErrStrideMismatch, len(out), stride)
	}
	if index >= capacity {
		return fmt.Errorf("%w: pull at %d, max %d", errs.ErrIndexOutOfRange, index, capacity)
	}

	slot := a.slot(index, stride)
	if out != nil {
		copy(out, slot)
	}
	clear(slot)

	return nil
}

// At returns a read-only view of slot index. The view is valid until the
// array is resized or destroyed; writing through it bypasses the header.
func (a *Array) At(index uint32) ([]byte, error) {
	if !a.Valid() {
		return nil, errs.ErrInvalidHandle
	}

	stride, capacity := a.stride(), a.max()
	if index >= capacity {
		return nil, fmt.Errorf("%w: at %d, max %d", errs.ErrIndexOutOfRange, index, capacity)
	}

	return a.slot(index, stride), nil
}

// All returns an iterator over the slots [0, count) with their indices.
// Holes left by Pull are yielded as zeroed slots.
func (a *Array) All() iter.Seq2[uint32, []byte] {
	return func(yield func(uint32, []byte) bool) {
		if !a.Valid() {
			return
		}

		stride := a.stride()
		for i := range a.count() {
			if !yield(i, a.slot(i, stride)) {
				return
			}
		}
	}
}

// Bytes returns the raw buffer: header followed by element storage.
// The slice aliases the array and is invalidated by Resize and Destroy.
func (a *Array) Bytes() []byte {
	if !a.Valid() {
		return nil
	}

	return a.buf
}

func (a *Array) count() uint32 {
	return a.cfg.engine.Uint32(a.buf[section.CountOffset:])
}

func (a *Array) setCount(count uint32) {
	a.cfg.engine.PutUint32(a.buf[section.CountOffset:], count)
}

func (a *Array) max() uint32 {
	return a.cfg.engine.Uint32(a.buf[section.MaxOffset:])
}

func (a *Array) stride() uint32 {
	return a.cfg.engine.Uint32(a.buf[section.StrideOffset:])
}

func (a *Array) slot(index, stride uint32) []byte {
	off := section.ArrayHeaderSize + int(index)*int(stride)
	end := off + int(stride)

	return a.buf[off:end:end]
}
