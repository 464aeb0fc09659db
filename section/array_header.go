package section

import (
	"fmt"

	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/format"
)

// ArrayHeader is the metadata stored in front of every array's element bytes.
//
// A value of ArrayHeader is a snapshot: it never aliases the live header of
// an array, so mutating it has no effect on the array it was read from.
type ArrayHeader struct {
	// Count is the number of elements considered present. Count <= Max.
	//
	// Offset: 0, Size: 4 bytes
	Count uint32
	// Max is the element capacity.
	//
	// Offset: 4, Size: 4 bytes
	Max uint32
	// Size is the byte size of the element storage, always Stride * Max.
	//
	// Offset: 8, Size: 4 bytes
	Size uint32
	// Stride is the byte size of one element.
	//
	// Offset: 12, Size: 4 bytes
	Stride uint32
}

// NewArrayHeader creates an empty header for stride-sized elements with capacity max.
//
// Returns:
//   - ArrayHeader: Header with Count=0 and Size=stride*max
//   - error: ErrInvalidStride for stride 0, ErrSizeOverflow when stride*max exceeds uint32
func NewArrayHeader(stride, max uint32) (ArrayHeader, error) {
	if stride == 0 {
		return ArrayHeader{}, errs.ErrInvalidStride
	}

	size := uint64(stride) * uint64(max)
	if size > MaxArraySize {
		return ArrayHeader{}, fmt.Errorf("%w: stride=%d max=%d", errs.ErrSizeOverflow, stride, max)
	}

	return ArrayHeader{Count: 0, Max: max, Size: uint32(size), Stride: stride}, nil
}

// Field returns a single header field.
func (h ArrayHeader) Field(f format.HeaderField) uint32 {
	switch f {
	case format.FieldSize:
		return h.Size
	case format.FieldStride:
		return h.Stride
	case format.FieldCount:
		return h.Count
	case format.FieldMax:
		return h.Max
	default:
		return 0
	}
}

// TotalSize returns the byte size of a buffer holding this header and its elements.
func (h ArrayHeader) TotalSize() int {
	return ArrayHeaderSize + int(h.Size)
}

// Validate checks the header invariants.
func (h ArrayHeader) Validate() error {
	if h.Stride == 0 {
		return errs.ErrInvalidStride
	}
	if uint64(h.Stride)*uint64(h.Max) != uint64(h.Size) {
		return fmt.Errorf("%w: size %d != stride %d * max %d", errs.ErrInvalidHeader, h.Size, h.Stride, h.Max)
	}
	if h.Count > h.Max {
		return fmt.Errorf("%w: count %d > max %d", errs.ErrInvalidHeader, h.Count, h.Max)
	}

	return nil
}

// WriteToSlice writes the header into the first ArrayHeaderSize bytes of data.
func (h ArrayHeader) WriteToSlice(data []byte, engine endian.EndianEngine) error {
	if len(data) < ArrayHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine.PutUint32(data[CountOffset:], h.Count)
	engine.PutUint32(data[MaxOffset:], h.Max)
	engine.PutUint32(data[SizeOffset:], h.Size)
	engine.PutUint32(data[StrideOffset:], h.Stride)

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h ArrayHeader) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, 0, ArrayHeaderSize)
	b = engine.AppendUint32(b, h.Count)
	b = engine.AppendUint32(b, h.Max)
	b = engine.AppendUint32(b, h.Size)
	b = engine.AppendUint32(b, h.Stride)

	return b
}

// ParseArrayHeader parses an ArrayHeader from the start of data.
//
// The header is not validated; use Validate for untrusted input.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least 16 bytes)
//   - engine: Byte order the header was written with
//
// Returns:
//   - ArrayHeader: Parsed header
//   - error: ErrInvalidHeaderSize if data is too short
func ParseArrayHeader(data []byte, engine endian.EndianEngine) (ArrayHeader, error) {
	if len(data) < ArrayHeaderSize {
		return ArrayHeader{}, errs.ErrInvalidHeaderSize
	}

	return ArrayHeader{
		Count:  engine.Uint32(data[CountOffset:]),
		Max:    engine.Uint32(data[MaxOffset:]),
		Size:   engine.Uint32(data[SizeOffset:]),
		Stride: engine.Uint32(data[StrideOffset:]),
	}, nil
}
