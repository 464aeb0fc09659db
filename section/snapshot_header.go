package section

import (
	"fmt"

	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/format"
)

// SnapshotHeader is the fixed-size header in front of every snapshot payload.
//
// The magic number and the flag byte are always written little-endian so the
// payload byte order can be discovered before anything else is parsed.
type SnapshotHeader struct {
	// Magic identifies the snapshot format version.
	//
	// Offset: 0, Size: 2 bytes
	Magic uint16
	// Flag is a packed field of options. Bit 0 is the payload endianness.
	//
	// Offset: 2, Size: 1 byte
	Flag uint8
	// Kind tells which structure the payload holds.
	//
	// Offset: 3, Size: 1 byte
	Kind format.SnapshotKind
	// Compression is the codec applied to the payload.
	//
	// Offset: 4, Size: 1 byte (followed by 3 reserved bytes)
	Compression format.CompressionType
	// RawSize is the payload size before compression.
	//
	// Offset: 8, Size: 4 bytes
	RawSize uint32
	// Entries is the number of top-level entries in the payload
	// (1 for arrays, links for chains, live slots for hashmaps).
	//
	// Offset: 12, Size: 4 bytes
	Entries uint32
	// Checksum is the xxHash64 of the uncompressed payload.
	//
	// Offset: 16, Size: 8 bytes
	Checksum uint64
}

// NewSnapshotHeader creates a header for a payload of the given kind.
func NewSnapshotHeader(kind format.SnapshotKind, compression format.CompressionType, engine endian.EndianEngine) SnapshotHeader {
	h := SnapshotHeader{
		Magic:       MagicSnapshotV1,
		Kind:        kind,
		Compression: compression,
	}
	if endian.IsBigEndian(engine) {
		h.Flag |= EndiannessMask
	}

	return h
}

// IsBigEndian reports whether the payload was written big-endian.
func (h SnapshotHeader) IsBigEndian() bool {
	return h.Flag&EndiannessMask != 0
}

// GetEndianEngine returns the engine of the payload byte order.
func (h SnapshotHeader) GetEndianEngine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Bytes serializes the header into a new byte slice.
func (h SnapshotHeader) Bytes() []byte {
	b := make([]byte, SnapshotHeaderSize)

	b[0] = byte(h.Magic)
	b[1] = byte(h.Magic >> 8)
	b[2] = h.Flag
	b[3] = uint8(h.Kind)
	b[4] = uint8(h.Compression)

	engine := h.GetEndianEngine()
	engine.PutUint32(b[8:12], h.RawSize)
	engine.PutUint32(b[12:16], h.Entries)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// Parse parses the header from a byte slice of exactly SnapshotHeaderSize bytes.
func (h *SnapshotHeader) Parse(data []byte) error {
	if len(data) != SnapshotHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Magic = uint16(data[0]) | uint16(data[1])<<8
	if h.Magic != MagicSnapshotV1 {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, h.Magic)
	}

	h.Flag = data[2]
	h.Kind = format.SnapshotKind(data[3])
	h.Compression = format.CompressionType(data[4])

	engine := h.GetEndianEngine()
	h.RawSize = engine.Uint32(data[8:12])
	h.Entries = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return nil
}

// ParseSnapshotHeader parses a SnapshotHeader from the start of data.
func ParseSnapshotHeader(data []byte) (SnapshotHeader, error) {
	if len(data) < SnapshotHeaderSize {
		return SnapshotHeader{}, errs.ErrInvalidHeaderSize
	}

	h := SnapshotHeader{}
	if err := h.Parse(data[:SnapshotHeaderSize]); err != nil {
		return SnapshotHeader{}, err
	}

	return h, nil
}
