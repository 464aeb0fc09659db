package section

import "math"

// Array header layout. The field order follows the in-memory header
// {count, max, size, stride}, each a 4-byte unsigned integer.
const (
	ArrayHeaderSize = 16 // fixed array header size in bytes

	CountOffset  = 0  // byte offset of the logical element count
	MaxOffset    = 4  // byte offset of the element capacity
	SizeOffset   = 8  // byte offset of the element storage size (stride * max)
	StrideOffset = 12 // byte offset of the element size

	MaxArraySize = math.MaxUint32 // upper bound of stride * max
)

// Snapshot header layout.
const (
	SnapshotHeaderSize = 24 // fixed snapshot header size in bytes

	// Bit masks of the snapshot flag byte.
	EndiannessMask = 0x01 // 0=little-endian payload, 1=big-endian payload

	// MagicSnapshotV1 identifies a version 1 stdx snapshot.
	MagicSnapshotV1 = 0x5D10
)
