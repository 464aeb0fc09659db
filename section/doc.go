// Package section defines the low-level binary structures and constants of stdx.
//
// Two fixed-size structures are defined here:
//
//  1. ArrayHeader: the metadata stored in front of every array's element bytes
//  2. SnapshotHeader: the metadata stored in front of every snapshot payload
//
// # Array Layout
//
// An array is a single contiguous buffer. The header sits in front of the
// first element byte, so the buffer alone is enough to recover all metadata:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (16 bytes, fixed)                     │
//	│  - Count  (4 bytes): elements present        │
//	│  - Max    (4 bytes): element capacity        │
//	│  - Size   (4 bytes): Stride * Max            │
//	│  - Stride (4 bytes): bytes per element       │
//	├──────────────────────────────────────────────┤
//	│ Elements (Stride * Max bytes)                │
//	│  - slot i at [16 + i*Stride, 16+(i+1)*Stride)│
//	└──────────────────────────────────────────────┘
//
// Header fields are written with the array's endian engine.
//
// # Snapshot Layout
//
// SnapshotHeader (24 bytes):
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|----------------------------------
//	0-1    | Magic       | uint16 | 0x5D10, always little-endian
//	2      | Flag        | uint8  | Bit 0: payload endianness
//	3      | Kind        | uint8  | Array, Chain or Hashmap
//	4      | Compression | uint8  | None, Zstd, S2, LZ4
//	5-7    | Reserved    |        | Must be zero
//	8-11   | RawSize     | uint32 | Payload size before compression
//	12-15  | Entries     | uint32 | Top-level entries in the payload
//	16-23  | Checksum    | uint64 | xxHash64 of the raw payload
//
// # Thread Safety
//
// All types in this package are value types and are safe for concurrent use.
package section
