package format

type (
	HeaderField     uint8
	CompressionType uint8
	SnapshotKind    uint8
)

const (
	FieldSize   HeaderField = 0x0 // FieldSize selects the byte size of the element storage (stride * max).
	FieldStride HeaderField = 0x1 // FieldStride selects the byte size of one element.
	FieldCount  HeaderField = 0x2 // FieldCount selects the logical element count.
	FieldMax    HeaderField = 0x3 // FieldMax selects the element capacity.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindArray   SnapshotKind = 0x1 // KindArray is a snapshot of a single array.
	KindChain   SnapshotKind = 0x2 // KindChain is a snapshot of a linked array chain.
	KindHashmap SnapshotKind = 0x3 // KindHashmap is a snapshot of a byte-valued hashmap.
)

func (f HeaderField) String() string {
	switch f {
	case FieldSize:
		return "Size"
	case FieldStride:
		return "Stride"
	case FieldCount:
		return "Count"
	case FieldMax:
		return "Max"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (k SnapshotKind) String() string {
	switch k {
	case KindArray:
		return "Array"
	case KindChain:
		return "Chain"
	case KindHashmap:
		return "Hashmap"
	default:
		return "Unknown"
	}
}
