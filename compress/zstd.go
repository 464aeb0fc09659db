package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// With cgo enabled it uses the reference C library through gozstd; without
// cgo it falls back to the pure Go encoder of klauspost/compress. Both
// produce standard zstd frames and can read each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// zstdLevel is the compression level used by both backends.
const zstdLevel = 3

// NewZstdCompressor creates a Zstd codec.
//
// Example:
//
//	codec := compress.NewZstdCompressor()
//	packed, err := codec.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
