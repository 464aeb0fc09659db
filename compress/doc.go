// Package compress provides the codecs used to compress stdx snapshot payloads.
//
// A snapshot is a fixed-size header followed by a payload holding the raw
// bytes of one or more arrays. The payload can be stored as is or compressed
// with one of the following algorithms, selected by format.CompressionType:
//
//   - None: no compression (format.CompressionNone)
//   - Zstd: best ratio, moderate speed (format.CompressionZstd)
//   - S2: balanced ratio and speed (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//
// Array buffers of numeric records tend to hold long runs of zero bytes in
// unused slots and high bytes, so even the fast codecs usually shrink them
// considerably.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//
//	packed, err := codec.Compress(payload)
//	if err != nil {
//	    return err
//	}
//
//	payload, err = codec.Decompress(packed, len(payload))
//
// Decompress takes the uncompressed size recorded in the snapshot header and
// rejects output of any other length, so a truncated or tampered payload is
// reported as errs.ErrInvalidSnapshot instead of being decoded short.
//
// # Zstd Backends
//
// With cgo enabled the Zstd codec links the reference C implementation via
// github.com/valyala/gozstd. Builds with CGO_ENABLED=0 use the pure Go
// implementation from github.com/klauspost/compress/zstd. Both write standard
// zstd frames.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Encoder and
// decoder state is pooled internally.
package compress
