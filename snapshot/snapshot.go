package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/stdx/compress"
	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/format"
	"github.com/arloliu/stdx/internal/hash"
	"github.com/arloliu/stdx/section"
)

// ReadHeader parses the header at the start of a snapshot without touching
// the payload.
func ReadHeader(data []byte) (section.SnapshotHeader, error) {
	return section.ParseSnapshotHeader(data)
}

// seal wraps payload into a snapshot.
func seal(cfg *Config, kind format.SnapshotKind, engine endian.EndianEngine, entries uint32, payload []byte) ([]byte, error) {
	if len(payload) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %s payload of %d bytes", errs.ErrSizeOverflow, kind, len(payload))
	}

	h := section.NewSnapshotHeader(kind, cfg.compression, engine)
	h.RawSize = uint32(len(payload)) //nolint:gosec
	h.Entries = entries
	h.Checksum = hash.Checksum(payload)

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	packed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress %s snapshot: %w", kind, err)
	}
	if h.Compression != format.CompressionNone && len(packed) >= len(payload) {
		h.Compression = format.CompressionNone
		packed = payload
	}

	out := make([]byte, 0, section.SnapshotHeaderSize+len(packed))
	out = append(out, h.Bytes()...)
	out = append(out, packed...)

	tracer().Debugf("snapshot: encoded %s, %d entries, %d -> %d bytes (%s)",
		kind, entries, len(payload), len(packed), h.Compression)

	return out, nil
}

// open validates the header and checksum of data and returns the raw payload.
func open(cfg *Config, data []byte, kind format.SnapshotKind) (section.SnapshotHeader, []byte, error) {
	h, err := section.ParseSnapshotHeader(data)
	if err != nil {
		return h, nil, err
	}
	if h.Kind != kind {
		return h, nil, fmt.Errorf("%w: want %s, got %s", errs.ErrKindMismatch, kind, h.Kind)
	}

	if h.RawSize > cfg.maxRawSize {
		return h, nil, fmt.Errorf("%w: %s payload of %d bytes exceeds limit %d", errs.ErrInvalidSnapshot, kind, h.RawSize, cfg.maxRawSize)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return h, nil, err
	}
	payload, err := codec.Decompress(data[section.SnapshotHeaderSize:], int(h.RawSize))
	if err != nil {
		return h, nil, err
	}
	if sum := hash.Checksum(payload); sum != h.Checksum {
		return h, nil, fmt.Errorf("%w: header 0x%016X, payload 0x%016X", errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	return h, payload, nil
}
