package snapshot

import (
	"fmt"

	"github.com/arloliu/stdx/array"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/format"
	"github.com/arloliu/stdx/section"
)

// EncodeArray snapshots a, header included.
func EncodeArray(a *array.Array, opts ...Option) ([]byte, error) {
	if !a.Valid() {
		return nil, errs.ErrInvalidHandle
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return seal(cfg, format.KindArray, a.Config().Engine(), 1, a.Bytes())
}

// DecodeArray restores an array snapshot into a new array created with the
// WithArrayOptions of opts. The byte order recorded in the snapshot overrides
// any byte order option.
func DecodeArray(data []byte, opts ...Option) (*array.Array, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	h, payload, err := open(cfg, data, format.KindArray)
	if err != nil {
		return nil, err
	}

	head, err := section.ParseArrayHeader(payload, h.GetEndianEngine())
	if err != nil {
		return nil, err
	}
	if head.TotalSize() != len(payload) {
		return nil, fmt.Errorf("%w: array of %d bytes in a %d byte payload", errs.ErrInvalidSnapshot, head.TotalSize(), len(payload))
	}

	return array.FromBytes(payload, withEngine(cfg.arrayOpts, h)...)
}

// withEngine appends the byte order of h without touching the caller's slice.
func withEngine(opts []array.Option, h section.SnapshotHeader) []array.Option {
	return append(opts[:len(opts):len(opts)], array.WithEngine(h.GetEndianEngine()))
}
