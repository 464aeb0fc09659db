package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/format"
	"github.com/arloliu/stdx/internal/pool"
	"github.com/arloliu/stdx/linked"
	"github.com/arloliu/stdx/section"
)

// EncodeChain snapshots every link of the chain containing l, head to tail.
func EncodeChain(c *linked.Chain, l linked.Link, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	head, err := c.First(l)
	if err != nil {
		return nil, err
	}
	first, err := c.Array(head)
	if err != nil {
		return nil, err
	}
	engine := first.Config().Engine()

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	var entries uint32
	for link := range c.Links(head) {
		arr, err := c.Array(link)
		if err != nil {
			return nil, err
		}
		raw := arr.Bytes()
		if len(raw) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: link %s holds %d bytes", errs.ErrSizeOverflow, link, len(raw))
		}

		buf.Grow(4 + len(raw))
		buf.AppendUint32(engine, uint32(len(raw))) //nolint:gosec
		buf.MustWrite(raw)
		entries++
	}

	return seal(cfg, format.KindChain, engine, entries, buf.Bytes())
}

// DecodeChain restores a chain snapshot as a new standalone chain in c and
// returns its head. The link arrays are created with the options of c, so
// WithArrayOptions has no effect here.
//
// If the payload is malformed, the links restored so far are destroyed.
func DecodeChain(data []byte, c *linked.Chain, opts ...Option) (linked.Link, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return linked.NoLink, err
	}

	h, payload, err := open(cfg, data, format.KindChain)
	if err != nil {
		return linked.NoLink, err
	}
	engine := h.GetEndianEngine()

	head, prev := linked.NoLink, linked.NoLink
	fail := func(err error) (linked.Link, error) {
		if !head.IsZero() {
			_, _ = c.Collapse(head)
		}

		return linked.NoLink, err
	}

	off := 0
	for i := range h.Entries {
		if len(payload)-off < 4 {
			return fail(fmt.Errorf("%w: link %d: truncated length", errs.ErrInvalidSnapshot, i))
		}
		n := int(engine.Uint32(payload[off:]))
		off += 4
		if len(payload)-off < n {
			return fail(fmt.Errorf("%w: link %d: %d bytes announced, %d left", errs.ErrInvalidSnapshot, i, n, len(payload)-off))
		}
		raw := payload[off : off+n]
		off += n

		ah, err := section.ParseArrayHeader(raw, engine)
		if err != nil {
			return fail(err)
		}
		if ah.TotalSize() != n {
			return fail(fmt.Errorf("%w: link %d: array of %d bytes in %d", errs.ErrInvalidSnapshot, i, ah.TotalSize(), n))
		}

		link, err := c.CreateLink(prev, ah.Stride, ah.Max)
		if err != nil {
			return fail(err)
		}
		if head.IsZero() {
			head = link
		}
		prev = link

		arr, err := c.Array(link)
		if err != nil {
			return fail(err)
		}
		if err := arr.Load(raw, engine); err != nil {
			return fail(err)
		}
	}

	if off != len(payload) {
		return fail(fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidSnapshot, len(payload)-off))
	}
	if head.IsZero() {
		return linked.NoLink, fmt.Errorf("%w: chain without links", errs.ErrInvalidSnapshot)
	}

	return head, nil
}
