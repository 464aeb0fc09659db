package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/stdx/encoding"
	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/format"
	"github.com/arloliu/stdx/hashmap"
)

// EncodeHashmap snapshots the live slots of m. Keys longer than
// encoding.MaxKeyLength are rejected with errs.ErrKeyTooLong.
func EncodeHashmap(m *hashmap.Hashmap[[]byte], opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	enc := encoding.NewVarStringEncoder()
	defer enc.Reset()

	enc.WriteUvarint(uint64(m.Max()))
	for i := range m.Max() {
		key, v, live := m.Slot(i)
		if !live {
			continue
		}

		enc.WriteUvarint(uint64(i))
		if err := enc.Write(key); err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		enc.WriteBytes(v)
	}

	return seal(cfg, format.KindHashmap, endian.GetLittleEndianEngine(), uint32(enc.Len()), enc.Bytes()) //nolint:gosec
}

// DecodeHashmap restores a hashmap snapshot into a new map whose hash table
// is created with the WithArrayOptions of opts. Entries keep their slot
// positions and values are copied out of data.
func DecodeHashmap(data []byte, opts ...Option) (*hashmap.Hashmap[[]byte], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	h, payload, err := open(cfg, data, format.KindHashmap)
	if err != nil {
		return nil, err
	}

	dec := encoding.NewVarStringDecoder(payload)
	capacity, err := dec.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if capacity > uint64(cfg.maxCapacity) {
		return nil, fmt.Errorf("%w: capacity %d exceeds limit %d", errs.ErrInvalidSnapshot, capacity, cfg.maxCapacity)
	}
	if uint64(h.Entries) > capacity {
		return nil, fmt.Errorf("%w: %d entries, capacity %d", errs.ErrInvalidSnapshot, h.Entries, capacity)
	}

	m, err := hashmap.New[[]byte](uint32(capacity), cfg.arrayOpts...)
	if err != nil {
		return nil, err
	}

	for range h.Entries {
		if err := restoreSlot(m, dec); err != nil {
			m.Destroy()
			return nil, err
		}
	}
	if dec.Remaining() != 0 {
		m.Destroy()
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidSnapshot, dec.Remaining())
	}

	return m, nil
}

func restoreSlot(m *hashmap.Hashmap[[]byte], dec *encoding.VarStringDecoder) error {
	slot, err := dec.ReadUvarint()
	if err != nil {
		return err
	}
	key, err := dec.Read()
	if err != nil {
		return err
	}
	value, err := dec.ReadBytes()
	if err != nil {
		return err
	}
	if slot > math.MaxUint32 {
		return fmt.Errorf("%w: slot %d", errs.ErrInvalidSnapshot, slot)
	}

	if err := m.SetSlot(uint32(slot), key, append([]byte(nil), value...)); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	return nil
}
