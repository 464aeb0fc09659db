package hashmap

import (
	"fmt"
	"iter"

	"github.com/arloliu/stdx/array"
	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/internal/hash"
)

// hashStride is the byte size of one key hash slot.
const hashStride = 8

// Hashmap maps non-empty strings to values of type V.
type Hashmap[V any] struct {
	keys   []string
	values []V
	hashes *array.Array
	engine endian.EndianEngine
	count  uint32
}

// New creates an empty hashmap with room for max entries. The key hash table
// is allocated through the array options; an allocation failure is returned
// unchanged.
func New[V any](max uint32, opts ...array.Option) (*Hashmap[V], error) {
	hashes, err := array.Create(hashStride, max, opts...)
	if err != nil {
		return nil, fmt.Errorf("create hashmap (max=%d): %w", max, err)
	}

	return &Hashmap[V]{
		keys:   make([]string, max),
		values: make([]V, max),
		hashes: hashes,
		engine: hashes.Config().Engine(),
	}, nil
}

// Set stores v under key.
//
// An existing key is overwritten in place and the count is unchanged.
// Otherwise the entry goes into the lowest free slot. Set returns false, and
// leaves the map unchanged, when key is empty or the map is full.
func (m *Hashmap[V]) Set(key string, v V) bool {
	if key == "" || !m.hashes.Valid() {
		return false
	}

	h := hash.ID(key)
	free := -1
	for i, k := range m.keys {
		if k == "" {
			if free < 0 {
				free = i
			}

			continue
		}
		if m.hashAt(i) == h && k == key {
			m.values[i] = v
			return true
		}
	}

	if free < 0 {
		tracer().Debugf("hashmap: set %q rejected, all %d slots in use", key, len(m.keys))
		return false
	}

	if err := m.storeSlot(free, key, h, v); err != nil {
		tracer().Errorf("hashmap: set %q: %v", key, err)
		return false
	}
	m.count++

	return true
}

// Get returns the value stored under key.
func (m *Hashmap[V]) Get(key string) (V, bool) {
	if i := m.find(key); i >= 0 {
		return m.values[i], true
	}

	var zero V

	return zero, false
}

// Rem removes key and reports whether it was present. The slot is cleared
// and later entries keep their positions.
func (m *Hashmap[V]) Rem(key string) bool {
	i := m.find(key)
	if i < 0 {
		return false
	}

	if err := m.hashes.Pull(uint32(i), nil); err != nil {
		tracer().Errorf("hashmap: rem %q: %v", key, err)
		return false
	}

	var zero V
	m.keys[i] = ""
	m.values[i] = zero
	m.count--

	return true
}

// Destroy releases the storage of the map. A destroyed map behaves as an
// empty map of capacity zero.
func (m *Hashmap[V]) Destroy() {
	m.hashes.Destroy()
	m.keys = nil
	m.values = nil
	m.count = 0
}

// Count returns the number of live entries.
func (m *Hashmap[V]) Count() uint32 {
	return m.count
}

// Max returns the capacity.
func (m *Hashmap[V]) Max() uint32 {
	return uint32(len(m.keys))
}

// All iterates the live entries in slot order.
func (m *Hashmap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i, k := range m.keys {
			if k == "" {
				continue
			}
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

// Keys returns the live keys in slot order.
func (m *Hashmap[V]) Keys() []string {
	keys := make([]string, 0, m.count)
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}

// Slot returns the content of slot i. live is false for free slots and for
// indices beyond the capacity.
func (m *Hashmap[V]) Slot(i uint32) (key string, v V, live bool) {
	if int(i) >= len(m.keys) || m.keys[i] == "" {
		return "", v, false
	}

	return m.keys[i], m.values[i], true
}

// SetSlot stores key and v at slot i, replacing whatever the slot held.
// It restores a map slot by slot and keeps entries at their original
// positions.
//
// Returns:
//   - error: ErrEmptyKey, ErrIndexOutOfRange, or ErrDuplicate when key is
//     live in another slot
func (m *Hashmap[V]) SetSlot(i uint32, key string, v V) error {
	if key == "" {
		return errs.ErrEmptyKey
	}
	if int(i) >= len(m.keys) {
		return fmt.Errorf("%w: slot %d, max %d", errs.ErrIndexOutOfRange, i, len(m.keys))
	}
	if j := m.find(key); j >= 0 && j != int(i) {
		return fmt.Errorf("%w: %q already in slot %d", errs.ErrDuplicate, key, j)
	}

	wasFree := m.keys[i] == ""
	if err := m.storeSlot(int(i), key, hash.ID(key), v); err != nil {
		return err
	}
	if wasFree {
		m.count++
	}

	return nil
}

func (m *Hashmap[V]) find(key string) int {
	if key == "" || !m.hashes.Valid() {
		return -1
	}

	h := hash.ID(key)
	for i, k := range m.keys {
		if k != "" && m.hashAt(i) == h && k == key {
			return i
		}
	}

	return -1
}

func (m *Hashmap[V]) hashAt(i int) uint64 {
	slot, err := m.hashes.At(uint32(i))
	if err != nil {
		return 0
	}

	return m.engine.Uint64(slot)
}

// storeSlot writes the hash first and leaves the slot untouched if that fails.
func (m *Hashmap[V]) storeSlot(i int, key string, h uint64, v V) error {
	var buf [hashStride]byte
	m.engine.PutUint64(buf[:], h)
	if err := m.hashes.Put(uint32(i), buf[:]); err != nil {
		return err
	}

	m.keys[i] = key
	m.values[i] = v

	return nil
}
