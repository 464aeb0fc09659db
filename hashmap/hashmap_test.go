package hashmap

import (
	"fmt"
	"maps"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/stdx/alloc"
	"github.com/arloliu/stdx/array"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/internal/hash"
)

func mustNew[V any](t *testing.T, max uint32, opts ...array.Option) *Hashmap[V] {
	t.Helper()

	m, err := New[V](max, opts...)
	require.NoError(t, err)
	t.Cleanup(m.Destroy)

	return m
}

func TestNew(t *testing.T) {
	t.Run("Empty map", func(t *testing.T) {
		m := mustNew[int](t, 4)

		require.Equal(t, uint32(0), m.Count())
		require.Equal(t, uint32(4), m.Max())
		require.Empty(t, m.Keys())
	})

	t.Run("Allocation failure propagates", func(t *testing.T) {
		lim := alloc.NewLimited(nil, 8)

		m, err := New[int](4, array.WithAllocator(lim))
		require.ErrorIs(t, err, errs.ErrAllocationFailed)
		require.Nil(t, m)
	})
}

func TestSetGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stdx")
	defer teardown()

	t.Run("Set then get", func(t *testing.T) {
		m := mustNew[int](t, 4)

		require.True(t, m.Set("a", 1))
		v, ok := m.Get("a")
		require.True(t, ok)
		require.Equal(t, 1, v)
		require.Equal(t, uint32(1), m.Count())
	})

	t.Run("Overwrite keeps count", func(t *testing.T) {
		m := mustNew[int](t, 4)
		require.True(t, m.Set("a", 1))

		require.True(t, m.Set("a", 2))
		v, ok := m.Get("a")
		require.True(t, ok)
		require.Equal(t, 2, v)
		require.Equal(t, uint32(1), m.Count())
	})

	t.Run("Set beyond max", func(t *testing.T) {
		m := mustNew[int](t, 2)
		require.True(t, m.Set("a", 1))
		require.True(t, m.Set("b", 2))

		require.False(t, m.Set("c", 3))
		require.Equal(t, uint32(2), m.Count())
		_, ok := m.Get("c")
		require.False(t, ok)

		require.True(t, m.Set("b", 20), "overwrite still works on a full map")
	})

	t.Run("Empty key", func(t *testing.T) {
		m := mustNew[int](t, 2)

		require.False(t, m.Set("", 1))
		_, ok := m.Get("")
		require.False(t, ok)
		require.Equal(t, uint32(0), m.Count())
	})

	t.Run("Missing key", func(t *testing.T) {
		m := mustNew[string](t, 2)
		require.True(t, m.Set("a", "x"))

		v, ok := m.Get("b")
		require.False(t, ok)
		require.Empty(t, v)
	})

	t.Run("Get is repeatable", func(t *testing.T) {
		m := mustNew[int](t, 4)
		require.True(t, m.Set("k", 7))

		v1, ok1 := m.Get("k")
		v2, ok2 := m.Get("k")
		require.Equal(t, v1, v2)
		require.Equal(t, ok1, ok2)
	})

	t.Run("Hash slot is written", func(t *testing.T) {
		m := mustNew[int](t, 4)
		require.True(t, m.Set("key", 1))

		require.Equal(t, hash.ID("key"), m.hashAt(0))
	})
}

func TestRem(t *testing.T) {
	t.Run("Remove then get", func(t *testing.T) {
		m := mustNew[int](t, 4)
		require.True(t, m.Set("a", 1))

		require.True(t, m.Rem("a"))
		_, ok := m.Get("a")
		require.False(t, ok)
		require.Equal(t, uint32(0), m.Count())
		require.False(t, m.Rem("a"))
	})

	t.Run("No compaction", func(t *testing.T) {
		m := mustNew[int](t, 4)
		for i, k := range []string{"a", "b", "c"} {
			require.True(t, m.Set(k, i))
		}

		require.True(t, m.Rem("b"))
		key, _, live := m.Slot(1)
		require.False(t, live)
		require.Empty(t, key)
		require.Equal(t, uint64(0), m.hashAt(1))

		key, v, live := m.Slot(2)
		require.True(t, live)
		require.Equal(t, "c", key)
		require.Equal(t, 2, v)
	})

	t.Run("Freed slot is reused first", func(t *testing.T) {
		m := mustNew[int](t, 3)
		for i, k := range []string{"a", "b", "c"} {
			require.True(t, m.Set(k, i))
		}
		require.True(t, m.Rem("a"))

		require.True(t, m.Set("d", 3))
		key, _, _ := m.Slot(0)
		require.Equal(t, "d", key)
		require.Equal(t, []string{"d", "b", "c"}, m.Keys())
	})

	t.Run("Overwrite after hole finds the existing key", func(t *testing.T) {
		m := mustNew[int](t, 3)
		require.True(t, m.Set("a", 1))
		require.True(t, m.Set("b", 2))
		require.True(t, m.Rem("a"))

		require.True(t, m.Set("b", 5))
		require.Equal(t, uint32(1), m.Count())
		require.Equal(t, []string{"b"}, m.Keys())
	})
}

func TestDestroy(t *testing.T) {
	tr := alloc.NewTracker(nil)
	m, err := New[int](4, array.WithAllocator(tr))
	require.NoError(t, err)
	require.True(t, m.Set("a", 1))

	m.Destroy()
	m.Destroy()

	require.Zero(t, tr.Stats().Live)
	require.Zero(t, tr.Stats().DoubleFrees)
	require.Equal(t, uint32(0), m.Max())
	require.Equal(t, uint32(0), m.Count())
	require.False(t, m.Set("a", 1))
	_, ok := m.Get("a")
	require.False(t, ok)
	require.False(t, m.Rem("a"))
}

func TestAll(t *testing.T) {
	m := mustNew[int](t, 8)
	want := map[string]int{}
	for i := range 5 {
		k := fmt.Sprintf("key-%d", i)
		require.True(t, m.Set(k, i))
		want[k] = i
	}
	require.True(t, m.Rem("key-2"))
	delete(want, "key-2")

	require.Equal(t, want, maps.Collect(m.All()))

	n := 0
	for range m.All() {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestSetSlot(t *testing.T) {
	t.Run("Restores positions", func(t *testing.T) {
		m := mustNew[int](t, 4)

		require.NoError(t, m.SetSlot(2, "x", 9))
		require.Equal(t, uint32(1), m.Count())
		key, v, live := m.Slot(2)
		require.True(t, live)
		require.Equal(t, "x", key)
		require.Equal(t, 9, v)

		got, ok := m.Get("x")
		require.True(t, ok)
		require.Equal(t, 9, got)
	})

	t.Run("Replacing a live slot keeps count", func(t *testing.T) {
		m := mustNew[int](t, 4)
		require.NoError(t, m.SetSlot(0, "x", 1))
		require.NoError(t, m.SetSlot(0, "y", 2))

		require.Equal(t, uint32(1), m.Count())
		_, ok := m.Get("x")
		require.False(t, ok)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		m := mustNew[int](t, 2)
		require.NoError(t, m.SetSlot(0, "x", 1))

		require.ErrorIs(t, m.SetSlot(1, "", 1), errs.ErrEmptyKey)
		require.ErrorIs(t, m.SetSlot(2, "y", 1), errs.ErrIndexOutOfRange)
		require.ErrorIs(t, m.SetSlot(1, "x", 1), errs.ErrDuplicate)
	})

	t.Run("Hash table failure leaves slot untouched", func(t *testing.T) {
		m := mustNew[int](t, 4)
		require.NoError(t, m.SetSlot(0, "x", 1))
		m.hashes.Destroy()

		require.ErrorIs(t, m.SetSlot(1, "y", 2), errs.ErrInvalidHandle)
		require.Equal(t, uint32(1), m.Count())
		_, _, live := m.Slot(1)
		require.False(t, live)
		require.False(t, m.Set("z", 3))
		require.False(t, m.Rem("x"))
	})

	t.Run("Slot beyond capacity", func(t *testing.T) {
		m := mustNew[int](t, 2)

		_, _, live := m.Slot(5)
		require.False(t, live)
	})
}

func BenchmarkSet(b *testing.B) {
	m, err := New[int](64)
	require.NoError(b, err)
	defer m.Destroy()

	keys := make([]string, 64)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[i%len(keys)], i)
	}
}

func BenchmarkGet(b *testing.B) {
	m, err := New[int](64)
	require.NoError(b, err)
	defer m.Destroy()

	for i := range 64 {
		m.Set(fmt.Sprintf("key-%d", i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get("key-63")
	}
}
