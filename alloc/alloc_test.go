package alloc

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/stdx/errs"
)

func TestHeap(t *testing.T) {
	a := Heap()

	buf, err := a.Alloc(64)
	require.NoError(t, err)
	require.Len(t, buf, 64)
	require.Equal(t, make([]byte, 64), buf)
	a.Free(buf)

	_, err = a.Alloc(-1)
	require.ErrorIs(t, err, errs.ErrAllocationFailed)
}

func TestClassIndex(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, 0},
		{1, 0},
		{32, 0},
		{33, 1},
		{64, 1},
		{65, 2},
		{1 << maxClassShift, maxClassShift - minClassShift},
		{1<<maxClassShift + 1, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classIndex(tt.size), "size %d", tt.size)
	}
}

func TestPooled(t *testing.T) {
	p := NewPooled()

	t.Run("returns zeroed buffers of requested length", func(t *testing.T) {
		buf, err := p.Alloc(40)
		require.NoError(t, err)
		require.Len(t, buf, 40)
		require.Equal(t, 64, cap(buf))

		for i := range buf {
			buf[i] = 0xAB
		}
		p.Free(buf)

		again, err := p.Alloc(50)
		require.NoError(t, err)
		require.Equal(t, make([]byte, 50), again, "recycled buffers must be zeroed")
	})

	t.Run("oversized requests bypass the pool", func(t *testing.T) {
		size := 1<<maxClassShift + 10
		buf, err := p.Alloc(size)
		require.NoError(t, err)
		require.Len(t, buf, size)
		assert.NotPanics(t, func() { p.Free(buf) })
	})

	t.Run("foreign buffers are ignored", func(t *testing.T) {
		assert.NotPanics(t, func() { p.Free(make([]byte, 10)) })
		assert.NotPanics(t, func() { p.Free(nil) })
	})
}

func TestTracker(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)

	tr := NewTracker(nil)

	a, err := tr.Alloc(32)
	require.NoError(t, err)
	b, err := tr.Alloc(16)
	require.NoError(t, err)

	stats := tr.Stats()
	require.Equal(t, 2, stats.Allocs)
	require.Equal(t, 2, stats.Live)
	require.Equal(t, 48, stats.LiveBytes)

	tr.Free(a)
	tr.Free(a)
	tr.Free(make([]byte, 8))

	stats = tr.Stats()
	require.Equal(t, 1, stats.Frees)
	require.Equal(t, 1, stats.Live)
	require.Equal(t, 16, stats.LiveBytes)
	require.Equal(t, 48, stats.PeakBytes)
	require.Equal(t, 1, stats.DoubleFrees)
	require.Equal(t, 1, stats.ForeignFrees)

	tr.Free(b)
	require.Equal(t, 0, tr.Stats().Live)

	tr.Reset()
	require.Equal(t, Stats{}, tr.Stats())
}

func TestTracker_WithPooled(t *testing.T) {
	tr := NewTracker(NewPooled())

	buf, err := tr.Alloc(100)
	require.NoError(t, err)
	tr.Free(buf)

	// The pool may hand back the same memory; it must be tracked as live again.
	buf2, err := tr.Alloc(100)
	require.NoError(t, err)
	tr.Free(buf2)

	stats := tr.Stats()
	require.Equal(t, 2, stats.Allocs)
	require.Equal(t, 2, stats.Frees)
	require.Equal(t, 0, stats.DoubleFrees)
}

func TestTracker_Concurrent(t *testing.T) {
	tr := NewTracker(NewPooled())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				buf, err := tr.Alloc(128)
				if err != nil {
					t.Error(err)
					return
				}
				tr.Free(buf)
			}
		}()
	}
	wg.Wait()

	stats := tr.Stats()
	require.Equal(t, 1600, stats.Allocs)
	require.Equal(t, 0, stats.Live)
	require.Equal(t, 0, stats.DoubleFrees)
}

func TestLimited(t *testing.T) {
	l := NewLimited(nil, 100)

	a, err := l.Alloc(60)
	require.NoError(t, err)
	require.Equal(t, 60, l.Used())

	_, err = l.Alloc(41)
	require.ErrorIs(t, err, errs.ErrAllocationFailed)
	require.Equal(t, 60, l.Used(), "failed allocations must not consume budget")

	b, err := l.Alloc(40)
	require.NoError(t, err)
	require.Equal(t, 100, l.Used())

	l.Free(a)
	l.Free(b)
	require.Equal(t, 0, l.Used())
	require.Equal(t, 100, l.Limit())
}

func BenchmarkPooled_AllocFree(b *testing.B) {
	p := NewPooled()
	for b.Loop() {
		buf, _ := p.Alloc(256)
		p.Free(buf)
	}
}

func BenchmarkHeap_Alloc(b *testing.B) {
	h := Heap()
	for b.Loop() {
		buf, _ := h.Alloc(256)
		h.Free(buf)
	}
}
