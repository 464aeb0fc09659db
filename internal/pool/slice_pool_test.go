package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetByteSlice(t *testing.T) {
	t.Run("returns slice of requested size", func(t *testing.T) {
		s, cleanup := GetByteSlice(24)
		defer cleanup()

		require.Len(t, s, 24)
	})

	t.Run("reused slices are zeroed", func(t *testing.T) {
		s, cleanup := GetByteSlice(8)
		for i := range s {
			s[i] = 0xFF
		}
		cleanup()

		s2, cleanup2 := GetByteSlice(8)
		defer cleanup2()
		require.Equal(t, make([]byte, 8), s2)
	})

	t.Run("zero size", func(t *testing.T) {
		s, cleanup := GetByteSlice(0)
		defer cleanup()

		require.Empty(t, s)
	})
}
