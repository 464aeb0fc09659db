package section

import (
	"testing"

	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/format"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotHeader(t *testing.T) {
	h := NewSnapshotHeader(format.KindChain, format.CompressionLZ4, endian.GetLittleEndianEngine())

	require.Equal(t, uint16(MagicSnapshotV1), h.Magic)
	require.Equal(t, format.KindChain, h.Kind)
	require.Equal(t, format.CompressionLZ4, h.Compression)
	require.False(t, h.IsBigEndian())

	h = NewSnapshotHeader(format.KindArray, format.CompressionNone, endian.GetBigEndianEngine())
	require.True(t, h.IsBigEndian())
	require.Equal(t, endian.GetBigEndianEngine(), h.GetEndianEngine())
}

func TestSnapshotHeader_Parse(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
			original := NewSnapshotHeader(format.KindHashmap, format.CompressionZstd, engine)
			original.RawSize = 1234
			original.Entries = 7
			original.Checksum = 0xDEADBEEFCAFEBABE

			data := original.Bytes()
			require.Len(t, data, SnapshotHeaderSize)

			parsed := &SnapshotHeader{}
			require.NoError(t, parsed.Parse(data))
			require.Equal(t, original, *parsed)
		}
	})

	t.Run("Invalid size", func(t *testing.T) {
		header := &SnapshotHeader{}
		err := header.Parse([]byte{1, 2, 3})

		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Invalid magic number", func(t *testing.T) {
		data := make([]byte, SnapshotHeaderSize)

		header := &SnapshotHeader{}
		err := header.Parse(data)

		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})
}

func TestParseSnapshotHeader(t *testing.T) {
	original := NewSnapshotHeader(format.KindArray, format.CompressionS2, endian.GetLittleEndianEngine())
	data := append(original.Bytes(), 0xAA, 0xBB)

	parsed, err := ParseSnapshotHeader(data)
	require.NoError(t, err)
	require.Equal(t, original, parsed)

	_, err = ParseSnapshotHeader(data[:10])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}
