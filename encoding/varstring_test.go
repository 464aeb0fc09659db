package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stdx/errs"
)

func TestVarStringEncoder_Write(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Reset()

	require.NoError(t, encoder.Write(""))
	require.NoError(t, encoder.Write("hello"))
	require.Equal(t, 2, encoder.Len())
	require.Equal(t, 1+6, encoder.Size())

	data := encoder.Bytes()
	require.Equal(t, byte(0), data[0])
	require.Equal(t, byte(5), data[1])
	require.Equal(t, "hello", string(data[2:]))
}

func TestVarStringEncoder_MaxLength(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Reset()

	maxKey := strings.Repeat("k", MaxKeyLength)
	require.NoError(t, encoder.Write(maxKey))
	require.Equal(t, 256, encoder.Size())

	err := encoder.Write(maxKey + "k")
	require.ErrorIs(t, err, errs.ErrKeyTooLong)
	require.Equal(t, 1, encoder.Len())
}

func TestVarStringEncoder_WriteSlice(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Reset()

	require.NoError(t, encoder.WriteSlice([]string{"a", "bb", "ccc"}))
	require.Equal(t, 3, encoder.Len())
	require.Equal(t, []byte{1, 'a', 2, 'b', 'b', 3, 'c', 'c', 'c'}, encoder.Bytes())

	err := encoder.WriteSlice([]string{"ok", strings.Repeat("x", 300)})
	require.ErrorIs(t, err, errs.ErrKeyTooLong)
	require.Equal(t, 3, encoder.Len(), "a rejected slice writes nothing")
}

func TestRoundTrip(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Reset()

	encoder.WriteUvarint(0)
	encoder.WriteUvarint(300)
	require.NoError(t, encoder.Write("ключ"))
	encoder.WriteBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	encoder.WriteBytes(nil)

	d := NewVarStringDecoder(encoder.Bytes())

	v, err := d.ReadUvarint()
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)
	v, err = d.ReadUvarint()
	require.NoError(t, err)
	require.Equal(t, uint64(300), v)

	key, err := d.Read()
	require.NoError(t, err)
	require.Equal(t, "ключ", key)

	b, err := d.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, b)
	b, err = d.ReadBytes()
	require.NoError(t, err)
	require.Empty(t, b)

	require.Zero(t, d.Remaining())
}

func TestVarStringDecoder_Truncated(t *testing.T) {
	cases := map[string]struct {
		data []byte
		read func(d *VarStringDecoder) error
	}{
		"empty key": {nil, func(d *VarStringDecoder) error { _, err := d.Read(); return err }},
		"short key": {[]byte{5, 'a', 'b'}, func(d *VarStringDecoder) error { _, err := d.Read(); return err }},
		"uvarint":   {[]byte{0x80}, func(d *VarStringDecoder) error { _, err := d.ReadUvarint(); return err }},
		"bytes":     {[]byte{4, 1, 2}, func(d *VarStringDecoder) error { _, err := d.ReadBytes(); return err }},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.read(NewVarStringDecoder(tc.data))
			require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
		})
	}
}
