package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/internal/pool"
)

// MaxKeyLength is the maximum length of a key, bounded by its uint8 length prefix.
const MaxKeyLength = 255

// VarStringEncoder encodes keys, uvarints and length-prefixed byte slices.
//
// Each key is encoded as:
//   - 1 byte: length (0-255)
//   - N bytes: key data
type VarStringEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewVarStringEncoder creates an encoder backed by a pooled snapshot buffer.
// Call Reset to return the buffer when done.
func NewVarStringEncoder() *VarStringEncoder {
	return &VarStringEncoder{
		buf: pool.GetSnapshotBuffer(),
	}
}

// Write encodes a single key with a uint8 length prefix.
//
// Returns:
//   - error: ErrKeyTooLong if key exceeds MaxKeyLength
func (e *VarStringEncoder) Write(key string) error {
	if len(key) > MaxKeyLength {
		return fmt.Errorf("%w: %d bytes, maximum %d", errs.ErrKeyTooLong, len(key), MaxKeyLength)
	}

	e.count++
	e.buf.Grow(1 + len(key))
	_ = e.buf.WriteByte(uint8(len(key))) //nolint:gosec
	e.buf.MustWrite([]byte(key))

	return nil
}

// WriteSlice encodes keys in order. Nothing is written if any key is too long.
func (e *VarStringEncoder) WriteSlice(keys []string) error {
	totalSize := 0
	for _, key := range keys {
		if len(key) > MaxKeyLength {
			return fmt.Errorf("%w: %d bytes, maximum %d", errs.ErrKeyTooLong, len(key), MaxKeyLength)
		}
		totalSize += 1 + len(key)
	}

	e.buf.Grow(totalSize)
	for _, key := range keys {
		_ = e.buf.WriteByte(uint8(len(key))) //nolint:gosec
		e.buf.MustWrite([]byte(key))
		e.count++
	}

	return nil
}

// WriteUvarint encodes v as an unsigned varint.
func (e *VarStringEncoder) WriteUvarint(v uint64) {
	e.buf.Grow(binary.MaxVarintLen64)
	e.buf.B = binary.AppendUvarint(e.buf.B, v)
}

// WriteBytes encodes data with a uvarint length prefix.
func (e *VarStringEncoder) WriteBytes(data []byte) {
	e.WriteUvarint(uint64(len(data)))
	e.buf.Grow(len(data))
	e.buf.MustWrite(data)
}

// Bytes returns the encoded data. The slice aliases the encoder buffer and is
// invalid after Reset.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of keys written.
func (e *VarStringEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
func (e *VarStringEncoder) Size() int {
	return e.buf.Len()
}

// Reset returns the buffer to the pool. The encoder must not be used afterwards.
func (e *VarStringEncoder) Reset() {
	if e.buf != nil {
		pool.PutSnapshotBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// VarStringDecoder reads the primitives written by VarStringEncoder.
type VarStringDecoder struct {
	data []byte
	off  int
}

// NewVarStringDecoder creates a decoder over data. Decoded byte slices alias data.
func NewVarStringDecoder(data []byte) *VarStringDecoder {
	return &VarStringDecoder{data: data}
}

// Read decodes a key.
func (d *VarStringDecoder) Read() (string, error) {
	if d.off >= len(d.data) {
		return "", d.truncated("key length")
	}

	n := int(d.data[d.off])
	if d.off+1+n > len(d.data) {
		return "", d.truncated("key")
	}
	key := string(d.data[d.off+1 : d.off+1+n])
	d.off += 1 + n

	return key, nil
}

// ReadUvarint decodes an unsigned varint.
func (d *VarStringDecoder) ReadUvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.off:])
	if n <= 0 {
		return 0, d.truncated("uvarint")
	}
	d.off += n

	return v, nil
}

// ReadBytes decodes a length-prefixed byte slice.
func (d *VarStringDecoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if n > uint64(len(d.data)-d.off) {
		return nil, d.truncated("bytes")
	}

	out := d.data[d.off : d.off+int(n) : d.off+int(n)]
	d.off += int(n)

	return out, nil
}

// Remaining returns the number of bytes not yet decoded.
func (d *VarStringDecoder) Remaining() int {
	return len(d.data) - d.off
}

func (d *VarStringDecoder) truncated(what string) error {
	return fmt.Errorf("%w: truncated %s at offset %d", errs.ErrInvalidSnapshot, what, d.off)
}
