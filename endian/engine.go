// Package endian provides the byte order engine used to lay out stdx headers.
//
// Every array carries a fixed-size header in front of its element bytes and
// every snapshot starts with a fixed-size snapshot header. Both are written and
// read through an EndianEngine, which combines binary.ByteOrder with
// binary.AppendByteOrder so the same value can be used to patch a header in
// place (PutUint32) or to build one up (AppendUint32).
//
// # Basic Usage
//
// Little-endian is the default byte order of every stdx structure:
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint32(buf[0:4], count)
//
// Big-endian can be selected per array for interoperability:
//
//	arr, err := array.Create(8, 16, array.WithBigEndian())
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the low byte (0x00) comes first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	if CheckEndianness() == binary.BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsBigEndian reports whether engine writes big-endian data.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
