// Package snapshot serializes arrays, chains and byte-valued hashmaps into
// self-describing, checksummed byte slices and restores them.
//
// # Layout
//
// Every snapshot is a section.SnapshotHeader followed by the payload:
//
//	+--------+------+------+------+----------+---------+---------+----------+
//	| magic  | flag | kind | comp | reserved | rawSize | entries | checksum |
//	| 2B LE  | 1B   | 1B   | 1B   | 3B       | 4B      | 4B      | 8B       |
//	+--------+------+------+------+----------+---------+---------+----------+
//	| payload (compressed with comp, rawSize bytes once decompressed)       |
//	+-----------------------------------------------------------------------+
//
// The checksum is the xxHash64 of the uncompressed payload. Flag bit 0 records
// the byte order of the payload, which is the byte order of the encoded array
// headers. The payload depends on the kind:
//
//   - Array: the array buffer as returned by array.Array.Bytes.
//   - Chain: for every link from head to tail, a uint32 length followed by
//     the array buffer of the link.
//   - Hashmap: the capacity as uvarint, then for every live slot the slot
//     index, the key and the value in the encoding of package encoding.
//
// A payload that does not shrink under the requested codec is stored
// uncompressed.
//
// # Usage
//
//	data, err := snapshot.EncodeArray(arr, snapshot.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//
//	restored, err := snapshot.DecodeArray(data, snapshot.WithArrayOptions(array.WithAllocator(a)))
package snapshot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stdx'
func tracer() tracing.Trace {
	return tracing.Select("stdx")
}
