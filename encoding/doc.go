// Package encoding implements the variable-length record encoding used in
// hashmap snapshots.
//
// Hashmap entries have string keys and byte-slice values of arbitrary length,
// so unlike arrays they cannot be stored as fixed-stride slots. Each entry is
// written as a sequence of primitives:
//
//   - uvarint: unsigned LEB128 integer (slot index, value length)
//   - key: 1 byte length (0-255) followed by the key bytes
//   - bytes: uvarint length followed by the raw bytes
//
// VarStringEncoder appends primitives to a pooled buffer, VarStringDecoder
// reads them back in the same order and reports truncated input as
// errs.ErrInvalidSnapshot.
package encoding
