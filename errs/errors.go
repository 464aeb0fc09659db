// Package errs defines the sentinel errors shared by all stdx packages.
//
// Errors are compared with errors.Is; call sites wrap them with
// fmt.Errorf("...: %w", err) to add context.
package errs

import "errors"

// Allocation errors.
var (
	// ErrAllocationFailed is returned when an allocator cannot provide memory
	// for a create or resize operation.
	ErrAllocationFailed = errors.New("allocation failed")
	// ErrLeakedAllocations is returned by Close when tracked allocations are still live.
	ErrLeakedAllocations = errors.New("leaked allocations")
	// ErrClosed is returned when a closed Structs context is used.
	ErrClosed = errors.New("structs context is closed")
	// ErrInvalidOption is returned when an option is given an unusable value.
	ErrInvalidOption = errors.New("invalid option")
)

// Array errors.
var (
	ErrInvalidHandle    = errors.New("invalid or destroyed handle")
	ErrInvalidStride    = errors.New("stride must be greater than zero")
	ErrStrideMismatch   = errors.New("value is shorter than the array stride")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrEmpty            = errors.New("array is empty")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrSizeOverflow     = errors.New("stride * max overflows uint32")
)

// Hashmap errors.
var (
	ErrEmptyKey  = errors.New("empty key")
	ErrDuplicate = errors.New("duplicate key")
)

// Quad tree errors.
var (
	ErrNotSubdivided     = errors.New("node has no children")
	ErrAlreadySubdivided = errors.New("node already has children")
	ErrOutOfBounds       = errors.New("point outside of tree bounds")
	ErrInvalidMaxDepth   = errors.New("max depth must not be negative")
	ErrRecordTooShort    = errors.New("record too short for locator")
	ErrInvalidBounds     = errors.New("invalid bounds")
	ErrZeroCapacityLeaf  = errors.New("leaf capacity must be greater than zero")
)

// Header and snapshot errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidHeader      = errors.New("invalid array header")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrKindMismatch       = errors.New("snapshot kind mismatch")
	ErrChecksumMismatch   = errors.New("snapshot checksum mismatch")
	ErrInvalidSnapshot    = errors.New("invalid snapshot payload")
	ErrKeyTooLong         = errors.New("key too long")
	ErrInvalidCompression = errors.New("invalid compression type")
)
