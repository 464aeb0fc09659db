package stdx

import (
	"fmt"

	"github.com/arloliu/stdx/alloc"
	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/internal/options"
)

// Config collects the settings of a Structs context.
type Config struct {
	allocator alloc.Allocator
	pooling   bool
	tracking  bool
	limit     int
	engine    endian.EndianEngine
}

// Option configures a Structs context.
type Option = options.Option[*Config]

// WithAllocator sets the base allocator. It takes precedence over WithPooling.
func WithAllocator(a alloc.Allocator) Option {
	return options.NoError(func(c *Config) {
		c.allocator = a
	})
}

// WithPooling recycles released buffers through size-class pools instead of
// leaving them to the garbage collector.
func WithPooling() Option {
	return options.NoError(func(c *Config) {
		c.pooling = true
	})
}

// WithTracking accounts for every allocation so that Stats and Close can
// report leaks and double frees.
func WithTracking() Option {
	return options.NoError(func(c *Config) {
		c.tracking = true
	})
}

// WithMemoryLimit caps the bytes held by live structures. Creations beyond
// the cap fail with errs.ErrAllocationFailed.
func WithMemoryLimit(bytes int) Option {
	return options.New(func(c *Config) error {
		if bytes <= 0 {
			return fmt.Errorf("%w: memory limit must be positive, got %d", errs.ErrInvalidOption, bytes)
		}
		c.limit = bytes

		return nil
	})
}

// WithLittleEndian writes array headers little-endian (the default).
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes array headers big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian writes array headers in the host byte order.
func WithNativeEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetNativeEngine()
	})
}
