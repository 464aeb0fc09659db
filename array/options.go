package array

import (
	"github.com/arloliu/stdx/alloc"
	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/internal/options"
)

// Config holds the allocation and byte order settings of an array.
type Config struct {
	allocator alloc.Allocator
	engine    endian.EndianEngine
}

// Option configures an array at creation time.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		allocator: alloc.Heap(),
		engine:    endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Allocator returns the allocator the array draws its buffer from.
func (c *Config) Allocator() alloc.Allocator {
	return c.allocator
}

// Engine returns the byte order of the array header.
func (c *Config) Engine() endian.EndianEngine {
	return c.engine
}

// WithAllocator sets the allocator. A nil allocator keeps the heap allocator.
func WithAllocator(a alloc.Allocator) Option {
	return options.NoError(func(c *Config) {
		if a != nil {
			c.allocator = a
		}
	})
}

// WithLittleEndian writes the header little-endian (the default).
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes the header big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian writes the header in the host byte order.
func WithNativeEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetNativeEngine()
	})
}

// WithEngine writes the header with engine. A nil engine keeps the current one.
func WithEngine(engine endian.EndianEngine) Option {
	return options.NoError(func(c *Config) {
		if engine != nil {
			c.engine = engine
		}
	})
}
