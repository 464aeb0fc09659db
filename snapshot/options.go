package snapshot

import (
	"fmt"

	"github.com/arloliu/stdx/array"
	"github.com/arloliu/stdx/compress"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/format"
	"github.com/arloliu/stdx/internal/options"
)

const (
	// DefaultMaxRawSize is the largest uncompressed payload a decoder accepts
	// unless WithMaxRawSize raises it.
	DefaultMaxRawSize = 64 << 20
	// DefaultMaxCapacity is the largest hashmap capacity a decoder accepts
	// unless WithMaxCapacity raises it.
	DefaultMaxCapacity = 1 << 20
)

// Config holds the encoder and decoder settings.
type Config struct {
	compression format.CompressionType
	arrayOpts   []array.Option
	maxRawSize  uint32
	maxCapacity uint32
}

// Option configures an encoder or a decoder.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		compression: format.CompressionNone,
		maxRawSize:  DefaultMaxRawSize,
		maxCapacity: DefaultMaxCapacity,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression selects the payload codec. The default stores payloads
// uncompressed. Decoders ignore it.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		c.compression = compression

		return nil
	})
}

// WithArrayOptions sets the options restored arrays and hash tables are
// created with. Encoders ignore it.
func WithArrayOptions(opts ...array.Option) Option {
	return options.NoError(func(c *Config) {
		c.arrayOpts = append(c.arrayOpts, opts...)
	})
}

// WithMaxRawSize caps the uncompressed payload size a decoder accepts.
// Larger snapshots fail with errs.ErrInvalidSnapshot before anything is
// decompressed.
func WithMaxRawSize(n uint32) Option {
	return options.New(func(c *Config) error {
		if n == 0 {
			return fmt.Errorf("%w: max raw size must be positive", errs.ErrInvalidOption)
		}
		c.maxRawSize = n

		return nil
	})
}

// WithMaxCapacity caps the hashmap capacity a decoder accepts. Larger
// snapshots fail with errs.ErrInvalidSnapshot before the map is allocated.
func WithMaxCapacity(n uint32) Option {
	return options.New(func(c *Config) error {
		if n == 0 {
			return fmt.Errorf("%w: max capacity must be positive", errs.ErrInvalidOption)
		}
		c.maxCapacity = n

		return nil
	})
}
