package quadtree

import (
	"fmt"
	"math"

	"github.com/arloliu/stdx/array"
	"github.com/arloliu/stdx/endian"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/internal/options"
)

// DefaultMaxDepth is the depth below which full leaves are subdivided.
const DefaultMaxDepth = 8

// locatorSize is the record prefix read by the default locator.
const locatorSize = 16

// Locator extracts the position of a record. It receives exactly stride bytes.
type Locator func(record []byte) Point

// Config holds the settings of nodes and trees.
type Config struct {
	bounds    Bounds
	maxDepth  int
	locator   Locator
	arrayOpts []array.Option
}

// Option configures a node or tree.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		bounds:   Bounds{MaxX: 1, MaxY: 1},
		maxDepth: DefaultMaxDepth,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithBounds sets the bounds of a node created by New. Trees take their
// bounds as an argument instead.
func WithBounds(b Bounds) Option {
	return options.New(func(c *Config) error {
		if !b.Valid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidBounds, b)
		}
		c.bounds = b

		return nil
	})
}

// WithMaxDepth sets the depth at which a tree stops subdividing.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxDepth, depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// WithLocator sets the function that extracts a record's position.
// A nil locator keeps the default, which reads two float64 (x, y) from the
// first 16 bytes of the record in the byte order of the node arrays.
func WithLocator(fn Locator) Option {
	return options.NoError(func(c *Config) {
		if fn != nil {
			c.locator = fn
		}
	})
}

// WithArrayOptions sets the options every node buffer is created with.
func WithArrayOptions(opts ...array.Option) Option {
	return options.NoError(func(c *Config) {
		c.arrayOpts = append(c.arrayOpts, opts...)
	})
}

// XYLocator returns a locator reading x and y as float64 from the first
// 16 bytes of a record.
func XYLocator(engine endian.EndianEngine) Locator {
	return func(record []byte) Point {
		return Point{
			X: math.Float64frombits(engine.Uint64(record[0:8])),
			Y: math.Float64frombits(engine.Uint64(record[8:16])),
		}
	}
}

// Record builds a zeroed record of stride bytes, at least 16, holding p in
// the layout read by XYLocator.
func Record(engine endian.EndianEngine, p Point, stride int) []byte {
	rec := make([]byte, max(stride, locatorSize))
	engine.PutUint64(rec[0:8], math.Float64bits(p.X))
	engine.PutUint64(rec[8:16], math.Float64bits(p.Y))

	return rec
}
