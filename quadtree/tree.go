package quadtree

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/stdx/array"
	"github.com/arloliu/stdx/errs"
	"github.com/arloliu/stdx/internal/pool"
)

// Tree is a point quad tree of fixed-size records.
type Tree struct {
	root   *Node
	cfg    *Config
	locate Locator
	len    int
	depth  int
}

// NewTree creates a tree covering bounds whose leaves hold max records of
// stride bytes before they are subdivided.
//
// Without WithLocator, records must start with two float64 (x, y) and stride
// must be at least 16.
//
// Returns:
//   - *Tree: New tree with a single leaf
//   - error: ErrInvalidBounds, ErrZeroCapacityLeaf, ErrRecordTooShort,
//     ErrInvalidMaxDepth, or the array creation error
func NewTree(bounds Bounds, stride, max uint32, opts ...Option) (*Tree, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidBounds, bounds)
	}
	if max == 0 {
		return nil, errs.ErrZeroCapacityLeaf
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	cfg.bounds = bounds
	if cfg.locator == nil && stride < locatorSize {
		return nil, fmt.Errorf("%w: default locator needs %d bytes, stride is %d",
			errs.ErrRecordTooShort, locatorSize, stride)
	}

	root, err := newNode(cfg, bounds, 0, stride, max)
	if err != nil {
		return nil, err
	}

	locate := cfg.locator
	if locate == nil {
		locate = XYLocator(root.objects.Config().Engine())
	}

	return &Tree{root: root, cfg: cfg, locate: locate}, nil
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of records in the tree.
func (t *Tree) Len() int {
	return t.len
}

// Depth returns the depth of the deepest node.
func (t *Tree) Depth() int {
	return t.depth
}

// Insert copies the first stride bytes of record into the leaf covering its
// position.
//
// A full leaf above the maximum depth is subdivided and its records are
// moved into the children before retrying. A full leaf at the maximum depth
// has its buffer doubled.
func (t *Tree) Insert(record []byte) error {
	if !t.root.objects.Valid() {
		return errs.ErrInvalidHandle
	}

	stride := t.root.stride
	if len(record) < int(stride) {
		return fmt.Errorf("%w: got %d bytes, stride %d", errs.ErrStrideMismatch, len(record), stride)
	}
	record = record[:stride]

	p := t.locate(record)
	if !t.root.bounds.Contains(p) {
		return fmt.Errorf("%w: (%g, %g) not in %s", errs.ErrOutOfBounds, p.X, p.Y, t.root.bounds)
	}

	for {
		leaf := t.leafFor(p)
		err := leaf.objects.Push(record)
		if err == nil {
			t.len++
			return nil
		}
		if !errors.Is(err, errs.ErrCapacityExceeded) {
			return err
		}

		if leaf.depth < t.cfg.maxDepth {
			err = t.split(leaf)
		} else {
			err = t.grow(leaf)
		}
		if err != nil {
			return err
		}
	}
}

// Query iterates the records whose position lies in area. The records alias
// node storage and are invalidated by the next Insert.
func (t *Tree) Query(area Bounds) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		stack := []*Node{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !n.bounds.Intersects(area) {
				continue
			}

			for _, rec := range n.objects.All() {
				if area.Contains(t.locate(rec)) && !yield(rec) {
					return
				}
			}
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
		}
	}
}

// Destroy releases every node of the tree and returns the number of buffers
// released.
func (t *Tree) Destroy() int {
	released := t.root.Collapse()
	t.len = 0
	t.depth = 0

	return released
}

func (t *Tree) leafFor(p Point) *Node {
	n := t.root
	for !n.IsLeaf() {
		n = n.children[n.bounds.QuadrantOf(p)]
	}

	return n
}

// split subdivides leaf and moves its records into the children.
func (t *Tree) split(leaf *Node) error {
	if err := leaf.Subdivide(); err != nil {
		return err
	}

	rec, release := pool.GetByteSlice(int(leaf.stride))
	defer release()

	moved := 0
	for leaf.objects.Count() > 0 {
		if err := leaf.objects.Pop(rec); err != nil {
			return err
		}
		child := leaf.children[leaf.bounds.QuadrantOf(t.locate(rec))]
		if err := child.objects.Push(rec); err != nil {
			return err
		}
		moved++
	}

	t.depth = max(t.depth, leaf.depth+1)
	tracer().Debugf("quadtree: split node %s at depth %d, moved %d records", leaf.bounds, leaf.depth, moved)

	return nil
}

// grow doubles the object buffer of leaf.
func (t *Tree) grow(leaf *Node) error {
	capacity := leaf.objects.Max()
	if capacity > math.MaxUint32/2 {
		return fmt.Errorf("%w: leaf at max depth holds %d records", errs.ErrCapacityExceeded, capacity)
	}

	objects, err := array.Resize(leaf.objects, capacity*2)
	if err != nil {
		return err
	}
	leaf.objects = objects

	tracer().Debugf("quadtree: grew leaf %s at max depth %d to %d records", leaf.bounds, leaf.depth, capacity*2)

	return nil
}
