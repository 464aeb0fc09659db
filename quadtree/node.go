package quadtree

import (
	"fmt"

	"github.com/arloliu/stdx/array"
	"github.com/arloliu/stdx/errs"
)

// Node is a quad tree node owning an object buffer.
type Node struct {
	objects  *array.Array
	children []*Node // nil for a leaf, four nodes otherwise
	bounds   Bounds
	depth    int
	stride   uint32
	capacity uint32
	cfg      *Config
}

// New creates a leaf whose object buffer holds max records of stride bytes.
// The leaf covers the unit square unless WithBounds is given.
func New(stride, max uint32, opts ...Option) (*Node, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return newNode(cfg, cfg.bounds, 0, stride, max)
}

func newNode(cfg *Config, b Bounds, depth int, stride, capacity uint32) (*Node, error) {
	objects, err := array.Create(stride, capacity, cfg.arrayOpts...)
	if err != nil {
		return nil, fmt.Errorf("create quad tree node (depth=%d): %w", depth, err)
	}

	return &Node{
		objects:  objects,
		bounds:   b,
		depth:    depth,
		stride:   stride,
		capacity: capacity,
		cfg:      cfg,
	}, nil
}

// Objects returns the object buffer of n. It is invalid after Destroy.
func (n *Node) Objects() *array.Array {
	return n.objects
}

// Bounds returns the area covered by n.
func (n *Node) Bounds() Bounds {
	return n.bounds
}

// Depth returns the distance of n from the node it was subdivided from; a
// node created by New has depth 0.
func (n *Node) Depth() int {
	return n.depth
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// Children returns the four children of n in quadrant order, or nil for a leaf.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns child i of n, in the order NW, NE, SW, SE.
func (n *Node) Child(i int) (*Node, error) {
	if n.IsLeaf() {
		return nil, errs.ErrNotSubdivided
	}
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("%w: child %d", errs.ErrIndexOutOfRange, i)
	}

	return n.children[i], nil
}

// Subdivide turns leaf n into an internal node with four leaf children. Each
// child gets an empty object buffer of the stride and capacity n was created
// with, and one quadrant of n's bounds. The objects of n are not moved.
//
// If a child cannot be allocated, the children created so far are destroyed
// and n stays a leaf.
func (n *Node) Subdivide() error {
	if !n.IsLeaf() {
		return errs.ErrAlreadySubdivided
	}

	children := make([]*Node, 4)
	for i := range children {
		child, err := newNode(n.cfg, n.bounds.Quadrant(i), n.depth+1, n.stride, n.capacity)
		if err != nil {
			for _, c := range children[:i] {
				c.Destroy()
			}

			return err
		}
		children[i] = child
	}
	n.children = children

	return nil
}

// Destroy releases the object buffer of n. Children are left alone; use
// Collapse to tear down a subtree.
func (n *Node) Destroy() {
	n.objects.Destroy()
}

// Collapse destroys the subtree rooted at n, children first, and returns the
// number of object buffers released. Buffers already released by Destroy
// are skipped.
func (n *Node) Collapse() int {
	released := 0
	for _, c := range n.children {
		released += c.Collapse()
	}
	n.children = nil

	if n.objects.Valid() {
		n.objects.Destroy()
		released++
	}

	return released
}
