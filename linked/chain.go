package linked

import (
	"fmt"
	"iter"

	"github.com/arloliu/stdx/array"
	"github.com/arloliu/stdx/errs"
)

// Link is a handle to a link of a Chain. The zero value is NoLink.
type Link struct {
	index int32
	gen   uint32
}

// NoLink denotes the absence of a link: the predecessor of a head, the
// successor of a tail, or "create a standalone link" for CreateLink.
var NoLink = Link{}

// IsZero reports whether l is NoLink.
func (l Link) IsZero() bool {
	return l == NoLink
}

func (l Link) String() string {
	if l.IsZero() {
		return "link(none)"
	}

	return fmt.Sprintf("link(%d#%d)", l.index, l.gen)
}

type node struct {
	arr  *array.Array
	prev Link
	next Link
	gen  uint32 // generation of the current or next occupant; starts at 1
	live bool
}

// Chain is an arena of links.
type Chain struct {
	opts  []array.Option
	nodes []node
	free  []int32
	live  int
}

// NewChain creates an empty chain. Every link array is created with opts.
func NewChain(opts ...array.Option) *Chain {
	return &Chain{opts: opts}
}

// CreateLink creates a link owning a new array of max elements of stride bytes.
//
// With prev == NoLink the link is a standalone head. Otherwise it is inserted
// directly after prev, between prev and its former successor.
//
// Returns:
//   - Link: Handle of the new link
//   - error: ErrInvalidHandle for a stale prev, or the array creation error
func (c *Chain) CreateLink(prev Link, stride, max uint32) (Link, error) {
	if !prev.IsZero() && !c.Contains(prev) {
		return NoLink, fmt.Errorf("%w: prev %s", errs.ErrInvalidHandle, prev)
	}

	arr, err := array.Create(stride, max, c.opts...)
	if err != nil {
		return NoLink, err
	}

	l := c.acquire()
	n := &c.nodes[l.index]
	n.arr = arr

	if !prev.IsZero() {
		p := &c.nodes[prev.index]
		n.prev = prev
		n.next = p.next
		if !p.next.IsZero() {
			c.nodes[p.next.index].prev = l
		}
		p.next = l
	}

	return l, nil
}

// DestroyLink destroys the array of l and removes l from its chain,
// connecting its former neighbours to each other.
func (c *Chain) DestroyLink(l Link) error {
	n, err := c.lookup(l)
	if err != nil {
		return err
	}

	if !n.prev.IsZero() {
		c.nodes[n.prev.index].next = n.next
	}
	if !n.next.IsZero() {
		c.nodes[n.next.index].prev = n.prev
	}
	c.release(l)

	return nil
}

// Collapse destroys every link reachable from l, in either direction, and
// returns the number of links destroyed. Each link is released exactly once.
func (c *Chain) Collapse(l Link) (int, error) {
	cur, err := c.First(l)
	if err != nil {
		return 0, err
	}

	destroyed := 0
	for !cur.IsZero() {
		next := c.nodes[cur.index].next
		c.release(cur)
		cur = next
		destroyed++
	}

	tracer().Debugf("linked: collapsed %d links from %s, %d links left in chain", destroyed, l, c.live)

	return destroyed, nil
}

// Array returns the array owned by l.
func (c *Chain) Array(l Link) (*array.Array, error) {
	n, err := c.lookup(l)
	if err != nil {
		return nil, err
	}

	return n.arr, nil
}

// ResizeLink replaces the array of l with a resized copy. On failure the
// link keeps its old array.
func (c *Chain) ResizeLink(l Link, max uint32) error {
	n, err := c.lookup(l)
	if err != nil {
		return err
	}

	arr, err := array.Resize(n.arr, max)
	if err != nil {
		return err
	}
	n.arr = arr

	return nil
}

// Next returns the successor of l, NoLink for a tail.
func (c *Chain) Next(l Link) (Link, error) {
	n, err := c.lookup(l)
	if err != nil {
		return NoLink, err
	}

	return n.next, nil
}

// Prev returns the predecessor of l, NoLink for a head.
func (c *Chain) Prev(l Link) (Link, error) {
	n, err := c.lookup(l)
	if err != nil {
		return NoLink, err
	}

	return n.prev, nil
}

// First returns the head of the chain containing l.
func (c *Chain) First(l Link) (Link, error) {
	n, err := c.lookup(l)
	if err != nil {
		return NoLink, err
	}

	for !n.prev.IsZero() {
		l = n.prev
		n = &c.nodes[l.index]
	}

	return l, nil
}

// Last returns the tail of the chain containing l.
func (c *Chain) Last(l Link) (Link, error) {
	n, err := c.lookup(l)
	if err != nil {
		return NoLink, err
	}

	for !n.next.IsZero() {
		l = n.next
		n = &c.nodes[l.index]
	}

	return l, nil
}

// Links iterates the chain containing l from head to tail. A stale l yields
// nothing. The chain must not be modified during iteration.
func (c *Chain) Links(l Link) iter.Seq[Link] {
	return func(yield func(Link) bool) {
		cur, err := c.First(l)
		if err != nil {
			return
		}

		for !cur.IsZero() {
			if !yield(cur) {
				return
			}
			cur = c.nodes[cur.index].next
		}
	}
}

// Len returns the number of live links across all chains of the arena.
func (c *Chain) Len() int {
	return c.live
}

// Contains reports whether l is a live link of c.
func (c *Chain) Contains(l Link) bool {
	_, err := c.lookup(l)
	return err == nil
}

func (c *Chain) lookup(l Link) (*node, error) {
	if l.IsZero() || l.index < 0 || int(l.index) >= len(c.nodes) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidHandle, l)
	}

	n := &c.nodes[l.index]
	if !n.live || n.gen != l.gen {
		return nil, fmt.Errorf("%w: %s is stale", errs.ErrInvalidHandle, l)
	}

	return n, nil
}

func (c *Chain) acquire() Link {
	var idx int32
	if k := len(c.free); k > 0 {
		idx = c.free[k-1]
		c.free = c.free[:k-1]
	} else {
		idx = int32(len(c.nodes))
		c.nodes = append(c.nodes, node{gen: 1})
	}

	n := &c.nodes[idx]
	n.live = true
	n.prev, n.next = NoLink, NoLink
	c.live++

	return Link{index: idx, gen: n.gen}
}

// release destroys the array of l and recycles its slot. Neighbour pointers
// are left to the caller.
func (c *Chain) release(l Link) {
	n := &c.nodes[l.index]
	n.arr.Destroy()
	n.arr = nil
	n.prev, n.next = NoLink, NoLink
	n.live = false
	n.gen++
	if n.gen == 0 {
		n.gen = 1
	}

	c.free = append(c.free, l.index)
	c.live--
}
