// Package quadtree implements quad trees whose nodes store their objects in
// an array.Array.
//
// A Node is either a leaf (no children) or internal with exactly four
// children, addressed by index:
//
//	+----+----+   0 NW   1 NE
//	| 0  | 1  |   2 SW   3 SE
//	+----+----+
//	| 2  | 3  |   The y axis grows southward. A point on a midline
//	+----+----+   belongs to the east or south quadrant.
//
// Node exposes the structural primitives only: creating a leaf, subdividing
// it, destroying a single node and collapsing a subtree depth-first.
//
// Tree layers an insertion policy on top. Objects are fixed-size records and
// a Locator extracts each record's position. When a leaf is full it is
// subdivided and its records are redistributed into the children; a full leaf
// at the maximum depth has its buffer doubled instead.
//
//	tree, err := quadtree.NewTree(quadtree.Bounds{MaxX: 100, MaxY: 100}, 16, 4)
//	if err != nil {
//	    return err
//	}
//	defer tree.Destroy()
//
//	err = tree.Insert(quadtree.Record(engine, quadtree.Point{X: 3, Y: 4}, 16))
//
// Nodes and trees are not safe for concurrent use.
package quadtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stdx'
func tracer() tracing.Trace {
	return tracing.Select("stdx")
}
