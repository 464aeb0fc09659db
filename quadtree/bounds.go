package quadtree

import (
	"fmt"
	"math"
)

// Quadrant indices of a node's children.
const (
	NW = iota
	NE
	SW
	SE
)

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned rectangle, closed on all sides.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Valid reports whether b is finite and has a positive area.
func (b Bounds) Valid() bool {
	for _, v := range [...]float64{b.MinX, b.MinY, b.MaxX, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Contains reports whether p lies in b.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Intersects reports whether b and o share at least one point.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Center returns the midpoint of b.
func (b Bounds) Center() Point {
	return Point{X: b.MinX + (b.MaxX-b.MinX)/2, Y: b.MinY + (b.MaxY-b.MinY)/2}
}

// Quadrant returns the bounds of child i.
func (b Bounds) Quadrant(i int) Bounds {
	c := b.Center()
	q := b
	if i == NE || i == SE {
		q.MinX = c.X
	} else {
		q.MaxX = c.X
	}
	if i == SW || i == SE {
		q.MinY = c.Y
	} else {
		q.MaxY = c.Y
	}

	return q
}

// QuadrantOf returns the index of the quadrant p falls into.
func (b Bounds) QuadrantOf(p Point) int {
	c := b.Center()
	i := NW
	if p.X >= c.X {
		i++
	}
	if p.Y >= c.Y {
		i += 2
	}

	return i
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g,%g]-[%g,%g]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
