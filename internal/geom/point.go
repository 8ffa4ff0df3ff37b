// Package geom holds the integer geometry used by the layout engine: points,
// extents, rectangles, lines and the scrollable View.
package geom

import (
	"fmt"
	"math"
)

// Point is a location on an unbounded (but u16-addressed) grid.
type Point struct {
	X, Y uint16
}

// ZeroPoint is the origin.
var ZeroPoint = Point{}

// NewPoint returns a point at x, y.
func NewPoint(x, y uint16) Point {
	return Point{X: x, Y: y}
}

// Scroll moves the point by the given offsets, saturating at the edges of the
// coordinate space.
func (p Point) Scroll(dx, dy int16) Point {
	return Point{X: saturate(int(p.X) + int(dx)), Y: saturate(int(p.Y) + int(dy))}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Expanse is a width and height with no location.
type Expanse struct {
	W, H uint16
}

// NewExpanse returns an expanse of w by h.
func NewExpanse(w, h uint16) Expanse {
	return Expanse{W: w, H: h}
}

// Rect returns a rectangle of this size at the origin.
func (e Expanse) Rect() Rect {
	return Rect{W: e.W, H: e.H}
}

// Area is the number of cells covered.
func (e Expanse) Area() int {
	return int(e.W) * int(e.H)
}

// Min returns the per-axis minimum of the two expanses.
func (e Expanse) Min(o Expanse) Expanse {
	return Expanse{W: min(e.W, o.W), H: min(e.H, o.H)}
}

func (e Expanse) String() string {
	return fmt.Sprintf("%dx%d", e.W, e.H)
}

func saturate(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}
