package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrGeometry is returned when a requested rectangle relationship cannot be
// satisfied, for example a view larger than its outer bounds.
var ErrGeometry = errors.New("geometry")

// Rect is an axis-aligned rectangle. Width and height may be zero.
type Rect struct {
	TL   Point
	W, H uint16
}

// NewRect returns a rectangle with its top-left corner at x, y.
func NewRect(x, y, w, h uint16) Rect {
	return Rect{TL: Point{X: x, Y: y}, W: w, H: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.TL.X, r.TL.Y, r.W, r.H)
}

// Expanse returns the size of the rectangle.
func (r Rect) Expanse() Expanse {
	return Expanse{W: r.W, H: r.H}
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.W == 0 || r.H == 0
}

// At returns the same-sized rectangle moved to p.
func (r Rect) At(p Point) Rect {
	return Rect{TL: p, W: r.W, H: r.H}
}

// right and bottom are exclusive bounds, computed in int to avoid overflow.
func (r Rect) right() int  { return int(r.TL.X) + int(r.W) }
func (r Rect) bottom() int { return int(r.TL.Y) + int(r.H) }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.TL.X && int(p.X) < r.right() && p.Y >= r.TL.Y && int(p.Y) < r.bottom()
}

// ContainsRect reports whether o lies entirely inside the rectangle. An empty
// rectangle is contained if its corner lies within the bounds.
func (r Rect) ContainsRect(o Rect) bool {
	return o.TL.X >= r.TL.X && o.TL.Y >= r.TL.Y && o.right() <= r.right() && o.bottom() <= r.bottom()
}

// Intersect returns the overlap of the two rectangles. The boolean is false
// when they do not overlap.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x0 := max(int(r.TL.X), int(o.TL.X))
	y0 := max(int(r.TL.Y), int(o.TL.Y))
	x1 := min(r.right(), o.right())
	y1 := min(r.bottom(), o.bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{TL: Point{X: uint16(x0), Y: uint16(y0)}, W: uint16(x1 - x0), H: uint16(y1 - y0)}, true
}

// Clamp shifts the rectangle the minimum distance needed to place it inside
// outer. Its size is never changed; if it is larger than outer on either axis
// an error is returned.
func (r Rect) Clamp(outer Rect) (Rect, error) {
	if r.W > outer.W || r.H > outer.H {
		return r, fmt.Errorf("%w: %s does not fit inside %s", ErrGeometry, r, outer)
	}
	return r.clampAxes(outer), nil
}

// clampAxes is Clamp without the size check. On an axis where r is larger
// than outer, r is pinned to outer's leading edge.
func (r Rect) clampAxes(outer Rect) Rect {
	r.TL.X = clampSpan(r.TL.X, r.W, outer.TL.X, outer.W)
	r.TL.Y = clampSpan(r.TL.Y, r.H, outer.TL.Y, outer.H)
	return r
}

func clampSpan(pos, size, outerPos, outerSize uint16) uint16 {
	if size >= outerSize || pos < outerPos {
		return outerPos
	}
	if int(pos)+int(size) > int(outerPos)+int(outerSize) {
		return uint16(int(outerPos) + int(outerSize) - int(size))
	}
	return pos
}

// Shift moves the rectangle by the given offsets, saturating at the edges of
// the coordinate space. The size is preserved, so a rectangle pushed against
// the far edge is shifted back to fit.
func (r Rect) Shift(dx, dy int16) Rect {
	tl := r.TL.Scroll(dx, dy)
	if int(tl.X)+int(r.W) > math.MaxUint16 {
		tl.X = math.MaxUint16 - r.W
	}
	if int(tl.Y)+int(r.H) > math.MaxUint16 {
		tl.Y = math.MaxUint16 - r.H
	}
	return Rect{TL: tl, W: r.W, H: r.H}
}

// ShiftWithin moves the rectangle by the given offsets, then clamps it inside
// outer.
func (r Rect) ShiftWithin(dx, dy int16, outer Rect) Rect {
	return r.Shift(dx, dy).clampAxes(outer)
}

// Inner returns the rectangle shrunk by border cells on every side. If the
// border consumes the rectangle the result is empty and centred.
func (r Rect) Inner(border uint16) Rect {
	w := max(int(r.W)-2*int(border), 0)
	h := max(int(r.H)-2*int(border), 0)
	return Rect{
		TL: Point{X: saturate(int(r.TL.X) + min(int(border), int(r.W)/2)), Y: saturate(int(r.TL.Y) + min(int(border), int(r.H)/2))},
		W:  uint16(w),
		H:  uint16(h),
	}
}

// Center returns the central point, rounding towards the top left.
func (r Rect) Center() Point {
	return Point{X: r.TL.X + r.W/2, Y: r.TL.Y + r.H/2}
}

// Line returns line i of the rectangle, relative to its top.
func (r Rect) Line(i uint16) Line {
	return Line{TL: Point{X: r.TL.X, Y: saturate(int(r.TL.Y) + int(i))}, W: r.W}
}

// FirstLine returns the top line of the rectangle.
func (r Rect) FirstLine() Line {
	return r.Line(0)
}

// splitSize divides size into n parts as evenly as possible. Leftover cells go
// one each to the leading parts.
func splitSize(size uint16, n uint16) ([]uint16, error) {
	if n == 0 {
		return nil, fmt.Errorf("%w: cannot split into zero sections", ErrGeometry)
	}
	base := size / n
	rem := size % n
	out := make([]uint16, n)
	for i := range out {
		out[i] = base
		if uint16(i) < rem {
			out[i]++
		}
	}
	return out, nil
}

// SplitHorizontal divides the rectangle into n columns laid out left to right.
func (r Rect) SplitHorizontal(n uint16) ([]Rect, error) {
	widths, err := splitSize(r.W, n)
	if err != nil {
		return nil, err
	}
	out := make([]Rect, 0, n)
	x := r.TL.X
	for _, w := range widths {
		out = append(out, Rect{TL: Point{X: x, Y: r.TL.Y}, W: w, H: r.H})
		x += w
	}
	return out, nil
}

// SplitVertical divides the rectangle into n rows laid out top to bottom.
func (r Rect) SplitVertical(n uint16) ([]Rect, error) {
	heights, err := splitSize(r.H, n)
	if err != nil {
		return nil, err
	}
	out := make([]Rect, 0, n)
	y := r.TL.Y
	for _, h := range heights {
		out = append(out, Rect{TL: Point{X: r.TL.X, Y: y}, W: r.W, H: h})
		y += h
	}
	return out, nil
}

// SplitPanes partitions the rectangle into a grid of panes. The shape lists
// the number of rows in each column; the result is indexed [column][row].
func (r Rect) SplitPanes(shape []uint16) ([][]Rect, error) {
	cols, err := r.SplitHorizontal(uint16(len(shape)))
	if err != nil {
		return nil, err
	}
	out := make([][]Rect, len(cols))
	for i, col := range cols {
		rows, err := col.SplitVertical(shape[i])
		if err != nil {
			return nil, err
		}
		out[i] = rows
	}
	return out, nil
}

// CarveHStart removes a strip n cells wide from the left edge, returning the
// strip and the remainder.
func (r Rect) CarveHStart(n uint16) (Rect, Rect) {
	n = min(n, r.W)
	return Rect{TL: r.TL, W: n, H: r.H},
		Rect{TL: Point{X: r.TL.X + n, Y: r.TL.Y}, W: r.W - n, H: r.H}
}

// CarveHEnd removes a strip n cells wide from the right edge, returning the
// remainder and the strip.
func (r Rect) CarveHEnd(n uint16) (Rect, Rect) {
	n = min(n, r.W)
	return Rect{TL: r.TL, W: r.W - n, H: r.H},
		Rect{TL: Point{X: r.TL.X + r.W - n, Y: r.TL.Y}, W: n, H: r.H}
}

// CarveVStart removes a strip n cells high from the top edge, returning the
// strip and the remainder.
func (r Rect) CarveVStart(n uint16) (Rect, Rect) {
	n = min(n, r.H)
	return Rect{TL: r.TL, W: r.W, H: n},
		Rect{TL: Point{X: r.TL.X, Y: r.TL.Y + n}, W: r.W, H: r.H - n}
}

// CarveVEnd removes a strip n cells high from the bottom edge, returning the
// remainder and the strip.
func (r Rect) CarveVEnd(n uint16) (Rect, Rect) {
	n = min(n, r.H)
	return Rect{TL: r.TL, W: r.W, H: r.H - n},
		Rect{TL: Point{X: r.TL.X, Y: r.TL.Y + r.H - n}, W: r.W, H: n}
}

// Search walks outward from the rectangle in direction dir, one row or column
// at a time. Within each step the points spanned by the rectangle are offered
// to f nearest-to-centre first. The search ends when f returns true, when f
// returns an error, or when the edge of the coordinate space is reached.
func (r Rect) Search(dir Direction, f func(Point) (bool, error)) error {
	var span []uint16
	switch dir {
	case Left, Right:
		span = centreOut(r.TL.Y, r.H)
	case Up, Down:
		span = centreOut(r.TL.X, r.W)
	default:
		return fmt.Errorf("%w: unknown direction %d", ErrGeometry, dir)
	}
	for step := 1; ; step++ {
		var primary int
		switch dir {
		case Left:
			primary = int(r.TL.X) - step
		case Right:
			primary = r.right() + step - 1
		case Up:
			primary = int(r.TL.Y) - step
		case Down:
			primary = r.bottom() + step - 1
		}
		if primary < 0 || primary > math.MaxUint16 {
			return nil
		}
		for _, s := range span {
			p := Point{X: uint16(primary), Y: s}
			if dir == Up || dir == Down {
				p = Point{X: s, Y: uint16(primary)}
			}
			done, err := f(p)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// centreOut lists the coordinates start..start+size-1 ordered by distance from
// the middle, nearer-to-start first on ties.
func centreOut(start, size uint16) []uint16 {
	if size == 0 {
		return []uint16{start}
	}
	mid := int(start) + int(size)/2
	lo, hi := int(start), int(start)+int(size)-1
	out := make([]uint16, 0, size)
	out = append(out, uint16(mid))
	for d := 1; len(out) < int(size); d++ {
		if mid-d >= lo {
			out = append(out, uint16(mid-d))
		}
		if mid+d <= hi {
			out = append(out, uint16(mid+d))
		}
	}
	return out
}
