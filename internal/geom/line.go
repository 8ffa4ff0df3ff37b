package geom

import "fmt"

// Line is a horizontal run of cells, one cell high.
type Line struct {
	TL Point
	W  uint16
}

// NewLine returns a line starting at x, y with width w.
func NewLine(x, y, w uint16) Line {
	return Line{TL: Point{X: x, Y: y}, W: w}
}

// Rect returns the line as a rectangle of height 1.
func (l Line) Rect() Rect {
	return Rect{TL: l.TL, W: l.W, H: 1}
}

func (l Line) String() string {
	return fmt.Sprintf("line%s+%d", l.TL, l.W)
}
