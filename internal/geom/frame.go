package geom

import "fmt"

// Frame is a rectangle decomposed into a border of fixed width: four edges
// and four corners.
type Frame struct {
	Top, Bottom, Left, Right                   Rect
	TopLeft, TopRight, BottomLeft, BottomRight Rect
}

// NewFrame computes the frame of width border around the inside of r.
func NewFrame(r Rect, border uint16) (Frame, error) {
	if int(r.W) < 2*int(border) || int(r.H) < 2*int(border) {
		return Frame{}, fmt.Errorf("%w: %s too small for border %d", ErrGeometry, r, border)
	}
	b := border
	innerW, innerH := r.W-2*b, r.H-2*b
	x0, y0 := r.TL.X, r.TL.Y
	x1, y1 := r.TL.X+r.W-b, r.TL.Y+r.H-b
	return Frame{
		Top:         NewRect(x0+b, y0, innerW, b),
		Bottom:      NewRect(x0+b, y1, innerW, b),
		Left:        NewRect(x0, y0+b, b, innerH),
		Right:       NewRect(x1, y0+b, b, innerH),
		TopLeft:     NewRect(x0, y0, b, b),
		TopRight:    NewRect(x1, y0, b, b),
		BottomLeft:  NewRect(x0, y1, b, b),
		BottomRight: NewRect(x1, y1, b, b),
	}, nil
}
