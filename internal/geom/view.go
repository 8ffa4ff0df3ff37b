package geom

import "fmt"

// View manages two rectangles in concert: an outer rectangle and a view
// rectangle that is free to move within it. The view is always contained in
// the outer rectangle.
type View struct {
	outer Rect
	view  Rect
}

// NewView returns a View. The view rectangle must lie within outer.
func NewView(outer, view Rect) (View, error) {
	if !outer.ContainsRect(view) {
		return View{}, fmt.Errorf("%w: view %s not contained in outer %s", ErrGeometry, view, outer)
	}
	return View{outer: outer, view: view}, nil
}

// View returns the inner view rectangle.
func (v View) View() Rect {
	return v.view
}

// Outer returns the enclosing rectangle.
func (v View) Outer() Rect {
	return v.outer
}

// ScrollTo moves the top-left of the view to x, y, clamped within outer.
func (v *View) ScrollTo(x, y uint16) {
	v.view = Rect{TL: Point{X: x, Y: y}, W: v.view.W, H: v.view.H}.clampAxes(v.outer)
}

// ScrollBy moves the view by the given offsets, clamped within outer.
func (v *View) ScrollBy(dx, dy int16) {
	v.view = v.view.ShiftWithin(dx, dy, v.outer)
}

// PageUp scrolls up by the height of the view.
func (v *View) PageUp() {
	v.ScrollBy(0, -pageStep(v.view.H))
}

// PageDown scrolls down by the height of the view.
func (v *View) PageDown() {
	v.ScrollBy(0, pageStep(v.view.H))
}

// Up scrolls up one line.
func (v *View) Up() { v.ScrollBy(0, -1) }

// Down scrolls down one line.
func (v *View) Down() { v.ScrollBy(0, 1) }

// Left scrolls left one column.
func (v *View) Left() { v.ScrollBy(-1, 0) }

// Right scrolls right one column.
func (v *View) Right() { v.ScrollBy(1, 0) }

// ResizeOuter replaces the outer rectangle. The view stays in place if it can,
// and is shifted otherwise. If the view no longer fits at all it becomes the
// new outer rectangle.
func (v *View) ResizeOuter(outer Rect) {
	view := v.view
	if outer.W < view.W || outer.H < view.H {
		view = outer
	}
	v.view = view.clampAxes(outer)
	v.outer = outer
}

// SetInner replaces the view rectangle, shifting it to fit inside outer. It
// is an error for the new view to be larger than outer.
func (v *View) SetInner(inner Rect) error {
	clamped, err := inner.Clamp(v.outer)
	if err != nil {
		return err
	}
	v.view = clamped
	return nil
}

// Fit replaces the outer rectangle and resizes the view to size, capped at
// the size of outer. The view keeps its position where it can.
func (v *View) Fit(outer Rect, size Expanse) {
	size = size.Min(outer.Expanse())
	v.outer = outer
	v.view = Rect{TL: v.view.TL, W: size.W, H: size.H}.clampAxes(outer)
}

// pageStep converts a page height to a scroll offset.
func pageStep(h uint16) int16 {
	if h > 1<<15-1 {
		return 1<<15 - 1
	}
	return int16(h)
}
