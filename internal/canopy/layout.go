package canopy

import (
	"fmt"

	"github.com/atomicstack/canopy/internal/geom"
)

// Layout is handed to Node.Layout. Its methods set a child's viewport and
// taint the child whenever the viewport actually changes.
type Layout struct {
	c *Canopy
}

func (l *Layout) apply(child Node, update func(vp *ViewPort)) {
	st := child.State()
	before := st.vp
	update(&st.vp)
	if st.vp != before {
		l.c.Taint(child)
	}
}

// Wrap fits child to the parent's view and gives it the parent's screen
// rectangle. The child keeps its own scroll position, so a parent that
// passes its child's fit back through its own Fit can scroll the child.
func (l *Layout) Wrap(child Node, parent ViewPort) error {
	fit, err := child.Fit(parent.View().Expanse())
	if err != nil {
		return fmt.Errorf("wrap %s: %w", child.Name(), err)
	}
	l.apply(child, func(vp *ViewPort) { vp.Update(fit, parent.Screen()) })
	return nil
}

// Place fits child to the size of screen and places it there.
func (l *Layout) Place(child Node, screen geom.Rect) error {
	fit, err := child.Fit(screen.Expanse())
	if err != nil {
		return fmt.Errorf("place %s: %w", child.Name(), err)
	}
	l.apply(child, func(vp *ViewPort) { vp.Update(fit, screen) })
	return nil
}

// Fill places child at screen with a canvas exactly the size of screen,
// ignoring the child's own fit.
func (l *Layout) Fill(child Node, screen geom.Rect) {
	l.apply(child, func(vp *ViewPort) { vp.SetFill(screen) })
}

// Frame fits child inside a border of the given width around the parent's
// view, and returns the border rectangles in the parent's canvas
// coordinates.
func (l *Layout) Frame(child Node, parent ViewPort, border uint16) (geom.Frame, error) {
	view := parent.View()
	fit, err := child.Fit(view.Inner(border).Expanse())
	if err != nil {
		return geom.Frame{}, fmt.Errorf("frame %s: %w", child.Name(), err)
	}
	screen := parent.Screen()
	l.apply(child, func(vp *ViewPort) { vp.Update(fit, screen.Inner(border)) })
	return geom.NewFrame(geom.Rect{TL: view.TL, W: screen.W, H: screen.H}, border)
}

// Taint marks n for rendering in the sweep being laid out. Nodes use it when
// layout changes their content without moving them.
func (l *Layout) Taint(n Node) {
	l.c.Taint(n)
}

// Hide removes child from focus and rendering.
func (l *Layout) Hide(child Node) {
	l.c.Hide(child)
}

// Unhide reverses Hide.
func (l *Layout) Unhide(child Node) {
	l.c.Unhide(child)
}
