package canopy

import (
	"fmt"

	"github.com/atomicstack/canopy/internal/geom"
)

// ViewPort maps a node's canvas onto the screen. The canvas is the node's
// full virtual size; the view is the part of the canvas that is visible; the
// screen is where the view is drawn. The view always lies within the canvas
// and, once laid out, is never larger than the screen.
type ViewPort struct {
	view   geom.View
	screen geom.Rect
}

// NewViewPort validates and returns a viewport.
func NewViewPort(canvas geom.Expanse, view, screen geom.Rect) (ViewPort, error) {
	v, err := geom.NewView(canvas.Rect(), view)
	if err != nil {
		return ViewPort{}, fmt.Errorf("viewport: %w", err)
	}
	return ViewPort{view: v, screen: screen}, nil
}

// Canvas is the virtual size of the node's content.
func (vp ViewPort) Canvas() geom.Expanse {
	return vp.view.Outer().Expanse()
}

// View is the visible rectangle, in canvas coordinates.
func (vp ViewPort) View() geom.Rect {
	return vp.view.View()
}

// Screen is the screen rectangle allocated to the node.
func (vp ViewPort) Screen() geom.Rect {
	return vp.screen
}

func (vp ViewPort) String() string {
	return fmt.Sprintf("canvas=%s view=%s screen=%s", vp.Canvas(), vp.View(), vp.screen)
}

// Update sets a new canvas size and screen rectangle. The view is resized to
// the smaller of the two and keeps its scroll position where possible.
func (vp *ViewPort) Update(canvas geom.Expanse, screen geom.Rect) {
	vp.view.Fit(canvas.Rect(), screen.Expanse())
	vp.screen = screen
}

// SetFill makes the canvas exactly the size of screen, with the whole canvas
// in view.
func (vp *ViewPort) SetFill(screen geom.Rect) {
	vp.Update(screen.Expanse(), screen)
	vp.view.ScrollTo(0, 0)
}

// ScrollTo moves the view's top-left to x, y in canvas coordinates.
func (vp *ViewPort) ScrollTo(x, y uint16) { vp.view.ScrollTo(x, y) }

// ScrollBy moves the view by the given offsets.
func (vp *ViewPort) ScrollBy(dx, dy int16) { vp.view.ScrollBy(dx, dy) }

func (vp *ViewPort) PageUp()   { vp.view.PageUp() }
func (vp *ViewPort) PageDown() { vp.view.PageDown() }
func (vp *ViewPort) Up()       { vp.view.Up() }
func (vp *ViewPort) Down()     { vp.view.Down() }
func (vp *ViewPort) Left()     { vp.view.Left() }
func (vp *ViewPort) Right()    { vp.view.Right() }

// visible is the part of the screen the view actually covers.
func (vp ViewPort) visible() geom.Rect {
	view := vp.View()
	return geom.Rect{TL: vp.screen.TL, W: min(view.W, vp.screen.W), H: min(view.H, vp.screen.H)}
}

// Contains reports whether screen point p lies within the node's screen
// rectangle.
func (vp ViewPort) Contains(p geom.Point) bool {
	return vp.screen.Contains(p)
}

// ProjectPoint translates a canvas point to the screen. It reports false if
// the point is not in view.
func (vp ViewPort) ProjectPoint(p geom.Point) (geom.Point, bool) {
	view := vp.View()
	if !vp.visible().At(view.TL).Contains(p) {
		return geom.Point{}, false
	}
	return geom.Point{
		X: vp.screen.TL.X + (p.X - view.TL.X),
		Y: vp.screen.TL.Y + (p.Y - view.TL.Y),
	}, true
}

// ProjectRect translates the visible part of a canvas rectangle to the
// screen. It reports false if no part of r is in view.
func (vp ViewPort) ProjectRect(r geom.Rect) (geom.Rect, bool) {
	view := vp.View()
	clip, ok := r.Intersect(vp.visible().At(view.TL))
	if !ok {
		return geom.Rect{}, false
	}
	tl, _ := vp.ProjectPoint(clip.TL)
	return geom.Rect{TL: tl, W: clip.W, H: clip.H}, true
}

// ProjectLine translates the visible part of a canvas line to the screen,
// returning the screen line and the number of leading cells clipped off.
func (vp ViewPort) ProjectLine(l geom.Line) (geom.Line, uint16, bool) {
	r, ok := vp.ProjectRect(l.Rect())
	if !ok {
		return geom.Line{}, 0, false
	}
	view := vp.View()
	var clipped uint16
	if view.TL.X > l.TL.X {
		clipped = view.TL.X - l.TL.X
	}
	return geom.Line{TL: r.TL, W: r.W}, clipped, true
}

// Unproject translates a screen point to canvas coordinates. It reports
// false if the point is outside the visible part of the screen rectangle.
func (vp ViewPort) Unproject(p geom.Point) (geom.Point, bool) {
	if !vp.visible().Contains(p) {
		return geom.Point{}, false
	}
	view := vp.View()
	return geom.Point{
		X: view.TL.X + (p.X - vp.screen.TL.X),
		Y: view.TL.Y + (p.Y - vp.screen.TL.Y),
	}, true
}
