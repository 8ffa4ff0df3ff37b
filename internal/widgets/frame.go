package widgets

import (
	"errors"
	"strings"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Frame draws a one-cell border around a single child. The border changes
// style while focus is inside the frame, carries an optional title on its
// top edge and shows a scroll indicator on its right edge when the child's
// canvas is taller than its view.
type Frame struct {
	canopy.NodeState
	child  canopy.Node
	title  string
	border lipgloss.Border
	frame  geom.Frame
}

// NewFrame wraps child in a rounded border.
func NewFrame(child canopy.Node, title string) *Frame {
	f := &Frame{child: child, title: title, border: lipgloss.RoundedBorder()}
	f.SetName("frame")
	return f
}

// SetBorder changes the border glyphs.
func (f *Frame) SetBorder(b lipgloss.Border) {
	f.border = b
}

// SetTitle changes the title. The caller should taint the node.
func (f *Frame) SetTitle(title string) {
	f.title = title
}

func (f *Frame) Children(fn func(canopy.Node) error) error {
	return fn(f.child)
}

func (f *Frame) Layout(l *canopy.Layout) error {
	fr, err := l.Frame(f.child, *f.ViewPort(), 1)
	if errors.Is(err, geom.ErrGeometry) {
		// Too small for a border: draw nothing of our own.
		f.frame = geom.Frame{}
		return nil
	}
	if err != nil {
		return err
	}
	f.frame = fr
	return nil
}

// ShouldRender also redraws the border whenever the child is redrawn, since
// the scroll indicator follows the child's view.
func (f *Frame) ShouldRender(c canopy.Context) canopy.RenderHint {
	if c.NeedsRender(f.child) {
		return canopy.RenderForce
	}
	return canopy.RenderDefault
}

func (f *Frame) Render(c canopy.Context, r *canopy.Render) error {
	style := "/frame"
	if c.IsOnFocusPath(f) {
		style = "/frame/focused"
	}
	fr := f.frame
	b := f.border

	corners := []struct {
		rect  geom.Rect
		glyph string
	}{
		{fr.TopLeft, b.TopLeft},
		{fr.TopRight, b.TopRight},
		{fr.BottomLeft, b.BottomLeft},
		{fr.BottomRight, b.BottomRight},
	}
	for _, corner := range corners {
		if err := r.Text(style, corner.rect.FirstLine(), corner.glyph); err != nil {
			return err
		}
	}
	if err := r.Text(style, fr.Top.FirstLine(), strings.Repeat(b.Top, int(fr.Top.W))); err != nil {
		return err
	}
	if err := r.Text(style, fr.Bottom.FirstLine(), strings.Repeat(b.Bottom, int(fr.Bottom.W))); err != nil {
		return err
	}
	for i := uint16(0); i < fr.Left.H; i++ {
		if err := r.Text(style, fr.Left.Line(i), b.Left); err != nil {
			return err
		}
	}
	if err := f.renderScroll(style, r); err != nil {
		return err
	}
	if f.title != "" && fr.Top.W > 2 {
		title := ansi.Truncate(" "+f.title+" ", int(fr.Top.W)-1, "…")
		l := geom.NewLine(fr.Top.TL.X+1, fr.Top.TL.Y, uint16(ansi.StringWidth(title)))
		if err := r.Text("/frame/title", l, title); err != nil {
			return err
		}
	}
	return nil
}

// renderScroll draws the right edge, with a thumb marking the part of the
// child's canvas that is in view. A Scroll child is looked through to the
// node it scrolls.
func (f *Frame) renderScroll(style string, r *canopy.Render) error {
	edge := f.frame.Right
	content := f.child
	if s, ok := content.(*Scroll); ok {
		content = s.Child()
	}
	thumb, ok := scrollThumb(*content.State().ViewPort(), edge.H)
	for i := uint16(0); i < edge.H; i++ {
		glyph, s := f.border.Right, style
		if ok && i >= thumb.start && i < thumb.end {
			glyph, s = "┃", "/frame/scroll"
		}
		if err := r.Text(s, edge.Line(i), glyph); err != nil {
			return err
		}
	}
	return nil
}

type span struct {
	start, end uint16
}

// scrollThumb maps the child's view onto a bar of the given height. It
// reports false when the whole canvas is in view.
func scrollThumb(vp canopy.ViewPort, height uint16) (span, bool) {
	canvas := int(vp.Canvas().H)
	view := vp.View()
	if height == 0 || canvas <= int(view.H) {
		return span{}, false
	}
	h := int(height)
	start := int(view.TL.Y) * h / canvas
	end := (int(view.TL.Y) + int(view.H)) * h / canvas
	end = max(end, start+1)
	return span{start: uint16(start), end: uint16(min(end, h))}, true
}
