package canopy

import (
	"fmt"
	"strings"

	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderBackend receives drawing operations in screen coordinates. Text is
// plain: styling is carried by the most recent Style call.
type RenderBackend interface {
	Style(name string, s lipgloss.Style) error
	Text(p geom.Point, s string) error
	Fill(r geom.Rect, ch rune) error
	ShowCursor(c Cursor) error
	HideCursor() error
	Flush() error
	Reset() error
}

// Render is the painter passed to Node.Render. All coordinates are in the
// node's canvas space; output is clipped to the node's view and translated
// to the screen.
type Render struct {
	backend RenderBackend
	styles  *theme.StyleMap
	layers  *theme.Manager
	vp      ViewPort
	repaint bool
}

// NewRender returns a painter for a node with viewport vp.
func NewRender(b RenderBackend, styles *theme.StyleMap, layers *theme.Manager, vp ViewPort) *Render {
	return &Render{backend: b, styles: styles, layers: layers, vp: vp}
}

// ViewPort is the viewport of the node being rendered.
func (r *Render) ViewPort() ViewPort {
	return r.vp
}

// Repaint reports whether the whole screen is being redrawn in this sweep.
func (r *Render) Repaint() bool {
	return r.repaint
}

// Backend exposes the underlying backend, for adapters that render a nested
// tree.
func (r *Render) Backend() RenderBackend {
	return r.backend
}

// Styles returns the style map in use.
func (r *Render) Styles() *theme.StyleMap {
	return r.styles
}

// PushLayer adds a style layer that applies to this node and its children.
func (r *Render) PushLayer(name string) {
	r.layers.PushLayer(name)
}

func (r *Render) style(name string) error {
	s, resolved := r.layers.Resolve(r.styles, name)
	if err := r.backend.Style(resolved, s); err != nil {
		return fmt.Errorf("%w: style %s: %w", ErrRender, name, err)
	}
	return nil
}

// Text draws txt on line l, padded with spaces or truncated to the width of
// the line, then clipped to the view.
func (r *Render) Text(style string, l geom.Line, txt string) error {
	sl, clipped, ok := r.vp.ProjectLine(l)
	if !ok {
		return nil
	}
	txt = fitWidth(txt, int(l.W))
	if clipped > 0 {
		txt = ansi.TruncateLeft(txt, int(clipped), "")
	}
	txt = ansi.Truncate(txt, int(sl.W), "")
	if err := r.style(style); err != nil {
		return err
	}
	if err := r.backend.Text(sl.TL, txt); err != nil {
		return fmt.Errorf("%w: text at %s: %w", ErrRender, sl.TL, err)
	}
	return nil
}

// Fill paints every visible cell of rect with ch.
func (r *Render) Fill(style string, rect geom.Rect, ch rune) error {
	sr, ok := r.vp.ProjectRect(rect)
	if !ok {
		return nil
	}
	if err := r.style(style); err != nil {
		return err
	}
	if err := r.backend.Fill(sr, ch); err != nil {
		return fmt.Errorf("%w: fill %s: %w", ErrRender, sr, err)
	}
	return nil
}

// Clear blanks the node's whole view.
func (r *Render) Clear(style string) error {
	return r.Fill(style, r.vp.View(), ' ')
}

// fitWidth pads or truncates s to exactly width display cells.
func fitWidth(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}
