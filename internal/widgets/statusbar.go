package widgets

import (
	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// StatusBar is a one-line bar showing the focus path of a tree on the left
// and a message on the right.
type StatusBar struct {
	canopy.NodeState
	root     canopy.Node
	message  string
	isError  bool
	rendered string
}

// NewStatusBar returns a bar that tracks focus under root. Root is usually
// set after the tree is built, with Track.
func NewStatusBar() *StatusBar {
	s := &StatusBar{}
	s.SetName("statusbar")
	return s
}

// Track sets the tree whose focus path is shown.
func (s *StatusBar) Track(root canopy.Node) {
	s.root = root
}

// SetMessage shows an informational message. The caller should taint the
// node.
func (s *StatusBar) SetMessage(msg string) {
	s.message, s.isError = msg, false
}

// SetError shows err as an error message; nil clears the message.
func (s *StatusBar) SetError(err error) {
	if err == nil {
		s.message, s.isError = "", false
		return
	}
	s.message, s.isError = err.Error(), true
}

func (s *StatusBar) Fit(target geom.Expanse) (geom.Expanse, error) {
	return geom.NewExpanse(target.W, 1), nil
}

func (s *StatusBar) path(c canopy.Context) string {
	if s.root == nil {
		return "/"
	}
	return c.FocusPath(s.root)
}

// ShouldRender redraws the bar whenever the focus path it shows is stale.
// The bar is not on the focus path itself, so focus changes alone would not
// reach it.
func (s *StatusBar) ShouldRender(c canopy.Context) canopy.RenderHint {
	if s.path(c) != s.rendered {
		return canopy.RenderForce
	}
	return canopy.RenderDefault
}

func (s *StatusBar) Render(c canopy.Context, r *canopy.Render) error {
	view := r.ViewPort().View()
	path := s.path(c)
	s.rendered = path
	line := view.FirstLine()
	if err := r.Text("/statusbar", line, " "+path); err != nil {
		return err
	}
	if s.message == "" {
		return nil
	}
	style := "/statusbar"
	if s.isError {
		style = "/statusbar/error"
	}
	room := max(int(view.W)-ansi.StringWidth(path)-3, 0)
	msg := truncate.StringWithTail(s.message, uint(room), "…")
	w := uint16(ansi.StringWidth(msg))
	if w == 0 {
		return nil
	}
	at := geom.NewLine(view.TL.X+view.W-w-1, view.TL.Y, w)
	return r.Text(style, at, msg)
}
