package widgets

import (
	"fmt"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/commands"
	"github.com/atomicstack/canopy/internal/event"
)

// Scroll gives its child the whole of its own screen area and lets the user
// move the child's view with keys and the mouse wheel.
type Scroll struct {
	canopy.NodeState
	child canopy.Node
}

// NewScroll wraps child.
func NewScroll(child canopy.Node) *Scroll {
	s := &Scroll{child: child}
	s.SetName("scroll")
	return s
}

// Child returns the scrolled node.
func (s *Scroll) Child() canopy.Node {
	return s.child
}

func (s *Scroll) AcceptFocus() bool { return true }

func (s *Scroll) Children(f func(canopy.Node) error) error {
	return f(s.child)
}

func (s *Scroll) Layout(l *canopy.Layout) error {
	return l.Wrap(s.child, *s.ViewPort())
}

var scrollKeys = map[string]string{
	"up":     "up",
	"k":      "up",
	"down":   "down",
	"j":      "down",
	"left":   "left",
	"h":      "left",
	"right":  "right",
	"l":      "right",
	"pgup":   "page_up",
	"pgdown": "page_down",
	"space":  "page_down",
	"home":   "home",
	"g":      "home",
	"end":    "end",
	"G":      "end",
}

var scrollMouse = map[event.MouseAction]string{
	event.ScrollUp:    "up",
	event.ScrollDown:  "down",
	event.ScrollLeft:  "left",
	event.ScrollRight: "right",
}

func (s *Scroll) HandleKey(c canopy.Context, k event.Key) (canopy.Outcome, error) {
	if name, ok := scrollKeys[k.String()]; ok {
		return s.Dispatch(c, name)
	}
	return canopy.Ignore(), nil
}

func (s *Scroll) HandleMouse(c canopy.Context, m event.Mouse) (canopy.Outcome, error) {
	if name, ok := scrollMouse[m.Action]; ok {
		return s.Dispatch(c, name)
	}
	return canopy.Ignore(), nil
}

func (s *Scroll) Commands() []commands.Command {
	return []commands.Command{
		{Node: s.Name(), Name: "up", Doc: "scroll up one line"},
		{Node: s.Name(), Name: "down", Doc: "scroll down one line"},
		{Node: s.Name(), Name: "left", Doc: "scroll left one column"},
		{Node: s.Name(), Name: "right", Doc: "scroll right one column"},
		{Node: s.Name(), Name: "page_up", Doc: "scroll up one page"},
		{Node: s.Name(), Name: "page_down", Doc: "scroll down one page"},
		{Node: s.Name(), Name: "home", Doc: "scroll to the top"},
		{Node: s.Name(), Name: "end", Doc: "scroll to the bottom"},
	}
}

// Dispatch moves the child's view. The child and everything below it is
// tainted since its visible content changed.
func (s *Scroll) Dispatch(c canopy.Context, name string) (canopy.Outcome, error) {
	vp := s.child.State().ViewPort()
	switch name {
	case "up":
		vp.Up()
	case "down":
		vp.Down()
	case "left":
		vp.Left()
	case "right":
		vp.Right()
	case "page_up":
		vp.PageUp()
	case "page_down":
		vp.PageDown()
	case "home":
		vp.ScrollTo(0, 0)
	case "end":
		vp.ScrollTo(0, vp.Canvas().H)
	default:
		return canopy.Ignore(), fmt.Errorf("%w: scroll.%s", commands.ErrUnknownCommand, name)
	}
	if err := c.TaintTree(s.child); err != nil {
		return canopy.Ignore(), err
	}
	return canopy.Handle(), nil
}
