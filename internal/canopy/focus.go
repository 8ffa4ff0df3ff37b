package canopy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/logging"
	"github.com/atomicstack/canopy/internal/logging/events"
)

// canFocus reports whether n may take focus. Hidden is checked on each node
// on its own; it is not inherited from ancestors.
func canFocus(n Node) bool {
	return !n.State().hidden && n.AcceptFocus()
}

// SetFocus makes n the focus leaf.
func (c *Canopy) SetFocus(n Node) {
	c.focusGen++
	n.State().focusGen = c.focusGen
	c.taint = true
}

// IsFocused reports whether n is the focus leaf.
func (c *Canopy) IsFocused(n Node) bool {
	return n.State().focusGen == c.focusGen
}

// walkFocus calls f on the focused node under root and then on each of its
// ancestors up to root. Nothing is called if no node under root is focused.
func (c *Canopy) walkFocus(root Node, f func(Node) error) error {
	seen := false
	_, err := Postorder(root, func(n Node) (Walk, error) {
		switch {
		case seen:
			return WalkContinue, f(n)
		case n.State().hidden:
			return WalkContinue, nil
		case n.State().focusGen == c.focusGen:
			seen = true
			return WalkSkip, f(n)
		}
		return WalkContinue, nil
	})
	return err
}

// IsOnFocusPath reports whether n is focused or is an ancestor of the focused
// node.
func (c *Canopy) IsOnFocusPath(n Node) bool {
	on := false
	// The visitor never fails, so neither can the walk.
	_ = c.walkFocus(n, func(Node) error {
		on = true
		return nil
	})
	return on
}

// IsFocusAncestor reports whether a descendant of n, but not n itself, is
// focused.
func (c *Canopy) IsFocusAncestor(n Node) bool {
	return !c.IsFocused(n) && c.IsOnFocusPath(n)
}

// FocusPath returns the names on the focus path as "/root/.../leaf", or "/"
// when nothing under root is focused.
func (c *Canopy) FocusPath(root Node) string {
	var names []string
	_ = c.walkFocus(root, func(n Node) error {
		names = append(names, n.Name())
		return nil
	})
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return "/" + strings.Join(names, "/")
}

// FocusDepth counts the nodes from the focus leaf up to and including n. It
// is 0 when n is not on the focus path and 1 when n is the focus leaf.
func (c *Canopy) FocusDepth(n Node) int {
	depth := 0
	_ = c.walkFocus(n, func(Node) error {
		depth++
		return nil
	})
	return depth
}

// FocusArea returns the screen rectangle of the focused node under root.
func (c *Canopy) FocusArea(root Node) (geom.Rect, error) {
	var area geom.Rect
	found := false
	_ = c.walkFocus(root, func(n Node) error {
		if !found {
			area = n.State().vp.Screen()
			found = true
		}
		return nil
	})
	if !found {
		return geom.Rect{}, ErrNoFocus
	}
	return area, nil
}

func (c *Canopy) traceFocus(op string, root Node) {
	if !logging.TraceEnabled() {
		return
	}
	events.Focus.Shift(op, c.FocusPath(root))
}

// FocusFirst focuses the first node under root, in preorder, that accepts
// focus.
func (c *Canopy) FocusFirst(root Node) (Outcome, error) {
	set := false
	_, err := Preorder(root, func(n Node) (Walk, error) {
		if set {
			return WalkSkip, nil
		}
		if canFocus(n) {
			c.SetFocus(n)
			set = true
			return WalkSkip, nil
		}
		return WalkContinue, nil
	})
	if err != nil {
		return Ignore(), err
	}
	c.traceFocus("first", root)
	return Handle(), nil
}

// FocusNext focuses the node after the current focus, in preorder, that
// accepts focus. If there is none, or nothing is focused, it falls back to
// FocusFirst.
func (c *Canopy) FocusNext(root Node) (Outcome, error) {
	set, seen := false, false
	_, err := Preorder(root, func(n Node) (Walk, error) {
		switch {
		case set:
		case seen:
			if canFocus(n) {
				c.SetFocus(n)
				set = true
			}
		case c.IsFocused(n):
			seen = true
		}
		return WalkContinue, nil
	})
	if err != nil {
		return Ignore(), err
	}
	if !set {
		return c.FocusFirst(root)
	}
	c.traceFocus("next", root)
	return Handle(), nil
}

// FocusPrev focuses the node before the current focus, in preorder, that
// accepts focus. If there is none, or nothing is focused, the last node that
// accepts focus is chosen, making it the exact reverse of FocusNext. The walk
// does not drop the first node it visits: root is a candidate like any other,
// and moving back from root wraps to the last focusable node.
func (c *Canopy) FocusPrev(root Node) (Outcome, error) {
	var prev, last Node
	seen := false
	_, err := Preorder(root, func(n Node) (Walk, error) {
		if !seen && c.IsFocused(n) {
			seen = true
		}
		if canFocus(n) {
			if !seen {
				prev = n
			}
			last = n
		}
		return WalkContinue, nil
	})
	if err != nil {
		return Ignore(), err
	}
	target := prev
	if !seen || target == nil {
		target = last
	}
	if target != nil {
		c.SetFocus(target)
	}
	c.traceFocus("prev", root)
	return Handle(), nil
}

// FocusDirection moves focus spatially. Starting from the focused node's
// screen rectangle it searches outward in dir, and focuses the first node
// that accepts focus at a searched point. Focus is unchanged if the search
// leaves root's screen rectangle first.
func (c *Canopy) FocusDirection(root Node, dir geom.Direction) (Outcome, error) {
	start, err := c.FocusArea(root)
	if errors.Is(err, ErrNoFocus) {
		return Handle(), nil
	}
	bounds := root.State().vp.Screen()
	seen := false
	err = start.Search(dir, func(p geom.Point) (bool, error) {
		if !bounds.Contains(p) {
			return true, nil
		}
		err := c.Locate(root, p, func(n Node) (Walk, error) {
			if !seen && canFocus(n) {
				c.SetFocus(n)
				seen = true
			}
			return WalkContinue, nil
		})
		return seen, err
	})
	if err != nil {
		return Ignore(), fmt.Errorf("focus %s: %w", dir, err)
	}
	c.traceFocus(dir.String(), root)
	return Handle(), nil
}

func (c *Canopy) FocusUp(root Node) (Outcome, error)    { return c.FocusDirection(root, geom.Up) }
func (c *Canopy) FocusDown(root Node) (Outcome, error)  { return c.FocusDirection(root, geom.Down) }
func (c *Canopy) FocusLeft(root Node) (Outcome, error)  { return c.FocusDirection(root, geom.Left) }
func (c *Canopy) FocusRight(root Node) (Outcome, error) { return c.FocusDirection(root, geom.Right) }
