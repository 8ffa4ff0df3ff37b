package canopy

import (
	"fmt"

	"github.com/atomicstack/canopy/internal/logging/events"
)

// sweepState is the per-sweep view of focus used by NeedsRender.
type sweepState struct {
	focusPath map[NodeID]bool
	rendered  int
	visited   int
}

// Render runs a full sweep over root and flushes the backend. When a full
// repaint is due the backend is reset after layout, so areas vacated by
// hidden or moved nodes are cleared.
func (c *Canopy) Render(b RenderBackend, root Node) error {
	if err := c.layoutTree(root); err != nil {
		return err
	}
	if c.repaint {
		if err := b.Reset(); err != nil {
			return fmt.Errorf("%w: reset: %w", ErrRender, err)
		}
	}
	if err := c.paint(b, root); err != nil {
		return err
	}
	if err := b.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrRender, err)
	}
	return nil
}

// RenderTree lays out and renders root without resetting or flushing the
// backend. Adapters that embed a second tree use it to draw into their
// parent's backend.
func (c *Canopy) RenderTree(b RenderBackend, root Node) error {
	if err := c.layoutTree(root); err != nil {
		return err
	}
	return c.paint(b, root)
}

func (c *Canopy) paint(b RenderBackend, root Node) error {
	path := map[NodeID]bool{}
	_ = c.walkFocus(root, func(n Node) error {
		path[n.State().ID()] = true
		return nil
	})
	c.sweep = &sweepState{focusPath: path}
	defer func() { c.sweep = nil }()

	c.layers.Reset()
	if err := c.renderNode(b, root); err != nil {
		return err
	}
	if err := c.placeCursor(b, root); err != nil {
		return err
	}

	events.Render.Sweep(c.renderGen, c.sweep.rendered, c.sweep.visited)
	c.renderGen++
	c.lastRenderFocusGen = c.focusGen
	c.lastFocusPath = path
	c.taint = false
	c.repaint = false
	return nil
}

// layoutTree calls Layout on every visible node in preorder, so parents
// position their children before the children lay out their own.
func (c *Canopy) layoutTree(root Node) error {
	l := &Layout{c: c}
	_, err := Preorder(root, func(n Node) (Walk, error) {
		if n.State().hidden {
			return WalkSkip, nil
		}
		if err := n.Layout(l); err != nil {
			return WalkSkip, fmt.Errorf("layout %s: %w", n.Name(), err)
		}
		return WalkContinue, nil
	})
	return err
}

// NeedsRender reports whether n is due to be painted in the current sweep.
// Outside a sweep it answers for the next one.
func (c *Canopy) NeedsRender(n Node) bool {
	switch n.ShouldRender(c) {
	case RenderForce:
		return true
	case RenderSkip:
		return false
	}
	st := n.State()
	if c.repaint || st.renderGen == 0 || st.renderGen == c.renderGen {
		return true
	}
	if !c.FocusChanged() {
		return false
	}
	id := st.ID()
	if c.lastFocusPath[id] {
		return true
	}
	if c.sweep != nil {
		return c.sweep.focusPath[id]
	}
	return c.IsOnFocusPath(n)
}

func (c *Canopy) renderNode(b RenderBackend, n Node) error {
	st := n.State()
	if st.hidden {
		return nil
	}
	c.sweep.visited++
	c.layers.Push()
	defer c.layers.Pop()

	if c.NeedsRender(n) {
		r := NewRender(b, c.styles, c.layers, st.vp)
		r.repaint = c.repaint
		if err := n.Render(c, r); err != nil {
			return fmt.Errorf("render %s: %w", n.Name(), err)
		}
		st.renderGen = c.renderGen
		c.sweep.rendered++
	}
	if !st.initialized {
		st.initialized = true
		if d, ok := n.Poll(c); ok {
			c.poller.schedule(st.ID(), c.clock().Add(d))
		}
	}
	return n.Children(func(child Node) error {
		return c.renderNode(b, child)
	})
}

// placeCursor shows the focus cursor, or hides the cursor if there is none.
func (c *Canopy) placeCursor(b RenderBackend, root Node) error {
	var err error
	if cur, ok := c.FocusCursor(root); ok {
		err = b.ShowCursor(cur)
	} else {
		err = b.HideCursor()
	}
	if err != nil {
		return fmt.Errorf("%w: cursor: %w", ErrRender, err)
	}
	return nil
}

// FocusCursor returns the cursor of the deepest node on the focus path that
// asks for one and has it in view, in screen coordinates.
func (c *Canopy) FocusCursor(root Node) (Cursor, bool) {
	var (
		cur   Cursor
		found bool
	)
	_ = c.walkFocus(root, func(n Node) error {
		if found {
			return nil
		}
		if cc, ok := n.Cursor(); ok {
			if loc, ok := n.State().vp.ProjectPoint(cc.Loc); ok {
				cc.Loc = loc
				cur, found = cc, true
			}
		}
		return nil
	})
	return cur, found
}
