package canopy

import (
	"fmt"

	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/logging"
	"github.com/atomicstack/canopy/internal/logging/events"
)

// Key delivers k to the focus path, from the focus leaf up towards root. The
// first outcome that skips ends the walk. If nothing under root is focused,
// root alone sees the key. A key binding that matches takes precedence over
// the focus path.
func (c *Canopy) Key(root Node, k event.Key) (Outcome, error) {
	out, err := c.key(root, k)
	if err != nil {
		return out, err
	}
	if out.IsHandled() {
		c.taint = true
	}
	if logging.TraceEnabled() {
		events.Dispatch.Key(k.String(), c.FocusPath(root), out.IsHandled())
	}
	return out, nil
}

func (c *Canopy) key(root Node, k event.Key) (Outcome, error) {
	if c.keymap != nil {
		out, ok, err := c.keymap.ResolveKey(c, root, c.FocusPath(root), k)
		if err != nil {
			return Ignore(), err
		}
		if ok {
			return out, nil
		}
	}

	out := Ignore()
	delivered := false
	deliver := func(n Node) error {
		if out.Skip() {
			return nil
		}
		delivered = true
		o, err := n.HandleKey(c, k)
		if err != nil {
			return fmt.Errorf("key %s on %s: %w", k, n.Name(), err)
		}
		if o.IsHandled() {
			c.Taint(n)
		}
		out = out.Join(o)
		return nil
	}
	if err := c.walkFocus(root, deliver); err != nil {
		return out, err
	}
	if !delivered {
		if err := deliver(root); err != nil {
			return out, err
		}
	}
	return out, nil
}

// Mouse delivers m to the deepest visible node under the pointer and then to
// its ancestors, until an outcome skips. Each node sees the location in its
// own canvas coordinates; a node whose view does not cover the location is
// passed over.
func (c *Canopy) Mouse(root Node, m event.Mouse) (Outcome, error) {
	out := Ignore()
	err := c.Locate(root, m.Loc, func(n Node) (Walk, error) {
		local := m
		p, ok := n.State().vp.Unproject(m.Loc)
		if !ok {
			return WalkContinue, nil
		}
		local.Loc = p
		o, err := n.HandleMouse(c, local)
		if err != nil {
			return WalkSkip, fmt.Errorf("mouse %s on %s: %w", m.Action, n.Name(), err)
		}
		if o.IsHandled() {
			c.Taint(n)
		}
		out = out.Join(o)
		if out.Skip() {
			return WalkSkip, nil
		}
		return WalkContinue, nil
	})
	if err != nil {
		return out, err
	}
	if out.IsHandled() {
		c.taint = true
	}
	events.Dispatch.Mouse(m.Action.String(), int(m.Loc.X), int(m.Loc.Y), out.IsHandled())
	return out, nil
}

// Event dispatches any input event. Resize refits root; Tick runs due poll
// callbacks.
func (c *Canopy) Event(root Node, e event.Event) (Outcome, error) {
	switch e := e.(type) {
	case event.Key:
		return c.Key(root, e)
	case event.Mouse:
		return c.Mouse(root, e)
	case event.Resize:
		events.App.Resize(int(e.Size.W), int(e.Size.H))
		if err := c.SetRootSize(e.Size, root); err != nil {
			return Ignore(), err
		}
		return Handle(), nil
	case event.Tick:
		at := e.At
		if at.IsZero() {
			at = c.clock()
		}
		if err := c.Poll(root, at); err != nil {
			return Ignore(), err
		}
		return Ignore(), nil
	}
	return Ignore(), fmt.Errorf("unknown event %T", e)
}

// Pump dispatches each event from in until the channel closes, rendering
// after every event that changed something. It is the runloop for hosts that
// read events on a separate goroutine.
func (c *Canopy) Pump(b RenderBackend, root Node, in <-chan event.Event) error {
	if err := c.Render(b, root); err != nil {
		return err
	}
	for e := range in {
		if _, err := c.Event(root, e); err != nil {
			return err
		}
		if _, exited := c.Exited(); exited {
			return nil
		}
		if c.Tainted() || c.FocusChanged() {
			if err := c.Render(b, root); err != nil {
				return err
			}
		}
	}
	return nil
}
