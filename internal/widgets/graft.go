package widgets

import (
	"fmt"
	"time"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/logging"
)

// graftRearm is how often a graft with no pending inner polls checks again.
const graftRearm = time.Second

// Graft embeds an independent tree, with its own core, inside a parent tree.
// The inner tree has its own focus and render generations; the graft
// forwards input to it and draws it into the parent's backend.
type Graft struct {
	canopy.NodeState
	core *canopy.Canopy
	root canopy.Node
	err  error
}

// NewGraft wraps root in a fresh core. The inner core picks up the parent's
// style map when first rendered.
func NewGraft(root canopy.Node) *Graft {
	g := &Graft{core: canopy.New(), root: root}
	g.SetName("graft")
	return g
}

// Core returns the inner core.
func (g *Graft) Core() *canopy.Canopy {
	return g.core
}

// Root returns the inner root.
func (g *Graft) Root() canopy.Node {
	return g.root
}

func (g *Graft) AcceptFocus() bool { return true }

func (g *Graft) Fit(target geom.Expanse) (geom.Expanse, error) {
	return g.root.Fit(target)
}

func (g *Graft) Layout(*canopy.Layout) error {
	return g.core.PlaceRoot(g.root, *g.ViewPort())
}

// ShouldRender always hands control to the inner core, which decides which
// inner nodes need drawing.
func (g *Graft) ShouldRender(canopy.Context) canopy.RenderHint {
	return canopy.RenderForce
}

func (g *Graft) Render(_ canopy.Context, r *canopy.Render) error {
	if g.err != nil {
		return g.err
	}
	if g.core.Styles() != r.Styles() {
		g.core.SetStyles(r.Styles())
	}
	if r.Repaint() {
		g.core.ForceRepaint()
	}
	return g.core.RenderTree(r.Backend(), g.root)
}

func (g *Graft) Cursor() (canopy.Cursor, bool) {
	cur, ok := g.core.FocusCursor(g.root)
	if !ok {
		return canopy.Cursor{}, false
	}
	loc, ok := g.ViewPort().Unproject(cur.Loc)
	if !ok {
		return canopy.Cursor{}, false
	}
	cur.Loc = loc
	return cur, true
}

func (g *Graft) HandleKey(c canopy.Context, k event.Key) (canopy.Outcome, error) {
	out, err := g.core.Key(g.root, k)
	if err != nil {
		return canopy.Ignore(), err
	}
	g.forwardExit(c)
	return out, nil
}

// HandleMouse converts the location back to the screen coordinates the
// inner tree works in.
func (g *Graft) HandleMouse(c canopy.Context, m event.Mouse) (canopy.Outcome, error) {
	loc, ok := g.ViewPort().ProjectPoint(m.Loc)
	if !ok {
		return canopy.Ignore(), nil
	}
	m.Loc = loc
	out, err := g.core.Mouse(g.root, m)
	if err != nil {
		return canopy.Ignore(), err
	}
	g.forwardExit(c)
	return out, nil
}

// Poll runs the inner tree's due polls and re-arms for the next one. A
// failed inner poll is logged, stops polling and fails the next render.
func (g *Graft) Poll(canopy.Context) (time.Duration, bool) {
	now := g.core.Now()
	if err := g.core.Poll(g.root, now); err != nil {
		g.err = fmt.Errorf("graft: %w", err)
		logging.Error(g.err)
		return 0, false
	}
	if d, ok := g.core.PollDelay(now); ok {
		return d, true
	}
	return graftRearm, true
}

func (g *Graft) forwardExit(c canopy.Context) {
	if code, ok := g.core.Exited(); ok {
		c.Exit(code)
	}
}
