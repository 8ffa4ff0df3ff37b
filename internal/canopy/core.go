package canopy

import (
	"time"

	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/logging/events"
	"github.com/atomicstack/canopy/internal/theme"
)

// Canopy holds the generation counters, taint flag, poll schedule and
// collaborators for one node tree.
type Canopy struct {
	// focusGen is bumped on every focus change; the focused node carries the
	// current value.
	focusGen           uint64
	lastRenderFocusGen uint64
	// renderGen identifies the next render sweep. Tainted nodes carry it.
	renderGen uint64
	taint     bool
	// repaint forces every node to render on the next sweep.
	repaint bool

	lastFocusPath map[NodeID]bool
	sweep         *sweepState

	poller  *poller
	clock   func() time.Time
	control ControlBackend
	keymap  Keymap
	styles  *theme.StyleMap
	layers  *theme.Manager

	exited   bool
	exitCode int
}

// New returns a core with fresh counters and the default theme.
func New() *Canopy {
	c := &Canopy{
		styles: theme.Default(),
		layers: theme.NewManager(),
		clock:  time.Now,
	}
	c.Reset()
	return c
}

// Reset restores the initial counters and clears the poll schedule. Nodes
// keep their own state, so a reset core should be paired with a fresh tree.
func (c *Canopy) Reset() {
	c.focusGen = 1
	c.lastRenderFocusGen = 1
	c.renderGen = 1
	c.taint = false
	c.repaint = true
	c.lastFocusPath = map[NodeID]bool{}
	c.sweep = nil
	c.poller = newPoller()
	c.layers.Reset()
	c.exited = false
	c.exitCode = 0
}

// SetControl installs the backend that handles Exit.
func (c *Canopy) SetControl(b ControlBackend) {
	c.control = b
}

// SetKeymap installs the binding table consulted before key dispatch.
func (c *Canopy) SetKeymap(k Keymap) {
	c.keymap = k
}

// SetStyles replaces the style map used when rendering.
func (c *Canopy) SetStyles(m *theme.StyleMap) {
	c.styles = m
	c.repaint = true
}

// Styles returns the style map used when rendering.
func (c *Canopy) Styles() *theme.StyleMap {
	return c.styles
}

// SetClock replaces the time source used for poll scheduling.
func (c *Canopy) SetClock(clock func() time.Time) {
	c.clock = clock
}

// Now reads the core's clock.
func (c *Canopy) Now() time.Time {
	return c.clock()
}

// Tainted reports whether anything changed since the last render sweep.
func (c *Canopy) Tainted() bool {
	return c.taint || c.repaint
}

// ForceRepaint makes the next sweep clear the backend and render every node.
func (c *Canopy) ForceRepaint() {
	c.repaint = true
}

// FocusChanged reports whether focus moved since the last render sweep.
func (c *Canopy) FocusChanged() bool {
	return c.focusGen != c.lastRenderFocusGen
}

// Exit asks the control backend to end the program. Without a backend the
// request is only recorded.
func (c *Canopy) Exit(code int) {
	c.exited = true
	c.exitCode = code
	events.App.Exit(code)
	if c.control != nil {
		c.control.Exit(code)
	}
}

// Exited reports whether Exit has been called, and with which code.
func (c *Canopy) Exited() (int, bool) {
	return c.exitCode, c.exited
}

// SetRootSize fits root to the terminal size and schedules a full repaint.
func (c *Canopy) SetRootSize(size geom.Expanse, root Node) error {
	fit, err := root.Fit(size)
	if err != nil {
		return err
	}
	vp := root.State().ViewPort()
	vp.Update(fit, size.Rect())
	c.repaint = true
	return nil
}

// PlaceRoot fits root to the view of vp and places it on vp's screen
// rectangle. It is used when root is drawn inside another tree, so root's
// screen does not start at the origin.
func (c *Canopy) PlaceRoot(root Node, vp ViewPort) error {
	l := &Layout{c: c}
	return l.Wrap(root, vp)
}

// Hide takes n out of focus traversal and stops its subtree being laid out
// or rendered. Its descendants stay focusable unless hidden too. Everything
// is repainted on the next sweep so the area n covered is redrawn.
func (c *Canopy) Hide(n Node) {
	st := n.State()
	if !st.hidden {
		st.hidden = true
		c.repaint = true
	}
}

// Unhide reverses Hide.
func (c *Canopy) Unhide(n Node) {
	st := n.State()
	if st.hidden {
		st.hidden = false
		c.repaint = true
	}
}

// Taint marks n for rendering in the next sweep.
func (c *Canopy) Taint(n Node) {
	n.State().renderGen = c.renderGen
	c.taint = true
}

// TaintTree marks n and all of its descendants for rendering.
func (c *Canopy) TaintTree(n Node) error {
	_, err := Preorder(n, func(x Node) (Void, error) {
		c.Taint(x)
		return Void{}, nil
	})
	return err
}

// IsTainted reports whether n was tainted since the last sweep.
func (c *Canopy) IsTainted(n Node) bool {
	return n.State().renderGen == c.renderGen
}
