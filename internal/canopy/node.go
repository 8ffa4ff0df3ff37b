package canopy

import (
	"time"

	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
)

// Node is an element of the tree. Embedding NodeState provides a default for
// every method except those a widget chooses to override.
type Node interface {
	// Name is the node's debug name, used in focus paths.
	Name() string
	// State returns the node's bookkeeping block.
	State() *NodeState
	// Children calls f on each direct child in a fixed order. Traversal
	// results depend on this order, so it must not vary between calls.
	Children(f func(Node) error) error
	// AcceptFocus reports whether the node may be the focus leaf.
	AcceptFocus() bool
	// Fit returns the canvas size the node wants given a target size. It
	// must be idempotent and must not touch the node's viewport.
	Fit(target geom.Expanse) (geom.Expanse, error)
	// Layout positions the node's children. The node's own viewport has
	// already been set by its parent.
	Layout(l *Layout) error
	// Render paints the node's own content, not its children.
	Render(c Context, r *Render) error
	// Cursor optionally places the terminal cursor, in canvas coordinates.
	Cursor() (Cursor, bool)
	HandleKey(c Context, k event.Key) (Outcome, error)
	HandleMouse(c Context, m event.Mouse) (Outcome, error)
	// Poll is called when the node's poll timer fires, and once when the
	// node is first rendered. Returning true re-arms the timer.
	Poll(c Context) (time.Duration, bool)
	// ShouldRender overrides the usual taint and focus checks.
	ShouldRender(c Context) RenderHint
}

// RenderHint is a node's answer to "should I be rendered?".
type RenderHint uint8

const (
	RenderDefault RenderHint = iota
	RenderForce
	RenderSkip
)

// CursorShape is how the terminal cursor is drawn.
type CursorShape uint8

const (
	CursorBlock CursorShape = iota
	CursorLine
	CursorUnderscore
)

// Cursor is a terminal cursor request.
type Cursor struct {
	Loc   geom.Point
	Shape CursorShape
	Blink bool
}

// Context is what the core offers to handlers and render methods.
type Context interface {
	SetFocus(n Node)
	IsFocused(n Node) bool
	IsOnFocusPath(n Node) bool
	IsFocusAncestor(n Node) bool
	FocusPath(root Node) string
	FocusDepth(n Node) int
	FocusArea(root Node) (geom.Rect, error)

	FocusFirst(root Node) (Outcome, error)
	FocusNext(root Node) (Outcome, error)
	FocusPrev(root Node) (Outcome, error)
	FocusDirection(root Node, dir geom.Direction) (Outcome, error)
	FocusUp(root Node) (Outcome, error)
	FocusDown(root Node) (Outcome, error)
	FocusLeft(root Node) (Outcome, error)
	FocusRight(root Node) (Outcome, error)

	Hide(n Node)
	Unhide(n Node)
	Taint(n Node)
	TaintTree(n Node) error
	NeedsRender(n Node) bool

	Now() time.Time
	Exit(code int)
}

// ControlBackend owns the terminal session. Exit restores the terminal and
// ends the program.
type ControlBackend interface {
	Exit(code int)
}

// Keymap resolves key bindings before a key is offered to the focus path. It
// reports false when no binding matched.
type Keymap interface {
	ResolveKey(c Context, root Node, path string, k event.Key) (Outcome, bool, error)
}
