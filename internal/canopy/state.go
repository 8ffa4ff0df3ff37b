package canopy

import (
	"sync/atomic"
	"time"

	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
)

// NodeID is a process-unique node identity.
type NodeID uint64

var lastNodeID atomic.Uint64

// NodeState is the bookkeeping every node carries. Widgets embed it by value;
// its methods supply the default Node behaviour so a widget only implements
// what it needs.
type NodeState struct {
	id          NodeID
	name        string
	focusGen    uint64
	renderGen   uint64
	hidden      bool
	initialized bool
	vp          ViewPort
}

// ID returns the node's identity, assigning one on first use.
func (s *NodeState) ID() NodeID {
	if s.id == 0 {
		s.id = NodeID(lastNodeID.Add(1))
	}
	return s.id
}

// SetName sets the debug name used in focus paths.
func (s *NodeState) SetName(name string) {
	s.name = name
}

// Hidden reports whether the node is excluded from focus and rendering.
func (s *NodeState) Hidden() bool {
	return s.hidden
}

// ViewPort returns a pointer to the node's viewport so handlers can scroll it.
func (s *NodeState) ViewPort() *ViewPort {
	return &s.vp
}

func (s *NodeState) State() *NodeState { return s }

func (s *NodeState) Name() string { return s.name }

func (s *NodeState) Children(func(Node) error) error { return nil }

func (s *NodeState) AcceptFocus() bool { return false }

func (s *NodeState) Fit(target geom.Expanse) (geom.Expanse, error) { return target, nil }

func (s *NodeState) Layout(*Layout) error { return nil }

func (s *NodeState) Render(Context, *Render) error { return nil }

func (s *NodeState) Cursor() (Cursor, bool) { return Cursor{}, false }

func (s *NodeState) HandleKey(Context, event.Key) (Outcome, error) { return Ignore(), nil }

func (s *NodeState) HandleMouse(Context, event.Mouse) (Outcome, error) { return Ignore(), nil }

func (s *NodeState) Poll(Context) (time.Duration, bool) { return 0, false }

func (s *NodeState) ShouldRender(Context) RenderHint { return RenderDefault }
