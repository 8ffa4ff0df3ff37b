package canopy

import (
	"fmt"
	"time"

	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
)

// tnode is a configurable test node. Containers split their screen among
// their children: across (columns) or down (rows).
type tnode struct {
	NodeState
	children []*tnode
	across   bool
	log      *[]string

	next      *Outcome
	renders   int
	hint      RenderHint
	cursor    *Cursor
	pollEvery time.Duration
	polls     int
}

func (n *tnode) Children(f func(Node) error) error {
	for _, child := range n.children {
		if err := f(child); err != nil {
			return err
		}
	}
	return nil
}

func (n *tnode) AcceptFocus() bool { return true }

func (n *tnode) Layout(l *Layout) error {
	if len(n.children) == 0 {
		return nil
	}
	screen := n.vp.Screen()
	var (
		parts []geom.Rect
		err   error
	)
	if n.across {
		parts, err = screen.SplitHorizontal(uint16(len(n.children)))
	} else {
		parts, err = screen.SplitVertical(uint16(len(n.children)))
	}
	if err != nil {
		return err
	}
	for i, child := range n.children {
		if err := l.Place(child, parts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (n *tnode) Render(c Context, r *Render) error {
	n.renders++
	return r.Text("text", r.ViewPort().View().FirstLine(), "<"+n.Name()+">")
}

func (n *tnode) Cursor() (Cursor, bool) {
	if n.cursor == nil {
		return Cursor{}, false
	}
	return *n.cursor, true
}

func (n *tnode) outcome() Outcome {
	if n.next == nil {
		return Ignore()
	}
	o := *n.next
	n.next = nil
	return o
}

func (n *tnode) record(evt string, o Outcome) {
	if n.log == nil {
		return
	}
	result := "ignore"
	if o.IsHandled() {
		result = "handle"
	}
	*n.log = append(*n.log, fmt.Sprintf("%s@%s->%s", n.Name(), evt, result))
}

func (n *tnode) HandleKey(c Context, k event.Key) (Outcome, error) {
	o := n.outcome()
	n.record("key", o)
	return o, nil
}

func (n *tnode) HandleMouse(c Context, m event.Mouse) (Outcome, error) {
	o := n.outcome()
	n.record(fmt.Sprintf("mouse%s", m.Loc), o)
	return o, nil
}

func (n *tnode) Poll(c Context) (time.Duration, bool) {
	if n.pollEvery == 0 {
		return 0, false
	}
	n.polls++
	return n.pollEvery, true
}

func (n *tnode) ShouldRender(c Context) RenderHint { return n.hint }

func newNode(name string, log *[]string, children ...*tnode) *tnode {
	n := &tnode{children: children, log: log}
	n.SetName(name)
	return n
}

// testTree is root "r" split into columns "ba" and "bb", each split into
// rows "<branch>_la" and "<branch>_lb". Every node accepts focus.
type testTree struct {
	log                    []string
	r, ba, bb              *tnode
	baLa, baLb, bbLa, bbLb *tnode
}

func newTestTree() *testTree {
	t := &testTree{}
	t.baLa = newNode("ba_la", &t.log)
	t.baLb = newNode("ba_lb", &t.log)
	t.bbLa = newNode("bb_la", &t.log)
	t.bbLb = newNode("bb_lb", &t.log)
	t.ba = newNode("ba", &t.log, t.baLa, t.baLb)
	t.bb = newNode("bb", &t.log, t.bbLa, t.bbLb)
	t.r = newNode("r", &t.log, t.ba, t.bb)
	t.r.across = true
	return t
}

func (t *testTree) all() []*tnode {
	return []*tnode{t.r, t.ba, t.baLa, t.baLb, t.bb, t.bbLa, t.bbLb}
}

func (t *testTree) renders() map[string]int {
	out := map[string]int{}
	for _, n := range t.all() {
		out[n.Name()] = n.renders
	}
	return out
}

// layout sizes the tree to 100x100 and renders it once.
func (t *testTree) layout(c *Canopy) (*TermBuf, error) {
	size := geom.NewExpanse(100, 100)
	if err := c.SetRootSize(size, t.r); err != nil {
		return nil, err
	}
	buf := NewTermBuf(size)
	return buf, c.Render(buf, t.r)
}

func names(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}
