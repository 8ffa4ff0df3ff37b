package canopy

import (
	"testing"

	"github.com/atomicstack/canopy/internal/geom"
	"github.com/google/go-cmp/cmp"
)

func focusSequence(t *testing.T, c *Canopy, root Node, n int, shift func(Node) (Outcome, error)) []string {
	t.Helper()
	var out []string
	for i := 0; i < n; i++ {
		o, err := shift(root)
		if err != nil {
			t.Fatalf("shift %d: %v", i, err)
		}
		if !o.IsHandled() {
			t.Fatalf("shift %d: expected handled outcome, got %s", i, o)
		}
		out = append(out, c.FocusPath(root))
	}
	return out
}

func TestFocusPath(t *testing.T) {
	c := New()
	tree := newTestTree()
	if got := c.FocusPath(tree.r); got != "/" {
		t.Fatalf("expected / when unfocused, got %q", got)
	}
	c.SetFocus(tree.baLa)
	if got := c.FocusPath(tree.r); got != "/r/ba/ba_la" {
		t.Fatalf("expected /r/ba/ba_la, got %q", got)
	}
	c.SetFocus(tree.bb)
	if got := c.FocusPath(tree.r); got != "/r/bb" {
		t.Fatalf("expected /r/bb, got %q", got)
	}
	if got := c.FocusPath(tree.ba); got != "/" {
		t.Fatalf("expected / for unfocused subtree, got %q", got)
	}
}

func TestFocusQueries(t *testing.T) {
	c := New()
	tree := newTestTree()
	c.SetFocus(tree.baLb)

	if !c.IsFocused(tree.baLb) || c.IsFocused(tree.ba) {
		t.Fatalf("expected only ba_lb to be focused")
	}
	for _, n := range []*tnode{tree.baLb, tree.ba, tree.r} {
		if !c.IsOnFocusPath(n) {
			t.Fatalf("expected %s on focus path", n.Name())
		}
	}
	for _, n := range []*tnode{tree.baLa, tree.bb, tree.bbLa} {
		if c.IsOnFocusPath(n) {
			t.Fatalf("expected %s off focus path", n.Name())
		}
	}
	if c.IsFocusAncestor(tree.baLb) || !c.IsFocusAncestor(tree.ba) || !c.IsFocusAncestor(tree.r) {
		t.Fatalf("unexpected focus ancestry")
	}
	depths := map[string]int{"ba_lb": 1, "ba": 2, "r": 3, "bb": 0}
	for _, n := range []*tnode{tree.baLb, tree.ba, tree.r, tree.bb} {
		if got := c.FocusDepth(n); got != depths[n.Name()] {
			t.Fatalf("focus depth of %s: expected %d, got %d", n.Name(), depths[n.Name()], got)
		}
	}
}

func TestFocusFirst(t *testing.T) {
	c := New()
	tree := newTestTree()
	if _, err := c.FocusFirst(tree.r); err != nil {
		t.Fatalf("focus first: %v", err)
	}
	if got := c.FocusPath(tree.r); got != "/r" {
		t.Fatalf("expected /r, got %q", got)
	}
	tree.r.hidden = true
	tree.ba.hidden = true
	if _, err := c.FocusFirst(tree.r); err != nil {
		t.Fatalf("focus first: %v", err)
	}
	if !c.IsFocused(tree.baLa) {
		t.Fatalf("expected ba_la to take focus past hidden nodes, path %q", c.FocusPath(tree.r))
	}
}

func TestFocusNext(t *testing.T) {
	c := New()
	tree := newTestTree()
	got := focusSequence(t, c, tree.r, 8, c.FocusNext)
	want := []string{
		"/r",
		"/r/ba",
		"/r/ba/ba_la",
		"/r/ba/ba_lb",
		"/r/bb",
		"/r/bb/bb_la",
		"/r/bb/bb_lb",
		"/r",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected next sequence (-want +got):\n%s", diff)
	}
}

func TestFocusPrev(t *testing.T) {
	c := New()
	tree := newTestTree()
	got := focusSequence(t, c, tree.r, 8, c.FocusPrev)
	want := []string{
		"/r/bb/bb_lb",
		"/r/bb/bb_la",
		"/r/bb",
		"/r/ba/ba_lb",
		"/r/ba/ba_la",
		"/r/ba",
		"/r",
		"/r/bb/bb_lb",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected prev sequence (-want +got):\n%s", diff)
	}
}

func TestFocusPrevReachesRootThenWraps(t *testing.T) {
	c := New()
	tree := newTestTree()
	c.SetFocus(tree.ba)
	if _, err := c.FocusPrev(tree.r); err != nil {
		t.Fatalf("prev: %v", err)
	}
	if !c.IsFocused(tree.r) {
		t.Fatalf("expected root focused, got %s", c.FocusPath(tree.r))
	}
	if _, err := c.FocusPrev(tree.r); err != nil {
		t.Fatalf("prev: %v", err)
	}
	if got := c.FocusPath(tree.r); got != "/r/bb/bb_lb" {
		t.Fatalf("expected wrap to /r/bb/bb_lb, got %s", got)
	}
}

func TestFocusPrevReversesNext(t *testing.T) {
	c := New()
	tree := newTestTree()
	for _, n := range tree.all() {
		c.SetFocus(n)
		if _, err := c.FocusNext(tree.r); err != nil {
			t.Fatalf("next: %v", err)
		}
		if _, err := c.FocusPrev(tree.r); err != nil {
			t.Fatalf("prev: %v", err)
		}
		if !c.IsFocused(n) {
			t.Fatalf("next then prev from %s landed on %s", n.Name(), c.FocusPath(tree.r))
		}
	}
}

func TestFocusNextSkipsHidden(t *testing.T) {
	c := New()
	tree := newTestTree()
	tree.ba.hidden = true
	tree.bbLa.hidden = true
	got := focusSequence(t, c, tree.r, 6, c.FocusNext)
	want := []string{
		"/r",
		"/r/ba/ba_la",
		"/r/ba/ba_lb",
		"/r/bb",
		"/r/bb/bb_lb",
		"/r",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected next sequence (-want +got):\n%s", diff)
	}
}

func TestFocusDirection(t *testing.T) {
	c := New()
	tree := newTestTree()
	if _, err := tree.layout(c); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if got := tree.baLb.vp.Screen(); got != geom.NewRect(0, 50, 50, 50) {
		t.Fatalf("unexpected ba_lb screen %s", got)
	}

	steps := []struct {
		start *tnode
		move  func(Node) (Outcome, error)
		want  string
	}{
		{tree.baLa, c.FocusRight, "/r/bb/bb_la"},
		{tree.bbLa, c.FocusRight, "/r/bb/bb_la"},
		{tree.baLb, c.FocusRight, "/r/bb/bb_lb"},
		{tree.baLa, c.FocusDown, "/r/ba/ba_lb"},
		{tree.bbLb, c.FocusLeft, "/r/ba/ba_lb"},
		{tree.bbLb, c.FocusUp, "/r/bb/bb_la"},
		{tree.baLa, c.FocusUp, "/r/ba/ba_la"},
	}
	for _, step := range steps {
		c.SetFocus(step.start)
		if _, err := step.move(tree.r); err != nil {
			t.Fatalf("move from %s: %v", step.start.Name(), err)
		}
		if got := c.FocusPath(tree.r); got != step.want {
			t.Fatalf("move from %s: expected %q, got %q", step.start.Name(), step.want, got)
		}
	}
}

func TestFocusDirectionWithoutFocus(t *testing.T) {
	c := New()
	tree := newTestTree()
	if _, err := tree.layout(c); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if _, err := c.FocusRight(tree.r); err != nil {
		t.Fatalf("focus right: %v", err)
	}
	if got := c.FocusPath(tree.r); got != "/" {
		t.Fatalf("expected focus unchanged, got %q", got)
	}
	if _, err := c.FocusArea(tree.r); err != ErrNoFocus {
		t.Fatalf("expected ErrNoFocus, got %v", err)
	}
}
