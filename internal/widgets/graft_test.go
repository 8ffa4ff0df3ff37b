package widgets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/commands"
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/logging"
)

func TestGraftRendersInnerTreeInPlace(t *testing.T) {
	inner := NewPanes(pane("left"))
	graft := NewGraft(inner)
	outer := NewPanes(pane("outer"))
	s := newScreen(t, outer, 40, 4)
	if err := outer.InsertCol(s.core, graft); err != nil {
		t.Fatalf("insert col: %v", err)
	}
	s.render()

	if got := inner.ViewPort().Screen(); got != geom.NewRect(20, 0, 20, 4) {
		t.Fatalf("expected inner root on the graft's screen area, got %s", got)
	}
	if got := s.line(0); got != "outer               left                " {
		t.Fatalf("unexpected line %q", got)
	}
	if !s.core.IsFocused(graft) {
		t.Fatalf("expected graft focused in the outer tree")
	}
}

func TestGraftForwardsInput(t *testing.T) {
	var lines string
	for i := 0; i < 6; i++ {
		lines += "r" + string(rune('0'+i)) + "\n"
	}
	leaf := NewScroll(NewText("body", lines))
	graft := NewGraft(leaf)
	s := newScreen(t, graft, 10, 2)

	if _, err := graft.Core().FocusFirst(leaf); err != nil {
		t.Fatalf("inner focus: %v", err)
	}
	s.core.SetFocus(graft)

	out, err := s.core.Key(graft, event.Special(event.KeyDown))
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if !out.IsHandled() {
		t.Fatalf("expected inner tree to handle the key")
	}
	s.render()
	if got := s.line(0); got != "r1        " {
		t.Fatalf("expected inner view scrolled, got %q", got)
	}
	if s.core.FocusPath(graft) != "/graft" || graft.Core().FocusPath(leaf) != "/scroll" {
		t.Fatalf("expected independent focus paths, got %s and %s", s.core.FocusPath(graft), graft.Core().FocusPath(leaf))
	}

	if _, err := s.core.Mouse(graft, event.Mouse{Action: event.ScrollDown, Loc: geom.NewPoint(3, 1)}); err != nil {
		t.Fatalf("mouse: %v", err)
	}
	s.render()
	if got := s.line(0); got != "r2        " {
		t.Fatalf("expected wheel forwarded, got %q", got)
	}
}

func TestGraftForwardsExit(t *testing.T) {
	reg := commands.NewRegistry()
	root := NewRoot(nil, pane("app"), reg)
	if err := reg.Load(root); err != nil {
		t.Fatalf("load: %v", err)
	}
	b := commands.NewBindings(reg)
	if err := b.Bind("ctrl+c", "", "root.quit"); err != nil {
		t.Fatalf("bind: %v", err)
	}
	graft := NewGraft(root)
	graft.Core().SetKeymap(b)
	s := newScreen(t, graft, 10, 2)
	s.core.SetFocus(graft)

	if _, err := s.core.Key(graft, event.Ctrl('c')); err != nil {
		t.Fatalf("key: %v", err)
	}
	if code, exited := s.core.Exited(); !exited || code != 0 {
		t.Fatalf("expected exit forwarded to the outer core, got code=%d exited=%v", code, exited)
	}
}

var errTorn = errors.New("tree torn")

// brittle polls every second and fails to list its children once broken.
type brittle struct {
	canopy.NodeState
	broken bool
}

func (b *brittle) Children(func(canopy.Node) error) error {
	if b.broken {
		return errTorn
	}
	return nil
}

func (b *brittle) Poll(canopy.Context) (time.Duration, bool) {
	return time.Second, true
}

func TestGraftPollErrorFailsRender(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "canopy.log")
	logging.Configure(logFile)
	t.Cleanup(func() { logging.Configure("") })

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	inner := &brittle{}
	inner.SetName("brittle")
	graft := NewGraft(inner)
	graft.Core().SetClock(func() time.Time { return now })
	s := newScreen(t, graft, 10, 2)

	inner.broken = true
	now = now.Add(time.Second)
	if _, ok := graft.Poll(s.core); ok {
		t.Fatalf("expected polling to stop after an inner error")
	}
	err := s.core.Render(s.buf, graft)
	if !errors.Is(err, errTorn) {
		t.Fatalf("expected inner poll error from render, got %v", err)
	}
	data, rerr := os.ReadFile(logFile)
	if rerr != nil {
		t.Fatalf("read log: %v", rerr)
	}
	if !strings.Contains(string(data), "tree torn") {
		t.Fatalf("expected inner poll error logged, got %q", data)
	}
}
