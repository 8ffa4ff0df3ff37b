package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/commands"
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/widgets"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func scrollTree(rows int) *widgets.Scroll {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = fmt.Sprintf("line%d", i)
	}
	return widgets.NewScroll(widgets.NewText("body", strings.Join(lines, "\n")))
}

func TestHarnessRendersFixedSize(t *testing.T) {
	core := canopy.New()
	root := scrollTree(5)
	h := NewHarness(NewModel(core, root, Options{Width: 8, Height: 2}))

	want := []string{"line0   ", "line1   "}
	if diff := cmp.Diff(want, h.Lines()); diff != "" {
		t.Fatalf("unexpected screen (-want +got):\n%s", diff)
	}
	if got := ansi.Strip(h.View()); got != strings.Join(want, "\n") {
		t.Fatalf("expected view to match the buffer, got %q", got)
	}

	core.SetFocus(root)
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if got := h.Lines()[0]; got != "line1   " {
		t.Fatalf("expected key to scroll, got %q", got)
	}
	h.Send(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := h.Lines()[0]; got != "line2   " {
		t.Fatalf("expected wheel to scroll, got %q", got)
	}
}

func TestHarnessWaitsForSize(t *testing.T) {
	h := NewHarness(NewModel(canopy.New(), scrollTree(3), Options{Width: 10}))
	if h.View() != "" {
		t.Fatalf("expected nothing drawn before the size is known")
	}
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 2})
	if got := h.Model().Buffer().Size(); got != geom.NewExpanse(10, 2) {
		t.Fatalf("expected pinned width with terminal height, got %s", got)
	}
	if h.Lines()[1] != "line1     " {
		t.Fatalf("unexpected second line %q", h.Lines()[1])
	}
}

func TestHarnessExit(t *testing.T) {
	core := canopy.New()
	reg := commands.NewRegistry()
	root := widgets.NewRoot(core, scrollTree(3), reg)
	if err := reg.Load(root); err != nil {
		t.Fatalf("load: %v", err)
	}
	b := commands.NewBindings(reg)
	if err := b.Bind("ctrl+c", "", "root.quit"); err != nil {
		t.Fatalf("bind: %v", err)
	}
	core.SetKeymap(b)
	h := NewHarness(NewModel(core, root, Options{Width: 10, Height: 2}))

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if h.Quit() {
		t.Fatalf("expected unbound key to leave the program running")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !h.Quit() || h.Model().ExitCode() != 0 || h.Model().Err() != nil {
		t.Fatalf("expected clean exit, got quit=%v code=%d err=%v", h.Quit(), h.Model().ExitCode(), h.Model().Err())
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after exit")
	}
}

// failing is a node whose key handler always errors.
type failing struct {
	canopy.NodeState
}

func (*failing) AcceptFocus() bool { return true }

func (*failing) HandleKey(canopy.Context, event.Key) (canopy.Outcome, error) {
	return canopy.Ignore(), errors.New("boom")
}

func TestHarnessStopsOnError(t *testing.T) {
	core := canopy.New()
	n := &failing{}
	core.SetFocus(n)
	h := NewHarness(NewModel(core, n, Options{Width: 4, Height: 1}))
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if !h.Quit() || h.Model().Err() == nil || !strings.Contains(h.Model().Err().Error(), "boom") {
		t.Fatalf("expected error to end the program, got %v", h.Model().Err())
	}
}

// counter redraws the number of times it has been polled.
type counter struct {
	canopy.NodeState
	polls int
}

func (c *counter) Poll(canopy.Context) (time.Duration, bool) {
	c.polls++
	return time.Second, true
}

func (c *counter) Render(_ canopy.Context, r *canopy.Render) error {
	return r.Text("/", r.ViewPort().View().FirstLine(), fmt.Sprint(c.polls))
}

func TestHarnessPolls(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := t0
	core := canopy.New()
	core.SetClock(func() time.Time { return now })
	n := &counter{}
	h := NewHarness(NewModel(core, n, Options{Width: 3, Height: 1}))

	if diff := cmp.Diff([]time.Duration{time.Second}, h.Ticks()); diff != "" {
		t.Fatalf("unexpected ticks (-want +got):\n%s", diff)
	}
	if got := h.Lines()[0]; got != "0  " || n.polls != 1 {
		t.Fatalf("expected the first poll to run after the first render, got %q with %d polls", got, n.polls)
	}

	now = t0.Add(time.Second)
	h.Poll(now)
	if got := h.Lines()[0]; got != "2  " {
		t.Fatalf("expected poll to redraw, got %q", got)
	}
	if diff := cmp.Diff([]time.Duration{time.Second, time.Second}, h.Ticks()); diff != "" {
		t.Fatalf("expected poll to re-arm (-want +got):\n%s", diff)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if len(h.Ticks()) != 2 {
		t.Fatalf("expected no extra tick while one is armed, got %v", h.Ticks())
	}
}
