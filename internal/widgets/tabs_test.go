package widgets

import (
	"errors"
	"testing"

	"github.com/atomicstack/canopy/internal/commands"
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
)

func TestTabsRender(t *testing.T) {
	tabs := NewTabs("One", "Two")
	s := newScreen(t, tabs, 10, 1)

	if got := s.line(0); got != " One  Two " {
		t.Fatalf("unexpected strip %q", got)
	}
	if !s.buf.ContainsStyled(" One", "/tab/active") || !s.buf.ContainsStyled(" Two", "/tab/inactive") {
		t.Fatalf("expected first tab active")
	}

	if _, err := tabs.Dispatch(s.core, "next"); err != nil {
		t.Fatalf("next: %v", err)
	}
	s.core.Taint(tabs)
	s.render()
	if !s.buf.ContainsStyled(" Two", "/tab/active") || !s.buf.ContainsStyled(" One", "/tab/inactive") {
		t.Fatalf("expected second tab active")
	}
}

func TestTabsWrapAndClick(t *testing.T) {
	tabs := NewTabs("a", "b", "c")
	s := newScreen(t, tabs, 9, 1)

	tabs.Prev()
	if tabs.Active() != 2 {
		t.Fatalf("expected prev to wrap to the last tab, got %d", tabs.Active())
	}
	tabs.Next()
	if tabs.Active() != 0 {
		t.Fatalf("expected next to wrap to the first tab, got %d", tabs.Active())
	}

	out, err := s.core.Mouse(tabs, event.Mouse{Action: event.MouseDown, Loc: geom.NewPoint(4, 0)})
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if !out.IsHandled() || tabs.Active() != 1 {
		t.Fatalf("expected click to select the middle tab, got %d", tabs.Active())
	}

	if _, err := tabs.Dispatch(s.core, "close"); !errors.Is(err, commands.ErrUnknownCommand) {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
