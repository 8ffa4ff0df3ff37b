package widgets

import (
	"errors"
	"testing"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/widgets/state"
)

func fruitList() *List {
	return NewList("fruits", []state.Item{
		{ID: "a", Label: "apple"},
		{ID: "b", Label: "banana"},
		{ID: "c", Label: "cherry"},
	})
}

func press(t *testing.T, s *screen, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if _, err := s.core.Key(s.root, event.MustParseKey(k)); err != nil {
			t.Fatalf("key %s: %v", k, err)
		}
	}
	s.render()
}

func TestListCursorMovement(t *testing.T) {
	list := fruitList()
	s := newScreen(t, list, 12, 4)
	s.core.SetFocus(list)

	if !s.buf.ContainsStyled("  apple", "/list/selected") {
		t.Fatalf("expected first item selected, got\n%s", s.buf)
	}
	press(t, s, "down")
	if !s.buf.ContainsStyled("  banana", "/list/selected") || !s.buf.ContainsStyled("  apple", "/list/item") {
		t.Fatalf("expected cursor on banana, got\n%s", s.buf)
	}
	press(t, s, "end")
	if got := list.Model().Cursor; got != 2 {
		t.Fatalf("expected cursor at end, got %d", got)
	}
	press(t, s, "down")
	if got := list.Model().Cursor; got != 2 {
		t.Fatalf("expected cursor to stay on the last item, got %d", got)
	}
	press(t, s, "home")
	if got := list.Model().Cursor; got != 0 {
		t.Fatalf("expected cursor at start, got %d", got)
	}
}

func TestListFilter(t *testing.T) {
	list := fruitList()
	s := newScreen(t, list, 12, 4)
	s.core.SetFocus(list)
	press(t, s, "down", "c")

	if got := s.line(0); got != "/c          " {
		t.Fatalf("expected filter line, got %q", got)
	}
	if got := s.line(1); got != "  cherry    " {
		t.Fatalf("expected only cherry, got %q", got)
	}
	cur, ok := s.buf.Cursor()
	if !ok || cur.Loc != geom.NewPoint(2, 0) {
		t.Fatalf("expected cursor after the filter text, got %+v %v", cur, ok)
	}

	press(t, s, "z")
	if got := s.line(1); got != "no matches  " {
		t.Fatalf("expected empty message, got %q", got)
	}

	press(t, s, "backspace", "backspace")
	if list.Model().Filter != "" {
		t.Fatalf("expected filter cleared, got %q", list.Model().Filter)
	}
	if got := list.Model().Cursor; got != 1 {
		t.Fatalf("expected cursor restored to banana, got %d", got)
	}
	if _, ok := s.buf.Cursor(); ok {
		t.Fatalf("expected no cursor without a filter")
	}
}

func TestListEscClearsFilterOnlyWhenSet(t *testing.T) {
	list := fruitList()
	s := newScreen(t, list, 12, 4)
	s.core.SetFocus(list)

	out, err := s.core.Key(list, event.Special(event.KeyEsc))
	if err != nil {
		t.Fatalf("esc: %v", err)
	}
	if out.IsHandled() {
		t.Fatalf("expected esc without a filter to fall through")
	}
	press(t, s, "b", "esc")
	if list.Model().Filter != "" || len(list.Model().Items) != 3 {
		t.Fatalf("expected esc to clear the filter, got %q with %d items", list.Model().Filter, len(list.Model().Items))
	}
}

func TestListActivateAndToggle(t *testing.T) {
	list := fruitList()
	list.Model().MultiSelect = true
	var got []string
	list.OnActivate = func(_ canopy.Context, item state.Item) error {
		got = append(got, item.ID)
		return nil
	}
	s := newScreen(t, list, 12, 4)
	s.core.SetFocus(list)

	press(t, s, "down", "enter", "ctrl+t")
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("expected banana activated, got %v", got)
	}
	if !list.Model().IsSelected("b") {
		t.Fatalf("expected banana selected")
	}
	if line := s.line(1); line != "• banana    " {
		t.Fatalf("expected selection mark, got %q", line)
	}

	boom := errors.New("boom")
	list.OnActivate = func(canopy.Context, state.Item) error { return boom }
	if _, err := s.core.Key(list, event.Special(event.KeyEnter)); !errors.Is(err, boom) {
		t.Fatalf("expected activate error, got %v", err)
	}
}

func TestListMouse(t *testing.T) {
	list := fruitList()
	s := newScreen(t, list, 12, 4)

	if _, err := s.core.Mouse(list, event.Mouse{Action: event.MouseDown, Loc: geom.NewPoint(3, 2)}); err != nil {
		t.Fatalf("click: %v", err)
	}
	if !s.core.IsFocused(list) {
		t.Fatalf("expected click to focus the list")
	}
	if got := list.Model().Cursor; got != 2 {
		t.Fatalf("expected click to move the cursor, got %d", got)
	}
	if _, err := s.core.Mouse(list, event.Mouse{Action: event.ScrollUp, Loc: geom.NewPoint(3, 2)}); err != nil {
		t.Fatalf("wheel: %v", err)
	}
	if got := list.Model().Cursor; got != 1 {
		t.Fatalf("expected wheel to move the cursor up, got %d", got)
	}
}
