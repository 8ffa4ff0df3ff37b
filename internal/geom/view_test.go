package geom

import (
	"errors"
	"testing"
)

func mustView(t *testing.T, outer, view Rect) View {
	t.Helper()
	v, err := NewView(outer, view)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}
	return v
}

func TestNewViewRejectsEscapingView(t *testing.T) {
	if _, err := NewView(NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10)); !errors.Is(err, ErrGeometry) {
		t.Fatalf("expected geometry error, got %v", err)
	}
}

func TestViewSetInner(t *testing.T) {
	v := mustView(t, NewRect(0, 0, 100, 100), NewRect(50, 50, 10, 10))

	if err := v.SetInner(NewRect(0, 0, 190, 190)); err == nil {
		t.Fatalf("expected error for inner larger than outer")
	}
	if err := v.SetInner(NewRect(110, 110, 20, 20)); err != nil {
		t.Fatalf("set inner: %v", err)
	}
	if got := v.View(); got != NewRect(80, 80, 20, 20) {
		t.Fatalf("expected (80,80 20x20), got %s", got)
	}
}

func TestViewResizeOuter(t *testing.T) {
	v := mustView(t, NewRect(0, 0, 100, 100), NewRect(50, 50, 10, 10))

	v.ResizeOuter(NewRect(0, 0, 90, 90))
	if v.Outer() != NewRect(0, 0, 90, 90) || v.View() != NewRect(50, 50, 10, 10) {
		t.Fatalf("expected view untouched, got outer %s view %s", v.Outer(), v.View())
	}

	v.ResizeOuter(NewRect(0, 0, 50, 50))
	if got := v.View(); got != NewRect(40, 40, 10, 10) {
		t.Fatalf("expected view shifted to (40,40), got %s", got)
	}

	v.ResizeOuter(NewRect(0, 0, 50, 50))
	if got := v.View(); got != NewRect(40, 40, 10, 10) {
		t.Fatalf("expected resize to same outer to be stable, got %s", got)
	}

	v.ResizeOuter(NewRect(0, 0, 5, 5))
	if got := v.View(); got != NewRect(0, 0, 5, 5) {
		t.Fatalf("expected view to collapse to outer, got %s", got)
	}
}

func TestViewMovement(t *testing.T) {
	v := mustView(t, NewRect(0, 0, 100, 100), NewRect(0, 0, 10, 10))

	steps := []struct {
		name string
		move func()
		want Rect
	}{
		{"scroll by", func() { v.ScrollBy(10, 10) }, NewRect(10, 10, 10, 10)},
		{"scroll past origin", func() { v.ScrollBy(-20, -20) }, NewRect(0, 0, 10, 10)},
		{"page down", v.PageDown, NewRect(0, 10, 10, 10)},
		{"page up", v.PageUp, NewRect(0, 0, 10, 10)},
		{"scroll to", func() { v.ScrollTo(50, 50) }, NewRect(50, 50, 10, 10)},
		{"scroll to past end", func() { v.ScrollTo(150, 150) }, NewRect(90, 90, 10, 10)},
		{"up", v.Up, NewRect(90, 89, 10, 10)},
		{"left", v.Left, NewRect(89, 89, 10, 10)},
		{"right", v.Right, NewRect(90, 89, 10, 10)},
		{"down", v.Down, NewRect(90, 90, 10, 10)},
		{"down at end", v.Down, NewRect(90, 90, 10, 10)},
	}
	for _, step := range steps {
		step.move()
		if got := v.View(); got != step.want {
			t.Fatalf("%s: expected %s, got %s", step.name, step.want, got)
		}
	}
}

func TestViewScrollRoundTrip(t *testing.T) {
	v := mustView(t, NewRect(0, 0, 40, 200), NewRect(0, 30, 40, 10))
	start := v.View()
	for _, n := range []int16{1, 5, 17} {
		v.ScrollBy(0, n)
		v.ScrollBy(0, -n)
		if got := v.View(); got != start {
			t.Fatalf("round trip by %d: expected %s, got %s", n, start, got)
		}
	}
}

func TestViewFit(t *testing.T) {
	v := mustView(t, NewRect(0, 0, 100, 100), NewRect(30, 40, 10, 10))

	v.Fit(NewRect(0, 0, 100, 100), NewExpanse(20, 5))
	if got := v.View(); got != NewRect(30, 40, 20, 5) {
		t.Fatalf("expected position kept, got %s", got)
	}

	v.Fit(NewRect(0, 0, 40, 200), NewExpanse(80, 50))
	if got := v.View(); got != NewRect(0, 40, 40, 50) {
		t.Fatalf("expected size capped at outer, got %s", got)
	}
}
