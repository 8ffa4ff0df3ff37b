package widgets

import (
	"strings"
	"testing"

	"github.com/atomicstack/canopy/internal/event"
	"github.com/google/go-cmp/cmp"
)

func TestFrameDrawsBorderAndTitle(t *testing.T) {
	f := NewFrame(NewText("body", "hello"), "t")
	s := newScreen(t, f, 12, 4)

	want := []string{
		"╭─ t ──────╮",
		"│hello     │",
		"│          │",
		"╰──────────╯",
	}
	if diff := cmp.Diff(want, s.buf.Lines()); diff != "" {
		t.Fatalf("unexpected frame (-want +got):\n%s", diff)
	}
	if !s.buf.ContainsStyled("╭", "/frame") {
		t.Fatalf("expected unfocused border style")
	}
	if !s.buf.ContainsStyled(" t ", "/frame/title") {
		t.Fatalf("expected title style")
	}
}

func TestFrameFollowsFocus(t *testing.T) {
	scroll := NewScroll(NewText("body", "hello"))
	f := NewFrame(scroll, "")
	s := newScreen(t, f, 12, 4)

	s.core.SetFocus(scroll)
	s.render()
	if !s.buf.ContainsStyled("╭──────────╮", "/frame/focused") {
		t.Fatalf("expected focused border, got\n%s", s.buf)
	}
}

func TestFrameScrollIndicator(t *testing.T) {
	text := NewText("body", strings.Repeat("x\n", 9)+"x")
	scroll := NewScroll(text)
	f := NewFrame(scroll, "")
	s := newScreen(t, f, 6, 4)

	if got := []string{s.line(1), s.line(2)}; !cmp.Equal(got, []string{"│x   ┃", "│x   │"}) {
		t.Fatalf("expected thumb at top, got %q", got)
	}

	s.core.SetFocus(scroll)
	if _, err := s.core.Key(f, event.Special(event.KeyEnd)); err != nil {
		t.Fatalf("key: %v", err)
	}
	s.render()
	if got := []string{s.line(1), s.line(2)}; !cmp.Equal(got, []string{"│x   │", "│x   ┃"}) {
		t.Fatalf("expected thumb at bottom, got %q", got)
	}
	if !s.buf.ContainsStyled("┃", "/frame/scroll") {
		t.Fatalf("expected thumb drawn in /frame/scroll")
	}
}

func TestFrameTooSmallDrawsChildOnly(t *testing.T) {
	f := NewFrame(NewText("body", "hi"), "")
	s := newScreen(t, f, 1, 1)
	if got := s.line(0); got != " " {
		t.Fatalf("expected nothing drawn, got %q", got)
	}
}
