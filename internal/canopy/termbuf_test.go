package canopy

import (
	"testing"

	"github.com/atomicstack/canopy/internal/geom"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func TestTermBufTextClipsAtEdge(t *testing.T) {
	b := NewTermBuf(geom.NewExpanse(5, 2))
	_ = b.Style("/text", lipgloss.NewStyle())
	_ = b.Text(geom.NewPoint(2, 0), "abcdef")
	_ = b.Text(geom.NewPoint(0, 5), "ignored")

	want := []string{"  abc", "     "}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
	if text, style := b.Cell(geom.NewPoint(2, 0)); text != "a" || style != "/text" {
		t.Fatalf("expected a in /text, got %q in %q", text, style)
	}
	if text, style := b.Cell(geom.NewPoint(0, 0)); text != " " || style != "/" {
		t.Fatalf("expected blank root cell, got %q in %q", text, style)
	}
}

func TestTermBufWideRunes(t *testing.T) {
	b := NewTermBuf(geom.NewExpanse(5, 1))
	_ = b.Text(geom.NewPoint(0, 0), "日本語")
	if got := b.Lines()[0]; got != "日本 " {
		t.Fatalf("expected wide rune that does not fit to become a space, got %q", got)
	}
	if !b.Contains("日本") {
		t.Fatalf("expected buffer to contain wide text")
	}
}

func TestTermBufFillAndReset(t *testing.T) {
	b := NewTermBuf(geom.NewExpanse(4, 3))
	_ = b.Style("/frame", lipgloss.NewStyle())
	_ = b.Fill(geom.NewRect(1, 1, 10, 10), '#')

	want := []string{"    ", " ###", " ###"}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
	if !b.ContainsStyled("###", "/frame") {
		t.Fatalf("expected fill drawn in /frame")
	}

	_ = b.Reset()
	if b.Contains("#") {
		t.Fatalf("expected reset to blank the buffer, got\n%s", b)
	}
}

func TestTermBufContainsStyled(t *testing.T) {
	b := NewTermBuf(geom.NewExpanse(10, 1))
	_ = b.Style("/a", lipgloss.NewStyle())
	_ = b.Text(geom.NewPoint(0, 0), "foo")
	_ = b.Style("/b", lipgloss.NewStyle())
	_ = b.Text(geom.NewPoint(3, 0), "bar")

	cases := []struct {
		text, style string
		want        bool
	}{
		{"foo", "/a", true},
		{"bar", "/b", true},
		{"foobar", "/a", false},
		{"bar", "/a", false},
		{"oba", "/b", false},
		{"", "/a", true},
	}
	for _, tc := range cases {
		if got := b.ContainsStyled(tc.text, tc.style); got != tc.want {
			t.Fatalf("ContainsStyled(%q, %q): expected %v, got %v", tc.text, tc.style, tc.want, got)
		}
	}
}

func TestTermBufStyledMatchesText(t *testing.T) {
	b := NewTermBuf(geom.NewExpanse(6, 2))
	_ = b.Style("/text", lipgloss.NewStyle().Bold(true))
	_ = b.Text(geom.NewPoint(1, 1), "hi")
	if got := ansi.Strip(b.Styled()); got != b.String() {
		t.Fatalf("expected styled output to strip to %q, got %q", b.String(), got)
	}
}

func TestTermBufCursor(t *testing.T) {
	b := NewTermBuf(geom.NewExpanse(3, 3))
	if _, ok := b.Cursor(); ok {
		t.Fatalf("expected hidden cursor")
	}
	_ = b.ShowCursor(Cursor{Loc: geom.NewPoint(1, 2)})
	if c, ok := b.Cursor(); !ok || c.Loc != geom.NewPoint(1, 2) {
		t.Fatalf("expected cursor at (1,2), got %v ok=%v", c.Loc, ok)
	}
	_ = b.HideCursor()
	if _, ok := b.Cursor(); ok {
		t.Fatalf("expected cursor hidden again")
	}
}
