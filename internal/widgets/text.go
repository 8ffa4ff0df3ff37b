package widgets

import (
	"math"
	"strings"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Text is a block of word-wrapped text. Its canvas is as tall as the wrapped
// text, so it can be placed in a Scroll to page through long content.
type Text struct {
	canopy.NodeState
	text  string
	style string
	lines []string
	width uint16
	// nowrap keeps lines as they are; the canvas widens instead.
	nowrap bool
}

// NewText returns a text node drawn in the "/text" style.
func NewText(name, text string) *Text {
	t := &Text{text: text, style: "/text"}
	t.SetName(name)
	return t
}

// SetStyle changes the style the text is drawn in.
func (t *Text) SetStyle(style string) {
	t.style = style
}

// SetText replaces the content. The caller should taint the node.
func (t *Text) SetText(text string) {
	t.text = text
	t.lines = nil
}

// SetWrap turns word wrapping on or off. Without wrapping, long lines widen
// the canvas and can be scrolled horizontally.
func (t *Text) SetWrap(on bool) {
	t.nowrap = !on
	t.lines = nil
}

// Text returns the raw content.
func (t *Text) Text() string {
	return t.text
}

// wrapTo returns the text wrapped at width cells. Words longer than the
// width are broken.
func wrapTo(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := wrap.String(wordwrap.String(text, width), width)
	return strings.Split(strings.TrimRight(wrapped, "\n"), "\n")
}

// Fit wraps the text at the target width. The canvas keeps the target size
// and grows downwards to hold every wrapped line, so fitting to the result
// again gives the same size.
func (t *Text) Fit(target geom.Expanse) (geom.Expanse, error) {
	if t.nowrap {
		lines := strings.Split(t.text, "\n")
		w := int(target.W)
		for _, l := range lines {
			w = max(w, ansi.StringWidth(l))
		}
		return geom.NewExpanse(uint16(min(w, math.MaxUint16)), max(lineCount(lines), target.H)), nil
	}
	lines := wrapTo(t.text, int(target.W))
	return geom.NewExpanse(target.W, max(lineCount(lines), target.H)), nil
}

func lineCount(lines []string) uint16 {
	return uint16(min(len(lines), math.MaxUint16))
}

// Lines returns the wrapped lines from the last layout.
func (t *Text) Lines() []string {
	return t.lines
}

func (t *Text) Layout(*canopy.Layout) error {
	w := t.ViewPort().Canvas().W
	if t.lines == nil || w != t.width {
		if t.nowrap {
			t.lines = strings.Split(t.text, "\n")
		} else {
			t.lines = wrapTo(t.text, int(w))
		}
		t.width = w
	}
	return nil
}

func (t *Text) Render(_ canopy.Context, r *canopy.Render) error {
	view := r.ViewPort().View()
	for y := view.TL.Y; y < view.TL.Y+view.H; y++ {
		var line string
		if int(y) < len(t.lines) {
			line = t.lines[y]
		}
		l := geom.NewLine(0, y, r.ViewPort().Canvas().W)
		if err := r.Text(t.style, l, line); err != nil {
			return err
		}
	}
	return nil
}
