package canopy

import (
	"strings"

	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// cell is one screen cell. A wide character occupies its own cell plus a
// following cell with empty text.
type cell struct {
	text  string
	style string
}

var blank = cell{text: " ", style: theme.Root}

// TermBuf is an in-memory RenderBackend: a grid of cells, each remembering
// the name of the style it was drawn with.
type TermBuf struct {
	size    geom.Expanse
	cells   [][]cell
	style   string
	styles  map[string]lipgloss.Style
	cursor  Cursor
	visible bool
	flushes int
}

// NewTermBuf returns a blank buffer of the given size.
func NewTermBuf(size geom.Expanse) *TermBuf {
	b := &TermBuf{styles: map[string]lipgloss.Style{}}
	b.Resize(size)
	return b
}

// Resize discards the content and sets a new size.
func (b *TermBuf) Resize(size geom.Expanse) {
	b.size = size
	b.cells = make([][]cell, size.H)
	for y := range b.cells {
		b.cells[y] = make([]cell, size.W)
	}
	_ = b.Reset()
}

// Size returns the buffer dimensions.
func (b *TermBuf) Size() geom.Expanse {
	return b.size
}

func (b *TermBuf) Style(name string, s lipgloss.Style) error {
	b.style = name
	b.styles[name] = s
	return nil
}

// Text writes s starting at p. Output past the right edge is dropped.
func (b *TermBuf) Text(p geom.Point, s string) error {
	if int(p.Y) >= len(b.cells) {
		return nil
	}
	row := b.cells[p.Y]
	x := int(p.X)
	for _, r := range s {
		if x >= len(row) {
			break
		}
		w := ansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		if w == 2 && x+1 >= len(row) {
			row[x] = cell{text: " ", style: b.style}
			break
		}
		row[x] = cell{text: string(r), style: b.style}
		if w == 2 {
			row[x+1] = cell{text: "", style: b.style}
		}
		x += w
	}
	return nil
}

func (b *TermBuf) Fill(r geom.Rect, ch rune) error {
	area, ok := r.Intersect(b.size.Rect())
	if !ok {
		return nil
	}
	c := cell{text: string(ch), style: b.style}
	for y := area.TL.Y; y < area.TL.Y+area.H; y++ {
		for x := area.TL.X; x < area.TL.X+area.W; x++ {
			b.cells[y][x] = c
		}
	}
	return nil
}

func (b *TermBuf) ShowCursor(c Cursor) error {
	b.cursor = c
	b.visible = true
	return nil
}

func (b *TermBuf) HideCursor() error {
	b.visible = false
	return nil
}

func (b *TermBuf) Flush() error {
	b.flushes++
	return nil
}

// Reset blanks every cell.
func (b *TermBuf) Reset() error {
	for _, row := range b.cells {
		for x := range row {
			row[x] = blank
		}
	}
	return nil
}

// Cursor returns the cursor, if one is shown.
func (b *TermBuf) Cursor() (Cursor, bool) {
	return b.cursor, b.visible
}

// Flushes counts calls to Flush.
func (b *TermBuf) Flushes() int {
	return b.flushes
}

// Cell returns the text and style name at p.
func (b *TermBuf) Cell(p geom.Point) (string, string) {
	if int(p.Y) >= len(b.cells) || int(p.X) >= len(b.cells[p.Y]) {
		return "", ""
	}
	c := b.cells[p.Y][p.X]
	return c.text, c.style
}

// Lines returns the text content, one string per row.
func (b *TermBuf) Lines() []string {
	out := make([]string, len(b.cells))
	for y, row := range b.cells {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(c.text)
		}
		out[y] = sb.String()
	}
	return out
}

func (b *TermBuf) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Contains reports whether s appears on any row.
func (b *TermBuf) Contains(s string) bool {
	for _, line := range b.Lines() {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// ContainsStyled reports whether s appears on any row with every one of its
// cells drawn in the named style.
func (b *TermBuf) ContainsStyled(s, style string) bool {
	want := []rune(s)
	if len(want) == 0 {
		return true
	}
	for _, row := range b.cells {
		var texts []rune
		var idx []int
		for i, c := range row {
			if c.text == "" {
				continue
			}
			texts = append(texts, []rune(c.text)[0])
			idx = append(idx, i)
		}
	scan:
		for start := 0; start+len(want) <= len(texts); start++ {
			for k, r := range want {
				if texts[start+k] != r || row[idx[start+k]].style != style {
					continue scan
				}
			}
			return true
		}
	}
	return false
}

// Styled renders the buffer with each run of cells painted in the Lip Gloss
// style it was drawn with. A visible cursor is drawn as a reversed cell.
func (b *TermBuf) Styled() string {
	lines := make([]string, len(b.cells))
	for y, row := range b.cells {
		var sb strings.Builder
		for x := 0; x < len(row); {
			style := row[x].style
			at := b.isCursor(x, y)
			var run strings.Builder
			for x < len(row) && row[x].style == style && b.isCursor(x, y) == at {
				run.WriteString(row[x].text)
				x++
				if at {
					break
				}
			}
			s, ok := b.styles[style]
			switch {
			case at:
				sb.WriteString(s.Inline(true).Reverse(true).Render(run.String()))
			case ok:
				sb.WriteString(s.Inline(true).Render(run.String()))
			default:
				sb.WriteString(run.String())
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (b *TermBuf) isCursor(x, y int) bool {
	return b.visible && int(b.cursor.Loc.X) == x && int(b.cursor.Loc.Y) == y
}
