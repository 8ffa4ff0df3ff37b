package widgets

import (
	"fmt"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/commands"
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/widgets/state"
	"github.com/charmbracelet/x/ansi"
)

// List is a filterable list. Typing edits a fuzzy filter shown on the top
// line; the arrow keys move the cursor and enter activates the current item.
type List struct {
	canopy.NodeState
	state *state.List
	// OnActivate is called with the item under the cursor when enter is
	// pressed.
	OnActivate func(c canopy.Context, item state.Item) error
}

// NewList returns a list over items.
func NewList(name string, items []state.Item) *List {
	l := &List{state: state.NewList(items)}
	l.SetName(name)
	return l
}

// Model exposes the list state.
func (l *List) Model() *state.List {
	return l.state
}

func (l *List) AcceptFocus() bool { return true }

// pageHeight is the number of item rows on screen.
func (l *List) pageHeight() int {
	h := int(l.ViewPort().View().H)
	if l.state.Filter != "" {
		h--
	}
	return max(h, 0)
}

func (l *List) Render(_ canopy.Context, r *canopy.Render) error {
	view := r.ViewPort().View()
	row := view.TL.Y
	end := view.TL.Y + view.H
	if l.state.Filter != "" {
		if err := r.Text("/input/prompt", geom.NewLine(0, row, 1), "/"); err != nil {
			return err
		}
		if err := r.Text("/input", geom.NewLine(1, row, view.W-min(view.W, 1)), l.state.Filter); err != nil {
			return err
		}
		row++
	}
	offset := l.state.Scroll(l.pageHeight())
	if len(l.state.Items) == 0 && row < end {
		if err := r.Text("/list/empty", geom.NewLine(0, row, view.W), "no matches"); err != nil {
			return err
		}
		row++
	}
	for i := offset; row < end; i, row = i+1, row+1 {
		var text string
		style := "/list/item"
		if i < len(l.state.Items) {
			item := l.state.Items[i]
			mark := "  "
			if l.state.IsSelected(item.ID) {
				mark = "• "
			}
			text = mark + item.Label
			if i == l.state.Cursor {
				style = "/list/selected"
			}
		}
		if err := r.Text(style, geom.NewLine(0, row, view.W), text); err != nil {
			return err
		}
	}
	return nil
}

// Cursor sits in the filter while one is being typed.
func (l *List) Cursor() (canopy.Cursor, bool) {
	if l.state.Filter == "" {
		return canopy.Cursor{}, false
	}
	runes := []rune(l.state.Filter)
	pos := min(max(l.state.FilterCursor, 0), len(runes))
	x := 1 + ansi.StringWidth(string(runes[:pos]))
	view := l.ViewPort().View()
	return canopy.Cursor{Loc: geom.NewPoint(view.TL.X+uint16(x), view.TL.Y), Shape: canopy.CursorLine}, true
}

var listKeys = map[string]string{
	"up":     "up",
	"down":   "down",
	"pgup":   "page_up",
	"pgdown": "page_down",
	"home":   "home",
	"end":    "end",
	"enter":  "activate",
	"ctrl+t": "toggle",
	"esc":    "clear_filter",
}

func (l *List) HandleKey(c canopy.Context, k event.Key) (canopy.Outcome, error) {
	if name, ok := listKeys[k.String()]; ok {
		if name == "clear_filter" && l.state.Filter == "" {
			return canopy.Ignore(), nil
		}
		return l.Dispatch(c, name)
	}
	var changed bool
	switch {
	case k.Code == event.KeyRune && k.Mods&^event.ModShift == 0:
		changed = l.state.InsertFilter(string(k.Rune))
	case k.Code == event.KeySpace && k.Mods == 0:
		changed = l.state.InsertFilter(" ")
	case k.Code == event.KeyBackspace:
		changed = l.state.DeleteFilterRune()
	case k == event.Ctrl('w'):
		changed = l.state.DeleteFilterWord()
	case k.Code == event.KeyLeft:
		changed = l.state.MoveFilterCursor(-1)
	case k.Code == event.KeyRight:
		changed = l.state.MoveFilterCursor(1)
	case k == event.Ctrl('a'):
		changed = l.state.MoveFilterHome()
	case k == event.Ctrl('e'):
		changed = l.state.MoveFilterEnd()
	default:
		return canopy.Ignore(), nil
	}
	if !changed {
		return canopy.Ignore(), nil
	}
	return canopy.Handle(), nil
}

func (l *List) HandleMouse(c canopy.Context, m event.Mouse) (canopy.Outcome, error) {
	switch m.Action {
	case event.ScrollUp:
		return l.Dispatch(c, "up")
	case event.ScrollDown:
		return l.Dispatch(c, "down")
	case event.MouseDown:
		row := int(m.Loc.Y)
		if l.state.Filter != "" {
			row--
		}
		if row < 0 {
			return canopy.Ignore(), nil
		}
		l.state.Cursor = min(l.state.Offset+row, max(len(l.state.Items)-1, 0))
		c.SetFocus(l)
		return canopy.Handle(), nil
	}
	return canopy.Ignore(), nil
}

func (l *List) Commands() []commands.Command {
	return []commands.Command{
		{Node: l.Name(), Name: "up", Doc: "move the cursor up"},
		{Node: l.Name(), Name: "down", Doc: "move the cursor down"},
		{Node: l.Name(), Name: "page_up", Doc: "move the cursor up a page"},
		{Node: l.Name(), Name: "page_down", Doc: "move the cursor down a page"},
		{Node: l.Name(), Name: "home", Doc: "move to the first item"},
		{Node: l.Name(), Name: "end", Doc: "move to the last item"},
		{Node: l.Name(), Name: "toggle", Doc: "toggle selection of the current item"},
		{Node: l.Name(), Name: "clear_filter", Doc: "clear the filter"},
		{Node: l.Name(), Name: "activate", Doc: "activate the current item"},
	}
}

func (l *List) Dispatch(c canopy.Context, name string) (canopy.Outcome, error) {
	page := l.pageHeight()
	switch name {
	case "up":
		l.state.Up()
	case "down":
		l.state.Down()
	case "page_up":
		l.state.PageUp(page)
	case "page_down":
		l.state.PageDown(page)
	case "home":
		l.state.Home()
	case "end":
		l.state.End()
	case "toggle":
		l.state.ToggleCurrent()
	case "clear_filter":
		l.state.SetFilter("", 0)
	case "activate":
		item, ok := l.state.Current()
		if !ok || l.OnActivate == nil {
			return canopy.Ignore(), nil
		}
		if err := l.OnActivate(c, item); err != nil {
			return canopy.Ignore(), err
		}
	default:
		return canopy.Ignore(), fmt.Errorf("%w: %s.%s", commands.ErrUnknownCommand, l.Name(), name)
	}
	return canopy.Handle(), nil
}
