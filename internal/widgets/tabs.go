package widgets

import (
	"fmt"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/commands"
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
)

// Tabs is a one-line tab strip. It only draws the titles; an owner reads
// Active to decide which content to show.
type Tabs struct {
	canopy.NodeState
	tabs   []string
	active int
}

// NewTabs returns a strip with the first tab active.
func NewTabs(tabs ...string) *Tabs {
	t := &Tabs{tabs: tabs}
	t.SetName("tabs")
	return t
}

// Active returns the index of the selected tab.
func (t *Tabs) Active() int {
	return t.active
}

// Next selects the tab to the right, wrapping around.
func (t *Tabs) Next() {
	if len(t.tabs) > 0 {
		t.active = (t.active + 1) % len(t.tabs)
	}
}

// Prev selects the tab to the left, wrapping around.
func (t *Tabs) Prev() {
	if len(t.tabs) > 0 {
		t.active = (t.active + len(t.tabs) - 1) % len(t.tabs)
	}
}

func (t *Tabs) Fit(target geom.Expanse) (geom.Expanse, error) {
	return geom.NewExpanse(target.W, 1), nil
}

func (t *Tabs) Render(_ canopy.Context, r *canopy.Render) error {
	if len(t.tabs) == 0 {
		return nil
	}
	cells, err := r.ViewPort().View().SplitHorizontal(uint16(len(t.tabs)))
	if err != nil {
		return err
	}
	for i, cell := range cells {
		style := "/tab/inactive"
		if i == t.active {
			style = "/tab/active"
		}
		text, end := cell.CarveHEnd(1)
		if err := r.Text(style, text.FirstLine(), " "+t.tabs[i]); err != nil {
			return err
		}
		if err := r.Text("/", end.FirstLine(), " "); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tabs) HandleMouse(c canopy.Context, m event.Mouse) (canopy.Outcome, error) {
	if m.Action != event.MouseDown || len(t.tabs) == 0 {
		return canopy.Ignore(), nil
	}
	w := max(int(t.ViewPort().Canvas().W)/len(t.tabs), 1)
	t.active = min(int(m.Loc.X)/w, len(t.tabs)-1)
	return canopy.Handle(), nil
}

func (t *Tabs) Commands() []commands.Command {
	return []commands.Command{
		{Node: t.Name(), Name: "next", Doc: "select the next tab"},
		{Node: t.Name(), Name: "prev", Doc: "select the previous tab"},
	}
}

func (t *Tabs) Dispatch(_ canopy.Context, name string) (canopy.Outcome, error) {
	switch name {
	case "next":
		t.Next()
	case "prev":
		t.Prev()
	default:
		return canopy.Ignore(), fmt.Errorf("%w: tabs.%s", commands.ErrUnknownCommand, name)
	}
	return canopy.Handle(), nil
}
