package widgets

import (
	"strings"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/commands"
	"github.com/atomicstack/canopy/internal/format/table"
)

const (
	inspectNodes = iota
	inspectCommands
)

// Inspector is a debugging panel showing the live node tree or the command
// table of the tree it inspects.
type Inspector struct {
	canopy.NodeState
	core     *canopy.Canopy
	target   canopy.Node
	registry *commands.Registry
	tabs     *Tabs
	body     *Text
	scroll   *Scroll
}

// NewInspector returns an inspector over the tree rooted at target.
func NewInspector(core *canopy.Canopy, target canopy.Node, registry *commands.Registry) *Inspector {
	body := NewText("inspector_body", "")
	body.SetStyle("/inspector")
	body.SetWrap(false)
	in := &Inspector{
		core:     core,
		target:   target,
		registry: registry,
		tabs:     NewTabs("Nodes", "Commands"),
		body:     body,
		scroll:   NewScroll(body),
	}
	in.SetName("inspector")
	return in
}

// Tabs returns the inspector's tab strip.
func (in *Inspector) Tabs() *Tabs {
	return in.tabs
}

// Body returns the text node holding the current page.
func (in *Inspector) Body() *Text {
	return in.body
}

func (in *Inspector) Children(f func(canopy.Node) error) error {
	if err := f(in.tabs); err != nil {
		return err
	}
	return f(in.scroll)
}

func (in *Inspector) content() (string, error) {
	if in.tabs.Active() == inspectCommands {
		rows := [][]string{{"COMMAND", "DOC"}}
		if in.registry != nil {
			for _, cmd := range in.registry.List() {
				rows = append(rows, []string{cmd.FullName(), cmd.Doc})
			}
		}
		return strings.Join(table.Format(rows, nil), "\n"), nil
	}
	lines, err := in.core.Dump(in.target)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func (in *Inspector) Layout(l *canopy.Layout) error {
	text, err := in.content()
	if err != nil {
		return err
	}
	if text != in.body.Text() {
		in.body.SetText(text)
		l.Taint(in.body)
	}
	screen := in.ViewPort().Screen()
	top, rest := screen.CarveVStart(1)
	if err := l.Place(in.tabs, top); err != nil {
		return err
	}
	return l.Place(in.scroll, rest)
}
