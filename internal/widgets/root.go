package widgets

import (
	"fmt"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/commands"
)

// Root is the top of an application tree. It holds the application node and
// an inspector that can be toggled open beside it, and owns the global
// commands: quitting and moving focus.
type Root struct {
	canopy.NodeState
	app        canopy.Node
	inspector  *Inspector
	inspecting bool
}

// NewRoot wraps app. The inspector reports on the tree below the root using
// core, and lists the commands in registry.
func NewRoot(core *canopy.Canopy, app canopy.Node, registry *commands.Registry) *Root {
	r := &Root{app: app}
	r.SetName("root")
	r.inspector = NewInspector(core, r, registry)
	return r
}

// App returns the application node.
func (r *Root) App() canopy.Node {
	return r.app
}

// Inspector returns the inspector panel.
func (r *Root) Inspector() *Inspector {
	return r.inspector
}

// Inspecting reports whether the inspector is open.
func (r *Root) Inspecting() bool {
	return r.inspecting
}

func (r *Root) Children(f func(canopy.Node) error) error {
	if err := f(r.inspector); err != nil {
		return err
	}
	return f(r.app)
}

// Layout gives the inspector the left third of the screen while it is open.
func (r *Root) Layout(l *canopy.Layout) error {
	screen := r.ViewPort().Screen()
	if !r.inspecting {
		if err := eachNode(r.inspector, l.Hide); err != nil {
			return err
		}
		return l.Place(r.app, screen)
	}
	if err := eachNode(r.inspector, l.Unhide); err != nil {
		return err
	}
	left, right := screen.CarveHStart(screen.W / 3)
	if err := l.Place(r.inspector, left); err != nil {
		return err
	}
	return l.Place(r.app, right)
}

func (r *Root) Commands() []commands.Command {
	return []commands.Command{
		{Node: r.Name(), Name: "quit", Doc: "exit the program"},
		{Node: r.Name(), Name: "focus_next", Doc: "focus the next node"},
		{Node: r.Name(), Name: "focus_prev", Doc: "focus the previous node"},
		{Node: r.Name(), Name: "focus_left", Doc: "focus the node to the left"},
		{Node: r.Name(), Name: "focus_right", Doc: "focus the node to the right"},
		{Node: r.Name(), Name: "focus_up", Doc: "focus the node above"},
		{Node: r.Name(), Name: "focus_down", Doc: "focus the node below"},
		{Node: r.Name(), Name: "focus_app", Doc: "move focus back into the application"},
		{Node: r.Name(), Name: "toggle_inspector", Doc: "open or close the inspector"},
	}
}

func (r *Root) Dispatch(c canopy.Context, name string) (canopy.Outcome, error) {
	switch name {
	case "quit":
		c.Exit(0)
		return canopy.Handle(), nil
	case "focus_next":
		return c.FocusNext(r)
	case "focus_prev":
		return c.FocusPrev(r)
	case "focus_left":
		return c.FocusLeft(r)
	case "focus_right":
		return c.FocusRight(r)
	case "focus_up":
		return c.FocusUp(r)
	case "focus_down":
		return c.FocusDown(r)
	case "focus_app":
		return c.FocusFirst(r.app)
	case "toggle_inspector":
		return r.toggleInspector(c)
	}
	return canopy.Ignore(), fmt.Errorf("%w: %s.%s", commands.ErrUnknownCommand, r.Name(), name)
}

// toggleInspector opens the inspector and focuses it, or closes it and
// returns focus to the application if it was inside the inspector.
func (r *Root) toggleInspector(c canopy.Context) (canopy.Outcome, error) {
	r.inspecting = !r.inspecting
	if r.inspecting {
		if err := eachNode(r.inspector, c.Unhide); err != nil {
			return canopy.Ignore(), err
		}
		if _, err := c.FocusFirst(r.inspector); err != nil {
			return canopy.Ignore(), err
		}
	} else if c.IsOnFocusPath(r.inspector) {
		if _, err := c.FocusFirst(r.app); err != nil {
			return canopy.Ignore(), err
		}
	}
	return canopy.Handle(), nil
}

// eachNode calls f on n and every node below it. Hiding is per node, so
// hiding a panel means hiding each of its nodes.
func eachNode(n canopy.Node, f func(canopy.Node)) error {
	_, err := canopy.Preorder(n, func(x canopy.Node) (canopy.Void, error) {
		f(x)
		return canopy.Void{}, nil
	})
	return err
}

// DefaultBindings binds the root commands to their usual keys.
func DefaultBindings(b *commands.Bindings) error {
	table := []struct{ key, filter, cmd string }{
		{"ctrl+c", "", "root.quit"},
		{"ctrl+q", "", "root.quit"},
		{"tab", "", "root.focus_next"},
		{"backtab", "", "root.focus_prev"},
		{"alt+left", "", "root.focus_left"},
		{"alt+right", "", "root.focus_right"},
		{"alt+up", "", "root.focus_up"},
		{"alt+down", "", "root.focus_down"},
		{"f2", "", "root.toggle_inspector"},
		{"esc", "inspector", "root.focus_app"},
		{"]", "inspector", "tabs.next"},
		{"[", "inspector", "tabs.prev"},
	}
	for _, e := range table {
		if err := b.Bind(e.key, e.filter, e.cmd); err != nil {
			return err
		}
	}
	return nil
}
