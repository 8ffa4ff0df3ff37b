package app

import (
	"fmt"
	"strings"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/commands"
	"github.com/atomicstack/canopy/internal/widgets"
)

// shell is the application node: a grid of panes above a command prompt and
// a status line.
type shell struct {
	canopy.NodeState
	root   canopy.Node
	panes  *widgets.Panes
	prompt *widgets.Input
	bar    *widgets.StatusBar
	clock  *clock
	seq    int
}

func newShell(first canopy.Node) *shell {
	s := &shell{
		panes:  widgets.NewPanes(first),
		prompt: widgets.NewInput("prompt", ": ", "command, e.g. shell.split_col"),
		bar:    widgets.NewStatusBar(),
		clock:  newClock(),
	}
	s.SetName("shell")
	s.prompt.OnSubmit = s.submit
	return s
}

// attach records the tree root, which commands and the status bar work from.
func (s *shell) attach(root canopy.Node) {
	s.root = root
	s.bar.Track(root)
}

func (s *shell) Children(f func(canopy.Node) error) error {
	for _, n := range []canopy.Node{s.panes, s.prompt, s.bar, s.clock} {
		if err := f(n); err != nil {
			return err
		}
	}
	return nil
}

func (s *shell) Layout(l *canopy.Layout) error {
	body, status := s.ViewPort().Screen().CarveVEnd(1)
	body, prompt := body.CarveVEnd(1)
	bar, clk := status.CarveHEnd(uint16(len(clockLayout) + 1))
	if err := l.Place(s.panes, body); err != nil {
		return err
	}
	if err := l.Place(s.prompt, prompt); err != nil {
		return err
	}
	if err := l.Place(s.bar, bar); err != nil {
		return err
	}
	return l.Place(s.clock, clk)
}

// run executes a command by name and reports the result on the status bar.
// Command failures are shown rather than returned, so they do not end the
// program.
func (s *shell) run(c canopy.Context, name string) error {
	out, err := commands.Run(c, s.root, name)
	switch {
	case err != nil:
		s.bar.SetError(err)
	case !out.IsHandled():
		s.bar.SetMessage(name + ": nothing to do")
	default:
		s.bar.SetMessage("ran " + name)
	}
	c.Taint(s.bar)
	return nil
}

func (s *shell) submit(c canopy.Context, value string) error {
	name := strings.TrimSpace(value)
	if name == "" {
		return nil
	}
	s.prompt.SetValue("")
	return s.run(c, name)
}

// newPane returns a scrollable text pane with a fresh name.
func (s *shell) newPane() canopy.Node {
	s.seq++
	name := fmt.Sprintf("pane%d", s.seq)
	body := widgets.NewText(name+"_text", fmt.Sprintf("%s\n\nalt+s splits below, alt+v splits right, alt+x closes.", name))
	scroll := widgets.NewScroll(body)
	scroll.SetName(name)
	return widgets.NewFrame(scroll, name)
}

func (s *shell) Commands() []commands.Command {
	return []commands.Command{
		{Node: s.Name(), Name: "split_row", Doc: "open a pane below the focused one"},
		{Node: s.Name(), Name: "split_col", Doc: "open a pane to the right of the focused one"},
		{Node: s.Name(), Name: "close_pane", Doc: "close the focused pane"},
		{Node: s.Name(), Name: "prompt", Doc: "focus the command prompt"},
	}
}

func (s *shell) Dispatch(c canopy.Context, name string) (canopy.Outcome, error) {
	switch name {
	case "split_row":
		pane := s.newPane()
		if err := s.panes.InsertRow(c, pane); err != nil {
			return canopy.Ignore(), err
		}
		return c.FocusFirst(pane)
	case "split_col":
		if err := s.panes.InsertCol(c, s.newPane()); err != nil {
			return canopy.Ignore(), err
		}
	case "close_pane":
		if _, _, ok := s.panes.FocusCoords(c); !ok {
			return canopy.Ignore(), nil
		}
		if err := s.panes.DeleteFocus(c, s.panes); err != nil {
			return canopy.Ignore(), err
		}
	case "prompt":
		c.SetFocus(s.prompt)
	default:
		return canopy.Ignore(), fmt.Errorf("%w: %s.%s", commands.ErrUnknownCommand, s.Name(), name)
	}
	return canopy.Handle(), nil
}
