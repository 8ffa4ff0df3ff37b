package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/commands"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/ui"
	"github.com/atomicstack/canopy/internal/widgets"
	"github.com/atomicstack/canopy/internal/widgets/state"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Demos accepted by Config.Demo.
const (
	DemoPanes   = "panes"
	DemoInspect = "inspect"
)

// Config describes user-provided application options.
type Config struct {
	Width  int
	Height int
	Mouse  bool
	Demo   string
}

// App is the assembled demo: the core, the tree and its commands.
type App struct {
	Core     *canopy.Canopy
	Root     *widgets.Root
	Registry *commands.Registry
	Bindings *commands.Bindings

	shell    *shell
	commands *widgets.List
	graft    *widgets.Graft
}

const helpText = `canopy demo

tab / shift+tab     move focus
alt+arrows          move focus by direction
alt+s / alt+v       split the focused pane below / right
alt+x               close the focused pane
ctrl+o              command prompt (esc to leave)
f2                  toggle the inspector; [ and ] switch its tabs
ctrl+q              quit

The commands pane lists every registered command. Enter runs the one under
the cursor; typing filters the list.

The graft pane is a separate tree with its own focus, drawn in place.`

// New builds the demo tree, registers its commands and installs the key
// bindings on the core.
func New(cfg Config) (*App, error) {
	core := canopy.New()
	a := &App{Core: core, Registry: commands.NewRegistry()}

	a.commands = widgets.NewList("commands", nil)
	a.commands.OnActivate = func(c canopy.Context, item state.Item) error {
		return a.shell.run(c, item.ID)
	}
	a.shell = newShell(widgets.NewFrame(a.commands, "commands"))
	a.Root = widgets.NewRoot(core, a.shell, a.Registry)
	a.shell.attach(a.Root)

	var err error
	help := widgets.NewScroll(widgets.NewText("help_text", helpText))
	help.SetName("help")
	if err = a.shell.panes.InsertCol(core, widgets.NewFrame(help, "help")); err != nil {
		return nil, err
	}
	a.graft, err = newGraftDemo()
	if err != nil {
		return nil, err
	}
	if err = a.shell.panes.InsertRow(core, widgets.NewFrame(a.graft, "graft")); err != nil {
		return nil, err
	}

	for _, n := range []commands.Commander{a.Root, a.Root.Inspector().Tabs(), a.shell, a.commands, help} {
		if err := a.Registry.Load(n); err != nil {
			return nil, err
		}
	}
	list := a.Registry.List()
	items := make([]state.Item, 0, len(list))
	for _, cmd := range list {
		items = append(items, state.Item{ID: cmd.FullName(), Label: fmt.Sprintf("%-24s %s", cmd.FullName(), cmd.Doc)})
	}
	a.commands.Model().SetItems(items)

	a.Bindings = commands.NewBindings(a.Registry)
	if err := bind(a.Bindings); err != nil {
		return nil, err
	}
	core.SetKeymap(a.Bindings)

	if _, err := core.FocusFirst(a.shell.panes); err != nil {
		return nil, err
	}
	switch cfg.Demo {
	case "", DemoPanes:
	case DemoInspect:
		if _, err := a.Root.Dispatch(core, "toggle_inspector"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown demo %q", cfg.Demo)
	}
	return a, nil
}

func bind(b *commands.Bindings) error {
	if err := widgets.DefaultBindings(b); err != nil {
		return err
	}
	for _, kb := range []struct{ key, filter, command string }{
		{"alt+s", "", "shell.split_row"},
		{"alt+v", "", "shell.split_col"},
		{"alt+x", "", "shell.close_pane"},
		{"ctrl+o", "", "shell.prompt"},
		{"esc", "shell/prompt", "root.focus_app"},
	} {
		if err := b.Bind(kb.key, kb.filter, kb.command); err != nil {
			return err
		}
	}
	return nil
}

// newGraftDemo builds a small independent tree of two panes.
func newGraftDemo() (*widgets.Graft, error) {
	left := widgets.NewScroll(widgets.NewText("left_text", "inner tree\n\nenter the graft with tab, then use the arrows to scroll."))
	left.SetName("left")
	right := widgets.NewScroll(widgets.NewText("right_text", "a second inner pane"))
	right.SetName("right")
	inner := widgets.NewPanes(left)
	g := widgets.NewGraft(inner)
	if err := inner.InsertCol(g.Core(), right); err != nil {
		return nil, err
	}
	g.Core().SetFocus(left)
	return g, nil
}

// initialSize asks the terminal for its size, so the first frame can be
// drawn before Bubble Tea reports one.
func initialSize() geom.Expanse {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return geom.Expanse{}
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return geom.Expanse{}
	}
	return geom.NewExpanse(uint16(min(w, 0xffff)), uint16(min(h, 0xffff)))
}

// Run bootstraps and executes the Bubble Tea program, returning the exit
// code requested by the tree.
func Run(cfg Config) (int, error) {
	a, err := New(cfg)
	if err != nil {
		return 1, err
	}
	model := ui.NewModel(a.Core, a.Root, ui.Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Initial: initialSize(),
	})
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return 0, nil
	}
	if err != nil {
		return 1, err
	}
	if err := model.Err(); err != nil {
		return 1, err
	}
	return model.ExitCode(), nil
}
