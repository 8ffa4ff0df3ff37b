package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/atomicstack/canopy/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// pollMsg is delivered when the earliest poll deadline is reached.
type pollMsg struct {
	at time.Time
}

// Ticker schedules a pollMsg after d. The default uses tea.Tick.
type Ticker func(d time.Duration) tea.Cmd

func teaTicker(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return pollMsg{at: t} })
}

// Options configures a Model.
type Options struct {
	// Width and Height pin the screen size. Zero follows the terminal.
	Width, Height int
	// Initial is the size assumed until the terminal reports one.
	Initial geom.Expanse
	// Ticker replaces tea.Tick, mainly for tests.
	Ticker Ticker
}

// Model implements the Bubble Tea model hosting a canopy tree. Bubble Tea
// owns the terminal and the single message loop; the model translates its
// messages into events, runs the render sweep into a TermBuf and hands the
// painted buffer back from View.
type Model struct {
	core *canopy.Canopy
	root canopy.Node
	buf  *canopy.TermBuf

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	ready       bool

	tick  Ticker
	armed time.Time

	err      error
	exitCode int
	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel hosts root on core.
func NewModel(core *canopy.Canopy, root canopy.Node, opts Options) *Model {
	m := &Model{
		core: core,
		root: root,
		buf:  canopy.NewTermBuf(geom.Expanse{}),
		tick: opts.Ticker,
	}
	if m.tick == nil {
		m.tick = teaTicker
	}
	m.width, m.height = int(opts.Initial.W), int(opts.Initial.H)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	core.SetControl(m)
	m.registerHandlers()
	return m
}

// Core returns the canopy the model drives.
func (m *Model) Core() *canopy.Canopy { return m.core }

// Root returns the hosted tree.
func (m *Model) Root() canopy.Node { return m.root }

// Buffer returns the screen buffer the tree renders into.
func (m *Model) Buffer() *canopy.TermBuf { return m.buf }

// Err returns the error that ended the program, if any.
func (m *Model) Err() error { return m.err }

// ExitCode returns the code passed to Exit.
func (m *Model) ExitCode() int { return m.exitCode }

// Exit implements canopy.ControlBackend. Bubble Tea restores the terminal
// once Update returns tea.Quit.
func (m *Model) Exit(code int) {
	m.exitCode = code
	m.quitting = true
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.width > 0 && m.height > 0 {
		m.resize(m.width, m.height)
	}
	return m.finishUpdate(nil)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(pollMsg{}):           m.handlePollMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	for _, k := range keyEvents(msg.(tea.KeyMsg)) {
		if _, err := m.core.Key(m.root, k); err != nil {
			m.fail(err)
			return nil
		}
		if m.quitting {
			return nil
		}
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	e, ok := mouseEvent(msg.(tea.MouseMsg))
	if !ok {
		return nil
	}
	if _, err := m.core.Mouse(m.root, e); err != nil {
		m.fail(err)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	w, h := size.Width, size.Height
	if m.fixedWidth {
		w = m.width
	}
	if m.fixedHeight {
		h = m.height
	}
	m.resize(w, h)
	return nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	size := geom.NewExpanse(uint16(clampDim(w)), uint16(clampDim(h)))
	m.buf.Resize(size)
	if _, err := m.core.Event(m.root, event.Resize{Size: size}); err != nil {
		m.fail(err)
		return
	}
	m.ready = true
}

func clampDim(v int) int {
	return min(max(v, 0), 0xffff)
}

func (m *Model) handlePollMsg(msg tea.Msg) tea.Cmd {
	m.armed = time.Time{}
	if _, err := m.core.Event(m.root, event.Tick{At: msg.(pollMsg).at}); err != nil {
		m.fail(err)
	}
	return nil
}

func (m *Model) fail(err error) {
	logging.Error(err)
	m.err = err
	m.quitting = true
}

// finishUpdate renders whatever changed and arms the poll timer for the
// earliest deadline.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if !m.quitting && m.ready {
		if err := m.core.Render(m.buf, m.root); err != nil {
			m.fail(err)
		}
	}
	if m.quitting {
		return tea.Quit
	}
	if next, ok := m.core.NextPoll(); ok && (m.armed.IsZero() || next.Before(m.armed)) {
		m.armed = next
		if cmd := m.tick(max(next.Sub(m.core.Now()), 0)); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
