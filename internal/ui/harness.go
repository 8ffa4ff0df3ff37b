package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for tests. Poll timers are
// recorded instead of started; Poll delivers them on demand.
type Harness struct {
	model *Model
	ticks []time.Duration
}

// NewHarness creates a harness for the provided model and runs its Init.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	model.tick = func(d time.Duration) tea.Cmd {
		h.ticks = append(h.ticks, d)
		return nil
	}
	h.processCmd(model.Init())
	return h
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Poll delivers a poll tick at the given time.
func (h *Harness) Poll(at time.Time) {
	h.Send(pollMsg{at: at})
}

// Ticks returns the poll delays the model asked for, oldest first.
func (h *Harness) Ticks() []time.Duration {
	return h.ticks
}

// Quit reports whether the model has asked Bubble Tea to quit.
func (h *Harness) Quit() bool {
	return h.model.quitting
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		switch msg := msg.(type) {
		case nil, tea.QuitMsg:
			return
		case tea.BatchMsg:
			for _, c := range msg {
				h.processCmd(c)
			}
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Lines returns the unstyled screen, one string per row.
func (h *Harness) Lines() []string {
	return h.model.buf.Lines()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
