package widgets

import (
	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Input is a single-line text editor backed by the bubbles textinput model.
type Input struct {
	canopy.NodeState
	model  textinput.Model
	offset int
	// OnSubmit is called with the current value when enter is pressed.
	OnSubmit func(c canopy.Context, value string) error
}

// NewInput returns an empty input with the given prompt and placeholder.
func NewInput(name, prompt, placeholder string) *Input {
	m := textinput.New()
	m.Prompt = prompt
	m.Placeholder = placeholder
	m.Focus()
	in := &Input{model: m}
	in.SetName(name)
	return in
}

// Value returns the current text.
func (in *Input) Value() string {
	return in.model.Value()
}

// SetValue replaces the text and moves the cursor to its end.
func (in *Input) SetValue(s string) {
	in.model.SetValue(s)
	in.model.CursorEnd()
}

func (in *Input) AcceptFocus() bool { return true }

func (in *Input) Fit(target geom.Expanse) (geom.Expanse, error) {
	return geom.NewExpanse(target.W, 1), nil
}

// field is the width available for text after the prompt.
func (in *Input) field() int {
	return max(int(in.ViewPort().View().W)-ansi.StringWidth(in.model.Prompt), 1)
}

// scroll keeps the cursor inside the visible part of the field.
func (in *Input) scroll() {
	pos, width := in.model.Position(), in.field()
	if pos < in.offset {
		in.offset = pos
	}
	if pos >= in.offset+width {
		in.offset = pos - width + 1
	}
}

func (in *Input) Render(_ canopy.Context, r *canopy.Render) error {
	in.scroll()
	view := r.ViewPort().View()
	promptW := uint16(min(ansi.StringWidth(in.model.Prompt), int(view.W)))
	if err := r.Text("/input/prompt", geom.NewLine(0, view.TL.Y, promptW), in.model.Prompt); err != nil {
		return err
	}
	field := geom.NewLine(promptW, view.TL.Y, view.W-promptW)
	value := []rune(in.model.Value())
	if len(value) == 0 {
		return r.Text("/input/placeholder", field, in.model.Placeholder)
	}
	return r.Text("/input", field, string(value[min(in.offset, len(value)):]))
}

func (in *Input) Cursor() (canopy.Cursor, bool) {
	in.scroll()
	value := []rune(in.model.Value())
	pos := min(in.model.Position(), len(value))
	start := min(in.offset, pos)
	x := ansi.StringWidth(in.model.Prompt) + ansi.StringWidth(string(value[start:pos]))
	return canopy.Cursor{Loc: geom.NewPoint(uint16(x), 0), Shape: canopy.CursorLine, Blink: true}, true
}

func (in *Input) HandleKey(c canopy.Context, k event.Key) (canopy.Outcome, error) {
	if k == event.Special(event.KeyEnter) {
		if in.OnSubmit == nil {
			return canopy.Ignore(), nil
		}
		if err := in.OnSubmit(c, in.model.Value()); err != nil {
			return canopy.Ignore(), err
		}
		return canopy.Handle(), nil
	}
	msg, ok := teaKey(k)
	if !ok {
		return canopy.Ignore(), nil
	}
	value, pos := in.model.Value(), in.model.Position()
	in.model, _ = in.model.Update(msg)
	if in.model.Value() == value && in.model.Position() == pos {
		return canopy.Ignore(), nil
	}
	return canopy.Handle(), nil
}

var teaKeyTypes = map[event.KeyCode]tea.KeyType{
	event.KeyBackspace: tea.KeyBackspace,
	event.KeyDelete:    tea.KeyDelete,
	event.KeyLeft:      tea.KeyLeft,
	event.KeyRight:     tea.KeyRight,
	event.KeyHome:      tea.KeyHome,
	event.KeyEnd:       tea.KeyEnd,
}

var teaCtrlKeys = map[rune]tea.KeyType{
	'a': tea.KeyCtrlA,
	'b': tea.KeyCtrlB,
	'd': tea.KeyCtrlD,
	'e': tea.KeyCtrlE,
	'f': tea.KeyCtrlF,
	'h': tea.KeyCtrlH,
	'k': tea.KeyCtrlK,
	'u': tea.KeyCtrlU,
	'w': tea.KeyCtrlW,
}

// teaKey converts an editing key to the message the textinput model
// expects. Keys the editor has no use for report false.
func teaKey(k event.Key) (tea.KeyMsg, bool) {
	alt := k.Mods&event.ModAlt != 0
	switch {
	case k.Code == event.KeyRune && k.Mods&event.ModCtrl != 0:
		t, ok := teaCtrlKeys[k.Rune]
		return tea.KeyMsg{Type: t, Alt: alt}, ok
	case k.Code == event.KeyRune:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k.Rune}, Alt: alt}, true
	case k.Code == event.KeySpace:
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}, Alt: alt}, true
	}
	t, ok := teaKeyTypes[k.Code]
	return tea.KeyMsg{Type: t, Alt: alt}, ok
}
