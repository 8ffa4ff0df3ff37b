package ui

import (
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/geom"
	tea "github.com/charmbracelet/bubbletea"
)

type keySpec struct {
	code event.KeyCode
	mods event.Mods
}

var teaKeys = map[tea.KeyType]keySpec{
	tea.KeyEnter:     {code: event.KeyEnter},
	tea.KeyTab:       {code: event.KeyTab},
	tea.KeyShiftTab:  {code: event.KeyBackTab},
	tea.KeyBackspace: {code: event.KeyBackspace},
	tea.KeyDelete:    {code: event.KeyDelete},
	tea.KeyInsert:    {code: event.KeyInsert},
	tea.KeyEsc:       {code: event.KeyEsc},
	tea.KeySpace:     {code: event.KeySpace},
	tea.KeyUp:        {code: event.KeyUp},
	tea.KeyDown:      {code: event.KeyDown},
	tea.KeyLeft:      {code: event.KeyLeft},
	tea.KeyRight:     {code: event.KeyRight},
	tea.KeyHome:      {code: event.KeyHome},
	tea.KeyEnd:       {code: event.KeyEnd},
	tea.KeyPgUp:      {code: event.KeyPageUp},
	tea.KeyPgDown:    {code: event.KeyPageDown},

	tea.KeyShiftUp:    {code: event.KeyUp, mods: event.ModShift},
	tea.KeyShiftDown:  {code: event.KeyDown, mods: event.ModShift},
	tea.KeyShiftLeft:  {code: event.KeyLeft, mods: event.ModShift},
	tea.KeyShiftRight: {code: event.KeyRight, mods: event.ModShift},
	tea.KeyShiftHome:  {code: event.KeyHome, mods: event.ModShift},
	tea.KeyShiftEnd:   {code: event.KeyEnd, mods: event.ModShift},
	tea.KeyCtrlUp:     {code: event.KeyUp, mods: event.ModCtrl},
	tea.KeyCtrlDown:   {code: event.KeyDown, mods: event.ModCtrl},
	tea.KeyCtrlLeft:   {code: event.KeyLeft, mods: event.ModCtrl},
	tea.KeyCtrlRight:  {code: event.KeyRight, mods: event.ModCtrl},
	tea.KeyCtrlHome:   {code: event.KeyHome, mods: event.ModCtrl},
	tea.KeyCtrlEnd:    {code: event.KeyEnd, mods: event.ModCtrl},
	tea.KeyCtrlPgUp:   {code: event.KeyPageUp, mods: event.ModCtrl},
	tea.KeyCtrlPgDown: {code: event.KeyPageDown, mods: event.ModCtrl},
	tea.KeyCtrlAt:     {code: event.KeySpace, mods: event.ModCtrl},
	tea.KeyF1:         {code: event.KeyF1},
	tea.KeyF2:         {code: event.KeyF2},
	tea.KeyF3:         {code: event.KeyF3},
	tea.KeyF4:         {code: event.KeyF4},
	tea.KeyF5:         {code: event.KeyF5},
	tea.KeyF6:         {code: event.KeyF6},
	tea.KeyF7:         {code: event.KeyF7},
	tea.KeyF8:         {code: event.KeyF8},
	tea.KeyF9:         {code: event.KeyF9},
	tea.KeyF10:        {code: event.KeyF10},
	tea.KeyF11:        {code: event.KeyF11},
	tea.KeyF12:        {code: event.KeyF12},
}

// keyEvents translates a Bubble Tea key message. A paste or a burst of runes
// arrives as one message and becomes one key per rune. Keys with no
// equivalent translate to nothing.
func keyEvents(msg tea.KeyMsg) []event.Key {
	var alt event.Mods
	if msg.Alt {
		alt = event.ModAlt
	}
	if msg.Type == tea.KeyRunes {
		out := make([]event.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			k := event.Char(r)
			k.Mods |= alt
			out = append(out, k)
		}
		return out
	}
	if spec, ok := teaKeys[msg.Type]; ok {
		return []event.Key{{Code: spec.code, Mods: spec.mods | alt}}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		k := event.Ctrl('a' + rune(msg.Type-tea.KeyCtrlA))
		k.Mods |= alt
		return []event.Key{k}
	}
	return nil
}

var teaButtons = map[tea.MouseButton]event.Button{
	tea.MouseButtonLeft:   event.ButtonLeft,
	tea.MouseButtonMiddle: event.ButtonMiddle,
	tea.MouseButtonRight:  event.ButtonRight,
}

var teaWheel = map[tea.MouseButton]event.MouseAction{
	tea.MouseButtonWheelUp:    event.ScrollUp,
	tea.MouseButtonWheelDown:  event.ScrollDown,
	tea.MouseButtonWheelLeft:  event.ScrollLeft,
	tea.MouseButtonWheelRight: event.ScrollRight,
}

// mouseEvent translates a Bubble Tea mouse message. Negative coordinates
// and unknown actions report false.
func mouseEvent(msg tea.MouseMsg) (event.Mouse, bool) {
	if msg.X < 0 || msg.Y < 0 {
		return event.Mouse{}, false
	}
	m := event.Mouse{
		Button: teaButtons[msg.Button],
		Loc:    geom.NewPoint(uint16(min(msg.X, 0xffff)), uint16(min(msg.Y, 0xffff))),
	}
	if msg.Shift {
		m.Mods |= event.ModShift
	}
	if msg.Alt {
		m.Mods |= event.ModAlt
	}
	if msg.Ctrl {
		m.Mods |= event.ModCtrl
	}
	if action, ok := teaWheel[msg.Button]; ok {
		if msg.Action != tea.MouseActionPress {
			return event.Mouse{}, false
		}
		m.Action = action
		return m, true
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.Action = event.MouseDown
	case tea.MouseActionRelease:
		m.Action = event.MouseUp
	case tea.MouseActionMotion:
		m.Action = event.MouseMove
		if m.Button != event.ButtonNone {
			m.Action = event.MouseDrag
		}
	default:
		return event.Mouse{}, false
	}
	return m, true
}
