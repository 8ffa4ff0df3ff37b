// Package event defines the input events delivered to the node tree: keys,
// mouse actions, terminal resizes and poll ticks.
package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/canopy/internal/geom"
)

// Event is one of Key, Mouse, Resize or Tick.
type Event interface {
	event()
}

// Mods is a set of keyboard modifiers.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
)

func (m Mods) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// KeyCode identifies a key. KeyRune means the key is described by Key.Rune.
type KeyCode uint8

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeySpace:     "space",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

var keyCodes = func() map[string]KeyCode {
	out := make(map[string]KeyCode, len(keyNames))
	for code, name := range keyNames {
		out[name] = code
	}
	return out
}()

// Key is a key press.
type Key struct {
	Mods Mods
	Code KeyCode
	Rune rune
}

func (Key) event() {}

// Char returns the key event for an unmodified printable rune.
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Ctrl returns the key event for ctrl+r.
func Ctrl(r rune) Key {
	return Key{Mods: ModCtrl, Code: KeyRune, Rune: r}
}

// Special returns the key event for a named key.
func Special(code KeyCode) Key {
	return Key{Code: code}
}

// String renders the key in the form accepted by ParseKey, e.g. "ctrl+c".
func (k Key) String() string {
	var name string
	if k.Code == KeyRune {
		name = string(k.Rune)
	} else {
		name = keyNames[k.Code]
	}
	if mods := k.Mods.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// ParseKey parses the textual form of a key produced by Key.String.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, fmt.Errorf("empty key")
	}
	var k Key
	parts := strings.Split(s, "+")
	// A trailing "+" names the plus key itself.
	if strings.HasSuffix(s, "++") || s == "+" {
		parts = append(parts[:len(parts)-2], "+")
	}
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "ctrl":
			k.Mods |= ModCtrl
		case "alt":
			k.Mods |= ModAlt
		case "shift":
			k.Mods |= ModShift
		default:
			return Key{}, fmt.Errorf("unknown modifier %q in key %q", mod, s)
		}
	}
	name := parts[len(parts)-1]
	if code, ok := keyCodes[strings.ToLower(name)]; ok {
		k.Code = code
		return k, nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return Key{}, fmt.Errorf("unknown key %q", s)
	}
	k.Code = KeyRune
	k.Rune = runes[0]
	return k, nil
}

// MustParseKey is ParseKey for keys known to be valid. It panics on error.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MouseAction is what the pointer did.
type MouseAction uint8

const (
	MouseDown MouseAction = iota
	MouseUp
	MouseDrag
	MouseMove
	ScrollUp
	ScrollDown
	ScrollLeft
	ScrollRight
)

func (a MouseAction) String() string {
	switch a {
	case MouseDown:
		return "down"
	case MouseUp:
		return "up"
	case MouseDrag:
		return "drag"
	case MouseMove:
		return "move"
	case ScrollUp:
		return "scroll-up"
	case ScrollDown:
		return "scroll-down"
	case ScrollLeft:
		return "scroll-left"
	case ScrollRight:
		return "scroll-right"
	}
	return fmt.Sprintf("action(%d)", a)
}

// Button identifies a mouse button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Mouse is a pointer action at Loc. The core rewrites Loc into the receiving
// node's canvas coordinates before calling its handler.
type Mouse struct {
	Action MouseAction
	Button Button
	Mods   Mods
	Loc    geom.Point
}

func (Mouse) event() {}

// Resize reports a new terminal size.
type Resize struct {
	Size geom.Expanse
}

func (Resize) event() {}

// Tick asks the core to run any poll callbacks that are due at At.
type Tick struct {
	At time.Time
}

func (Tick) event() {}
