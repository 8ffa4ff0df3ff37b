// Package commands is the explicit command table. Nodes publish named
// commands, the registry records them at startup and a binding table maps
// keys to commands according to where focus is.
package commands

import (
	"errors"
	"strings"

	"github.com/atomicstack/canopy/internal/canopy"
)

var (
	// ErrUnknownCommand is returned when a command name is not registered
	// or no node in the tree can run it.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrBinding is returned for malformed key bindings.
	ErrBinding = errors.New("invalid binding")
)

// Command describes one named operation of a node.
type Command struct {
	Node string
	Name string
	Doc  string
}

// FullName is the command's registry key, "node.command".
func (c Command) FullName() string {
	return c.Node + "." + c.Name
}

// Commander is implemented by nodes that expose commands. Dispatch is called
// with the bare command name.
type Commander interface {
	canopy.Node
	Commands() []Command
	Dispatch(c canopy.Context, name string) (canopy.Outcome, error)
}

// splitName breaks "node.command" into its parts. The node part may itself
// contain dots; the command is everything after the last one.
func splitName(full string) (string, string, bool) {
	idx := strings.LastIndex(full, ".")
	if idx <= 0 || idx == len(full)-1 {
		return "", "", false
	}
	return full[:idx], full[idx+1:], true
}
