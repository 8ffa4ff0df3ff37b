package commands

import (
	"fmt"
	"sort"
)

// Registry holds every command known to the program, keyed by full name.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Add registers cmd. Registering the same full name twice is an error.
func (r *Registry) Add(cmd Command) error {
	if cmd.Node == "" || cmd.Name == "" {
		return fmt.Errorf("%w: command %q on node %q", ErrBinding, cmd.Name, cmd.Node)
	}
	name := cmd.FullName()
	if _, ok := r.commands[name]; ok {
		return fmt.Errorf("command %s already registered", name)
	}
	r.commands[name] = cmd
	return nil
}

// Load registers every command a node exposes. Nodes sharing a name share
// their commands, so names already registered are skipped.
func (r *Registry) Load(n Commander) error {
	for _, cmd := range n.Commands() {
		if _, ok := r.commands[cmd.FullName()]; ok {
			continue
		}
		if err := r.Add(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Lookup finds a command by full name.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands ordered by full name.
func (r *Registry) List() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName() < out[j].FullName()
	})
	return out
}
