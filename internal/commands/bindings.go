package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/event"
	"github.com/atomicstack/canopy/internal/logging/events"
)

// Binding ties a key, under a focus path filter, to a command.
type Binding struct {
	Key     event.Key
	Filter  []string
	Anchor  bool
	Command string
}

// Bindings is the key binding table. It implements canopy.Keymap.
type Bindings struct {
	registry *Registry
	bindings []Binding
}

// NewBindings returns an empty table whose commands must exist in r.
func NewBindings(r *Registry) *Bindings {
	return &Bindings{registry: r}
}

// Bind maps key to command while the focus path matches filter. The filter is
// a sequence of node names, "panes/list", that must appear contiguously in the
// focus path; a leading "/" anchors it at the root. An empty filter matches
// everywhere.
func (b *Bindings) Bind(key, filter, command string) error {
	k, err := event.ParseKey(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}
	if _, ok := b.registry.Lookup(command); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
	anchor := strings.HasPrefix(filter, "/")
	b.bindings = append(b.bindings, Binding{
		Key:     k,
		Filter:  pathParts(filter),
		Anchor:  anchor,
		Command: command,
	})
	return nil
}

// Resolve returns the command bound to k at the given focus path. Among
// matching bindings the one with the longest filter wins; equal lengths go
// to the most recently added.
func (b *Bindings) Resolve(path string, k event.Key) (string, bool) {
	parts := pathParts(path)
	best := -1
	for i, bd := range b.bindings {
		if bd.Key != k || !matchPath(parts, bd.Filter, bd.Anchor) {
			continue
		}
		if best < 0 || len(bd.Filter) >= len(b.bindings[best].Filter) {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return b.bindings[best].Command, true
}

// ResolveKey runs the command bound to k, if any.
func (b *Bindings) ResolveKey(c canopy.Context, root canopy.Node, path string, k event.Key) (canopy.Outcome, bool, error) {
	name, ok := b.Resolve(path, k)
	if !ok {
		return canopy.Ignore(), false, nil
	}
	out, err := Run(c, root, name)
	if err != nil {
		return canopy.Ignore(), true, err
	}
	return out, true, nil
}

// Run finds the node that owns the named command and dispatches it. Nodes on
// the focus path are preferred, deepest first; otherwise the first match in
// preorder is used.
func Run(c canopy.Context, root canopy.Node, name string) (canopy.Outcome, error) {
	nodeName, cmd, ok := splitName(name)
	if !ok {
		events.Command.Unknown(name)
		return canopy.Ignore(), fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	target, err := findCommander(c, root, nodeName)
	if err != nil {
		return canopy.Ignore(), err
	}
	if target == nil {
		events.Command.Unknown(name)
		return canopy.Ignore(), fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	events.Command.Run(name, target.Name())
	out, err := target.Dispatch(c, cmd)
	if err != nil {
		events.Command.Error(name, err)
		return canopy.Ignore(), fmt.Errorf("command %s: %w", name, err)
	}
	if out.IsHandled() {
		c.Taint(target)
	}
	return out, nil
}

var errFound = errors.New("found")

func findCommander(c canopy.Context, root canopy.Node, name string) (Commander, error) {
	var (
		onPath  Commander
		depth   int
		inOrder Commander
	)
	_, err := canopy.Preorder(root, func(n canopy.Node) (canopy.Walk, error) {
		if n.State().Hidden() {
			return canopy.WalkSkip, nil
		}
		cmd, ok := n.(Commander)
		if !ok || n.Name() != name {
			return canopy.WalkContinue, nil
		}
		if inOrder == nil {
			inOrder = cmd
		}
		if c.IsOnFocusPath(n) {
			if d := c.FocusDepth(n); onPath == nil || d < depth {
				onPath, depth = cmd, d
			}
			if depth == 1 {
				return canopy.WalkSkip, errFound
			}
		}
		return canopy.WalkContinue, nil
	})
	if err != nil && !errors.Is(err, errFound) {
		return nil, err
	}
	if onPath != nil {
		return onPath, nil
	}
	return inOrder, nil
}

func pathParts(path string) []string {
	var out []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// matchPath reports whether filter appears as a contiguous run of path
// components, starting at the root when anchored.
func matchPath(path, filter []string, anchor bool) bool {
	if len(filter) == 0 {
		return true
	}
	last := len(path) - len(filter)
	if anchor && last > 0 {
		last = 0
	}
outer:
	for i := 0; i <= last; i++ {
		for j, f := range filter {
			if path[i+j] != f {
				continue outer
			}
		}
		return true
	}
	return false
}
