// Package theme resolves named, path-structured styles. Style names look like
// "/frame/focused"; lookups fall back from the most specific name to its
// parents and finally to the root style "/".
package theme

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Root is the name of the fallback style.
const Root = "/"

// StyleMap holds named Lip Gloss styles.
type StyleMap struct {
	styles map[string]lipgloss.Style
}

// NewStyleMap returns a map containing only a plain root style.
func NewStyleMap() *StyleMap {
	return &StyleMap{styles: map[string]lipgloss.Style{Root: lipgloss.NewStyle()}}
}

// Add registers style under name, replacing any existing entry.
func (m *StyleMap) Add(name string, style lipgloss.Style) {
	m.styles[Normalize(name)] = style
}

// Lookup returns the style registered under exactly name.
func (m *StyleMap) Lookup(name string) (lipgloss.Style, bool) {
	s, ok := m.styles[Normalize(name)]
	return s, ok
}

// Style returns the style registered under name, or the root style.
func (m *StyleMap) Style(name string) lipgloss.Style {
	if s, ok := m.Lookup(name); ok {
		return s
	}
	return m.styles[Root]
}

// Names lists the registered style names in sorted order.
func (m *StyleMap) Names() []string {
	out := make([]string, 0, len(m.styles))
	for name := range m.styles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Normalize returns name in canonical "/a/b" form.
func Normalize(name string) string {
	parts := split(name)
	if len(parts) == 0 {
		return Root
	}
	return "/" + strings.Join(parts, "/")
}

func split(name string) []string {
	var out []string
	for _, p := range strings.Split(name, "/") {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Manager is the layered style resolver used during a render sweep. Layers
// pushed by a node apply to that node and its descendants, and are discarded
// when the traversal leaves the node.
type Manager struct {
	layers []string
	marks  []int
}

// NewManager returns a manager with no layers.
func NewManager() *Manager {
	return &Manager{}
}

// Reset discards all layers and marks.
func (m *Manager) Reset() {
	m.layers = m.layers[:0]
	m.marks = m.marks[:0]
}

// Push records the current layer depth so a later Pop can restore it.
func (m *Manager) Push() {
	m.marks = append(m.marks, len(m.layers))
}

// Pop restores the layer depth saved by the matching Push.
func (m *Manager) Pop() {
	if len(m.marks) == 0 {
		return
	}
	n := m.marks[len(m.marks)-1]
	m.marks = m.marks[:len(m.marks)-1]
	m.layers = m.layers[:n]
}

// PushLayer adds a named layer.
func (m *Manager) PushLayer(name string) {
	m.layers = append(m.layers, split(name)...)
}

// Layers returns the active layers, outermost first.
func (m *Manager) Layers() []string {
	return append([]string(nil), m.layers...)
}

// Resolve finds the best match for name in styles. Candidates are tried with
// every suffix of the layer stack prefixed (longest first) and every prefix
// of name (longest first). It returns the matched style and its name, or the
// root style.
func (m *Manager) Resolve(styles *StyleMap, name string) (lipgloss.Style, string) {
	parts := split(name)
	for i := len(m.layers); i >= 0; i-- {
		for j := len(parts); j > 0; j-- {
			candidate := "/" + strings.Join(append(append([]string(nil), m.layers[:i]...), parts[:j]...), "/")
			if s, ok := styles.styles[candidate]; ok {
				return s, candidate
			}
		}
	}
	return styles.styles[Root], Root
}

var palette = []struct {
	name  string
	style lipgloss.Style
}{
	{"/", lipgloss.NewStyle().Foreground(lipgloss.Color("249"))},
	{"/frame", lipgloss.NewStyle().Foreground(lipgloss.Color("238"))},
	{"/frame/focused", lipgloss.NewStyle().Foreground(lipgloss.Color("33"))},
	{"/frame/active", lipgloss.NewStyle().Foreground(lipgloss.Color("245"))},
	{"/frame/title", lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)},
	{"/frame/scroll", lipgloss.NewStyle().Foreground(lipgloss.Color("33"))},
	{"/text", lipgloss.NewStyle().Foreground(lipgloss.Color("250"))},
	{"/list/item", lipgloss.NewStyle().Foreground(lipgloss.Color("249"))},
	{"/list/selected", lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true)},
	{"/list/empty", lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true)},
	{"/input", lipgloss.NewStyle().Foreground(lipgloss.Color("249"))},
	{"/input/prompt", lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)},
	{"/input/placeholder", lipgloss.NewStyle().Foreground(lipgloss.Color("241"))},
	{"/statusbar", lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236"))},
	{"/statusbar/error", lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("236")).Bold(true)},
	{"/tab/active", lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true)},
	{"/tab/inactive", lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236"))},
	{"/inspector", lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("234"))},
	{"/cursor", lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33"))},
}

// Default returns the standard style map. Each call returns a fresh map.
func Default() *StyleMap {
	m := NewStyleMap()
	for _, entry := range palette {
		m.Add(entry.name, entry.style)
	}
	return m
}
