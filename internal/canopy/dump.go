package canopy

import (
	"fmt"
	"strings"

	"github.com/atomicstack/canopy/internal/format/table"
	"github.com/atomicstack/canopy/internal/logging/events"
)

// Dump describes the tree under root, one line per node in preorder: the
// indented name, the node ID, its screen, canvas and view, and flags for
// focus ("F" leaf, "f" ancestor) and hidden ("H").
func (c *Canopy) Dump(root Node) ([]string, error) {
	rows := [][]string{{"NODE", "ID", "SCREEN", "CANVAS", "VIEW", "FLAGS"}}
	var walk func(n Node, depth int) error
	walk = func(n Node, depth int) error {
		st := n.State()
		var flags strings.Builder
		switch {
		case c.IsFocused(n):
			flags.WriteString("F")
		case c.IsFocusAncestor(n):
			flags.WriteString("f")
		}
		if st.hidden {
			flags.WriteString("H")
		}
		name := n.Name()
		if name == "" {
			name = "?"
		}
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + name,
			fmt.Sprint(st.ID()),
			st.vp.Screen().String(),
			st.vp.Canvas().String(),
			st.vp.View().String(),
			flags.String(),
		})
		return n.Children(func(child Node) error {
			return walk(child, depth+1)
		})
	}
	if err := walk(root, 0); err != nil {
		return nil, err
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	events.Tree.Dump(lines)
	return lines, nil
}
