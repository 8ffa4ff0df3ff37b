package widgets

import (
	"github.com/atomicstack/canopy/internal/canopy"
)

// Panes arranges nodes in a grid of columns, each split into rows. Columns
// share the width evenly; rows share their column's height.
type Panes struct {
	canopy.NodeState
	cols [][]canopy.Node
}

// NewPanes returns a grid holding a single node.
func NewPanes(n canopy.Node) *Panes {
	p := &Panes{cols: [][]canopy.Node{{n}}}
	p.SetName("panes")
	return p
}

// Shape lists the number of rows in each column.
func (p *Panes) Shape() []uint16 {
	out := make([]uint16, len(p.cols))
	for i, col := range p.cols {
		out[i] = uint16(len(col))
	}
	return out
}

// Pane returns the node at column x, row y.
func (p *Panes) Pane(x, y int) (canopy.Node, bool) {
	if x < 0 || x >= len(p.cols) || y < 0 || y >= len(p.cols[x]) {
		return nil, false
	}
	return p.cols[x][y], true
}

// FocusCoords finds the pane containing the focus.
func (p *Panes) FocusCoords(c canopy.Context) (int, int, bool) {
	for x, col := range p.cols {
		for y, n := range col {
			if c.IsOnFocusPath(n) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// InsertRow adds n beneath the focused pane, or as a new column when no pane
// has focus.
func (p *Panes) InsertRow(c canopy.Context, n canopy.Node) error {
	if x, y, ok := p.FocusCoords(c); ok {
		col := p.cols[x]
		col = append(col[:y+1], append([]canopy.Node{n}, col[y+1:]...)...)
		p.cols[x] = col
	} else {
		p.cols = append(p.cols, []canopy.Node{n})
	}
	return c.TaintTree(p)
}

// InsertCol adds n in a new column to the right of the focused pane, or at
// the far right when no pane has focus. Focus moves into n.
func (p *Panes) InsertCol(c canopy.Context, n canopy.Node) error {
	x, _, ok := p.FocusCoords(c)
	if _, err := c.FocusFirst(n); err != nil {
		return err
	}
	if ok {
		p.cols = append(p.cols[:x+1], append([][]canopy.Node{{n}}, p.cols[x+1:]...)...)
	} else {
		p.cols = append(p.cols, []canopy.Node{n})
	}
	return c.TaintTree(p)
}

// DeleteFocus removes the focused pane, moving focus to the next focusable
// node first. A column left empty is removed.
func (p *Panes) DeleteFocus(c canopy.Context, root canopy.Node) error {
	x, y, ok := p.FocusCoords(c)
	if !ok {
		return nil
	}
	if _, err := c.FocusNext(root); err != nil {
		return err
	}
	p.cols[x] = append(p.cols[x][:y], p.cols[x][y+1:]...)
	if len(p.cols[x]) == 0 {
		p.cols = append(p.cols[:x], p.cols[x+1:]...)
	}
	return c.TaintTree(p)
}

func (p *Panes) Children(f func(canopy.Node) error) error {
	for _, col := range p.cols {
		for _, n := range col {
			if err := f(n); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Panes) Layout(l *canopy.Layout) error {
	if len(p.cols) == 0 {
		return nil
	}
	grid, err := p.ViewPort().Screen().SplitPanes(p.Shape())
	if err != nil {
		return err
	}
	for x, col := range p.cols {
		for y, n := range col {
			if err := l.Place(n, grid[x][y]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Render clears the area once the last pane has been deleted; otherwise the
// panes cover it.
func (p *Panes) Render(_ canopy.Context, r *canopy.Render) error {
	if len(p.cols) == 0 {
		return r.Clear("/")
	}
	return nil
}
