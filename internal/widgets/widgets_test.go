package widgets

import (
	"testing"

	"github.com/atomicstack/canopy/internal/canopy"
	"github.com/atomicstack/canopy/internal/geom"
)

// screen is a core and buffer rendering one tree.
type screen struct {
	t    *testing.T
	core *canopy.Canopy
	buf  *canopy.TermBuf
	root canopy.Node
}

func newScreen(t *testing.T, root canopy.Node, w, h uint16) *screen {
	t.Helper()
	s := &screen{t: t, core: canopy.New(), buf: canopy.NewTermBuf(geom.NewExpanse(w, h)), root: root}
	if err := s.core.SetRootSize(geom.NewExpanse(w, h), root); err != nil {
		t.Fatalf("set root size: %v", err)
	}
	s.render()
	return s
}

func (s *screen) render() {
	s.t.Helper()
	if err := s.core.Render(s.buf, s.root); err != nil {
		s.t.Fatalf("render: %v", err)
	}
}

func (s *screen) line(y int) string {
	return s.buf.Lines()[y]
}
