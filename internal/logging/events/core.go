package events

import "github.com/atomicstack/canopy/internal/logging"

type FocusTracer struct{}

type RenderTracer struct{}

type DispatchTracer struct{}

type PollTracer struct{}

type TreeTracer struct{}

var (
	Focus    = FocusTracer{}
	Render   = RenderTracer{}
	Dispatch = DispatchTracer{}
	Poll     = PollTracer{}
	Tree     = TreeTracer{}
)

// Shift records a focus movement and the resulting focus path.
func (FocusTracer) Shift(op, path string) {
	logging.Trace("focus.shift", map[string]interface{}{"op": op, "path": path})
}

func (RenderTracer) Sweep(gen uint64, rendered, visited int) {
	logging.Trace("render.sweep", map[string]interface{}{
		"gen":      gen,
		"rendered": rendered,
		"visited":  visited,
	})
}

func (DispatchTracer) Key(key, path string, handled bool) {
	logging.Trace("dispatch.key", map[string]interface{}{"key": key, "path": path, "handled": handled})
}

func (DispatchTracer) Mouse(action string, x, y int, handled bool) {
	logging.Trace("dispatch.mouse", map[string]interface{}{
		"action":  action,
		"x":       x,
		"y":       y,
		"handled": handled,
	})
}

func (PollTracer) Fire(node string, next string) {
	logging.Trace("poll.fire", map[string]interface{}{"node": node, "next": next})
}

func (TreeTracer) Dump(lines []string) {
	logging.Trace("tree.dump", map[string]interface{}{"lines": lines})
}
