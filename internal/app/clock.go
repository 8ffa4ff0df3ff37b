package app

import (
	"time"

	"github.com/atomicstack/canopy/internal/canopy"
)

const clockLayout = "15:04:05"

// clock shows the core's time, redrawn on the second.
type clock struct {
	canopy.NodeState
	now time.Time
}

func newClock() *clock {
	c := &clock{}
	c.SetName("clock")
	return c
}

func (k *clock) Poll(c canopy.Context) (time.Duration, bool) {
	k.now = c.Now()
	return time.Second - k.now.Sub(k.now.Truncate(time.Second)), true
}

func (k *clock) Render(c canopy.Context, r *canopy.Render) error {
	if k.now.IsZero() {
		k.now = c.Now()
	}
	return r.Text("/statusbar", r.ViewPort().View().FirstLine(), k.now.Format(clockLayout)+" ")
}
