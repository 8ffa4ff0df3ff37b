package canopy

import (
	"fmt"
	"sort"
	"time"

	"github.com/atomicstack/canopy/internal/logging/events"
)

// poller is the schedule of pending poll callbacks, keyed by node.
type poller struct {
	due map[NodeID]time.Time
}

func newPoller() *poller {
	return &poller{due: map[NodeID]time.Time{}}
}

func (p *poller) schedule(id NodeID, at time.Time) {
	p.due[id] = at
}

func (p *poller) next() (time.Time, bool) {
	var (
		earliest time.Time
		found    bool
	)
	for _, at := range p.due {
		if !found || at.Before(earliest) {
			earliest, found = at, true
		}
	}
	return earliest, found
}

// take removes and returns the nodes due at or before now, in deadline
// order.
func (p *poller) take(now time.Time) []NodeID {
	var ids []NodeID
	for id, at := range p.due {
		if !at.After(now) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := p.due[ids[i]], p.due[ids[j]]
		if a.Equal(b) {
			return ids[i] < ids[j]
		}
		return a.Before(b)
	})
	for _, id := range ids {
		delete(p.due, id)
	}
	return ids
}

// NextPoll reports the earliest pending poll deadline.
func (c *Canopy) NextPoll() (time.Time, bool) {
	return c.poller.next()
}

// PollDelay is the time from now until the next poll deadline, never
// negative.
func (c *Canopy) PollDelay(now time.Time) (time.Duration, bool) {
	next, ok := c.NextPoll()
	if !ok {
		return 0, false
	}
	return max(next.Sub(now), 0), true
}

// Poll runs the poll callback of every node under root that is due at now.
// Polled nodes are tainted and re-armed if they ask to be. Deadlines for
// nodes no longer in the tree are dropped.
func (c *Canopy) Poll(root Node, now time.Time) error {
	ids := c.poller.take(now)
	if len(ids) == 0 {
		return nil
	}
	due := make(map[NodeID]bool, len(ids))
	for _, id := range ids {
		due[id] = true
	}
	_, err := Preorder(root, func(n Node) (Void, error) {
		st := n.State()
		if !due[st.ID()] {
			return Void{}, nil
		}
		c.Taint(n)
		d, ok := n.Poll(c)
		next := "-"
		if ok {
			c.poller.schedule(st.ID(), now.Add(d))
			next = d.String()
		}
		events.Poll.Fire(n.Name(), next)
		return Void{}, nil
	})
	if err != nil {
		return fmt.Errorf("poll: %w", err)
	}
	return nil
}
