// Package state holds the model behind list widgets: items, a fuzzy
// filter, the cursor, the scroll offset and the selection set.
package state

import "strings"

// Item is one row of a list.
type Item struct {
	ID    string
	Label string
}

// List is the state of a filterable list. Items is the filtered view of Full.
type List struct {
	Items        []Item
	Full         []Item
	Filter       string
	FilterCursor int
	Cursor       int
	LastCursor   int
	Offset       int
	MultiSelect  bool
	Selected     map[string]struct{}
}

// NewList returns a list over items with the cursor on the first row.
func NewList(items []Item) *List {
	l := &List{LastCursor: -1, Selected: make(map[string]struct{})}
	l.SetItems(items)
	return l
}

// SetItems replaces the full item set, reapplying the filter and dropping
// selections that no longer exist.
func (l *List) SetItems(items []Item) {
	l.Full = cloneItems(items)
	l.pruneSelection()
	l.refilter()
	if l.Offset < 0 || l.Offset >= len(l.Items) {
		l.Offset = 0
	}
}

// Current returns the item under the cursor.
func (l *List) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the position of id in the filtered items, or -1.
func (l *List) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

func (l *List) pruneSelection() {
	if len(l.Selected) == 0 {
		return
	}
	valid := make(map[string]struct{}, len(l.Full))
	for _, item := range l.Full {
		valid[item.ID] = struct{}{}
	}
	for id := range l.Selected {
		if _, ok := valid[id]; !ok {
			delete(l.Selected, id)
		}
	}
}

// IsSelected reports whether id is in the selection set.
func (l *List) IsSelected(id string) bool {
	_, ok := l.Selected[id]
	return ok
}

// ToggleCurrent flips the selection of the item under the cursor. It does
// nothing unless the list allows multiple selection.
func (l *List) ToggleCurrent() bool {
	item, ok := l.Current()
	if !l.MultiSelect || !ok {
		return false
	}
	if l.Selected == nil {
		l.Selected = make(map[string]struct{})
	}
	if l.IsSelected(item.ID) {
		delete(l.Selected, item.ID)
	} else {
		l.Selected[item.ID] = struct{}{}
	}
	return true
}

// SelectedItems returns the selected items in display order.
func (l *List) SelectedItems() []Item {
	var out []Item
	for _, item := range l.Items {
		if l.IsSelected(item.ID) {
			out = append(out, item)
		}
	}
	return out
}

// String joins the visible labels, one per line.
func (l *List) String() string {
	labels := make([]string, len(l.Items))
	for i, item := range l.Items {
		labels[i] = item.Label
	}
	return strings.Join(labels, "\n")
}
