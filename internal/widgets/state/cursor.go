package state

// Home moves the cursor to the first item.
func (l *List) Home() bool {
	return l.moveTo(0)
}

// End moves the cursor to the last item.
func (l *List) End() bool {
	return l.moveTo(len(l.Items) - 1)
}

// Up moves the cursor up one item.
func (l *List) Up() bool { return l.moveBy(-1) }

// Down moves the cursor down one item.
func (l *List) Down() bool { return l.moveBy(1) }

// PageUp moves the cursor up by a page of the given height.
func (l *List) PageUp(page int) bool {
	return l.moveBy(-l.pageSize(page))
}

// PageDown moves the cursor down by a page of the given height.
func (l *List) PageDown(page int) bool {
	return l.moveBy(l.pageSize(page))
}

func (l *List) moveBy(delta int) bool {
	return l.moveTo(max(l.Cursor, 0) + delta)
}

// moveTo places the cursor at idx, clamped to the item range, and reports
// whether it moved.
func (l *List) moveTo(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = min(max(idx, 0), len(l.Items)-1)
	return l.Cursor != old
}

func (l *List) pageSize(page int) int {
	total := len(l.Items)
	if page <= 0 || page > total {
		page = total
	}
	return max(page, 1)
}

// Scroll keeps the cursor within a window of the given height by adjusting
// Offset, and returns the new offset.
func (l *List) Scroll(height int) int {
	if len(l.Items) == 0 {
		l.Cursor, l.Offset = 0, 0
		return 0
	}
	l.Cursor = min(max(l.Cursor, 0), len(l.Items)-1)
	if height <= 0 {
		l.Offset = 0
		return 0
	}
	maxOffset := max(len(l.Items)-height, 0)
	l.Offset = min(max(l.Offset, 0), maxOffset)
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor > l.Offset+height-1 {
		l.Offset = min(l.Cursor-height+1, maxOffset)
	}
	return l.Offset
}
