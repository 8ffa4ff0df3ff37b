package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter text and its edit cursor. Starting a filter
// remembers the cursor; clearing it restores the remembered position.
func (l *List) SetFilter(query string, cursor int) {
	query = strings.TrimRight(query, "\n")
	was := strings.TrimSpace(l.Filter) != ""
	now := strings.TrimSpace(query) != ""

	l.Filter = query
	l.FilterCursor = min(max(cursor, 0), len([]rune(query)))
	if now && !was {
		l.LastCursor = l.Cursor
	}
	l.refilter()

	switch {
	case now:
		l.Cursor = max(BestMatchIndex(l.Items, query), 0)
	case was:
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		}
		l.LastCursor = -1
	}
}

func (l *List) refilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor, l.Offset = 0, 0
		return
	}
	l.Cursor = min(max(l.Cursor, 0), len(l.Items)-1)
	if l.Offset >= len(l.Items) {
		l.Offset = 0
	}
}

func (l *List) filterPos() int {
	return min(max(l.FilterCursor, 0), len([]rune(l.Filter)))
}

// InsertFilter inserts text at the filter cursor.
func (l *List) InsertFilter(text string) bool {
	if text == "" {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.filterPos()
	ins := []rune(text)
	updated := make([]rune, 0, len(runes)+len(ins))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, ins...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(ins))
	return true
}

// DeleteFilterRune removes the rune before the filter cursor.
func (l *List) DeleteFilterRune() bool {
	pos := l.filterPos()
	if pos == 0 {
		return false
	}
	runes := []rune(l.Filter)
	l.SetFilter(string(runes[:pos-1])+string(runes[pos:]), pos-1)
	return true
}

// DeleteFilterWord removes the word before the filter cursor, along with any
// spaces between it and the cursor.
func (l *List) DeleteFilterWord() bool {
	pos := l.filterPos()
	if pos == 0 {
		return false
	}
	runes := []rune(l.Filter)
	start := wordStart(runes, pos)
	l.SetFilter(string(runes[:start])+string(runes[pos:]), start)
	return true
}

// MoveFilterCursor moves the filter cursor by delta runes.
func (l *List) MoveFilterCursor(delta int) bool {
	return l.setFilterPos(l.filterPos() + delta)
}

// MoveFilterWord moves the filter cursor one word back (negative) or
// forward (positive).
func (l *List) MoveFilterWord(dir int) bool {
	runes := []rune(l.Filter)
	if dir < 0 {
		return l.setFilterPos(wordStart(runes, l.filterPos()))
	}
	return l.setFilterPos(wordEnd(runes, l.filterPos()))
}

// MoveFilterHome moves the filter cursor to the start.
func (l *List) MoveFilterHome() bool { return l.setFilterPos(0) }

// MoveFilterEnd moves the filter cursor to the end.
func (l *List) MoveFilterEnd() bool { return l.setFilterPos(len([]rune(l.Filter))) }

func (l *List) setFilterPos(pos int) bool {
	pos = min(max(pos, 0), len([]rune(l.Filter)))
	if pos == l.filterPos() {
		return false
	}
	l.FilterCursor = pos
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

// FilterItems returns the items that fuzzy-match query, in their original
// order. When nothing fuzzy-matches, a plain substring match on label or ID
// is tried instead.
func FilterItems(items []Item, query string) []Item {
	q := strings.TrimSpace(query)
	if q == "" {
		return cloneItems(items)
	}
	ranks := fuzzy.RankFindNormalizedFold(q, labels(items))
	if len(ranks) > 0 {
		hit := make(map[int]bool, len(ranks))
		for _, r := range ranks {
			hit[r.OriginalIndex] = true
		}
		out := make([]Item, 0, len(hit))
		for i, item := range items {
			if hit[i] {
				out = append(out, item)
			}
		}
		return out
	}
	lower := strings.ToLower(q)
	var out []Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) || strings.Contains(strings.ToLower(item.ID), lower) {
			out = append(out, item)
		}
	}
	return out
}

// BestMatchIndex picks the item a query most likely refers to: an exact
// label or ID, then a label prefix, an ID prefix, a substring, and finally
// the closest fuzzy match. It returns -1 for an empty slice and 0 when
// nothing matches.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	q := strings.TrimSpace(query)
	if q == "" {
		return 0
	}
	lower := strings.ToLower(q)
	tests := []func(Item) bool{
		func(it Item) bool { return strings.EqualFold(it.Label, q) || strings.EqualFold(it.ID, q) },
		func(it Item) bool { return strings.HasPrefix(strings.ToLower(it.Label), lower) },
		func(it Item) bool { return strings.HasPrefix(strings.ToLower(it.ID), lower) },
		func(it Item) bool { return strings.Contains(strings.ToLower(it.ID), lower) },
		func(it Item) bool { return strings.Contains(strings.ToLower(it.Label), lower) },
	}
	for _, test := range tests {
		for i, item := range items {
			if test(item) {
				return i
			}
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(q, labels(items))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance || (r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
			best = r
		}
	}
	return best.OriginalIndex
}

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}
