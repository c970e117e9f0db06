package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the query and the filter cursor, then re-filters the
// rows. Starting a filter remembers the cursor; clearing it restores it.
func (l *List) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	wasFiltering := strings.TrimSpace(l.Filter) != ""

	l.Filter = query
	if n := len([]rune(query)); cursor > n {
		cursor = n
	}
	if cursor < 0 {
		cursor = 0
	}
	l.FilterCursor = cursor

	switch {
	case trimmed != "":
		if !wasFiltering {
			l.LastCursor = l.Cursor
		}
		l.applyFilter()
		l.Cursor = BestMatchIndex(l.Items, trimmed)
		l.clampCursor()
	case wasFiltering:
		l.applyFilter()
		if l.LastCursor >= 0 {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
		l.clampCursor()
	default:
		l.applyFilter()
	}
}

// ClearFilter drops the query. It reports whether anything changed.
func (l *List) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

func (l *List) applyFilter() {
	l.Items = FilterEntries(l.Full, l.Filter)
	l.clampCursor()
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *List) FilterCursorPos() int {
	n := len([]rune(l.Filter))
	switch {
	case l.FilterCursor < 0:
		return 0
	case l.FilterCursor > n:
		return n
	}
	return l.FilterCursor
}

// InsertFilterText inserts text at the filter cursor.
func (l *List) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward removes the rune before the filter cursor.
func (l *List) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	l.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward removes the word before the filter cursor.
func (l *List) DeleteFilterWordBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	start := wordStart(runes, pos)
	updated := append(runes[:start:start], runes[pos:]...)
	l.SetFilter(string(updated), start)
	return true
}

// MoveFilterCursor shifts the filter cursor by delta runes.
func (l *List) MoveFilterCursor(delta int) bool {
	pos := l.FilterCursorPos()
	next := pos + delta
	n := len([]rune(l.Filter))
	if next < 0 {
		next = 0
	}
	if next > n {
		next = n
	}
	if next == pos {
		return false
	}
	l.FilterCursor = next
	return true
}

// MoveFilterCursorStart moves the filter cursor to the start of the query.
func (l *List) MoveFilterCursorStart() bool {
	return l.MoveFilterCursor(-l.FilterCursorPos())
}

// MoveFilterCursorEnd moves the filter cursor to the end of the query.
func (l *List) MoveFilterCursorEnd() bool {
	return l.MoveFilterCursor(len([]rune(l.Filter)) - l.FilterCursorPos())
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

// FilterEntries returns the entries matching query, in their original order.
// Matching is fuzzy over the label and description, falling back to a
// substring match on the ID.
func FilterEntries(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneEntries(entries)
	}
	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.searchText()
	}
	matched := make(map[int]struct{})
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, texts) {
		matched[rank.OriginalIndex] = struct{}{}
	}
	lower := strings.ToLower(trimmed)
	out := make([]Entry, 0, len(entries))
	for i, entry := range entries {
		_, ok := matched[i]
		if ok || strings.Contains(strings.ToLower(entry.ID), lower) {
			out = append(out, entry)
		}
	}
	return out
}

// BestMatchIndex picks the row the cursor should land on for query: an exact
// label or ID match, then a label prefix, then the closest fuzzy match.
func BestMatchIndex(entries []Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	for i, entry := range entries {
		if strings.EqualFold(entry.Label, trimmed) || strings.EqualFold(entry.ID, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
