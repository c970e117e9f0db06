// Package state holds the filterable, cursor-addressed list shown on the home
// screen.
package state

// Entry is one row of a List.
type Entry struct {
	ID          string
	Label       string
	Description string
}

func (e Entry) searchText() string {
	if e.Description == "" {
		return e.Label
	}
	return e.Label + " " + e.Description
}

// List tracks the visible rows, the filter query and the cursor.
type List struct {
	Items        []Entry
	Full         []Entry
	Filter       string
	FilterCursor int
	Cursor       int
	// LastCursor remembers the cursor while a filter is active so clearing
	// the filter restores it.
	LastCursor int
}

// NewList returns a list positioned on its first row.
func NewList(entries []Entry) *List {
	l := &List{LastCursor: -1}
	l.SetEntries(entries)
	return l
}

// SetEntries replaces the rows and reapplies the current filter.
func (l *List) SetEntries(entries []Entry) {
	l.Full = cloneEntries(entries)
	l.applyFilter()
}

// Current returns the row under the cursor.
func (l *List) Current() (Entry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Entry{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the visible index of id, or -1.
func (l *List) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Select moves the cursor onto id when it is visible.
func (l *List) Select(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

func cloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
