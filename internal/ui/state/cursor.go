package state

// MoveUp moves the cursor one row up, wrapping to the last row.
func (l *List) MoveUp() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	old := l.Cursor
	if l.Cursor <= 0 {
		l.Cursor = n - 1
	} else {
		l.Cursor--
	}
	return old != l.Cursor
}

// MoveDown moves the cursor one row down, wrapping to the first row.
func (l *List) MoveDown() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	old := l.Cursor
	if l.Cursor >= n-1 {
		l.Cursor = 0
	} else {
		l.Cursor++
	}
	return old != l.Cursor
}

// MoveHome moves the cursor to the first row.
func (l *List) MoveHome() bool {
	if len(l.Items) == 0 {
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveEnd moves the cursor to the last row.
func (l *List) MoveEnd() bool {
	if len(l.Items) == 0 {
		return false
	}
	old := l.Cursor
	l.Cursor = len(l.Items) - 1
	return old != l.Cursor
}

func (l *List) clampCursor() {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
}
