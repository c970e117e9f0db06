package ui

import (
	"github.com/atomicstack/lesson-console/internal/logging/events"
	"github.com/atomicstack/lesson-console/internal/view"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (h *Home) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return tea.Quit
	case key.Matches(msg, h.keys.Back):
		return h.handleEscapeKey()
	case key.Matches(msg, h.keys.Enter):
		return h.handleEnterKey()
	case key.Matches(msg, h.keys.Next):
		h.cycleFocus(1)
		return nil
	case key.Matches(msg, h.keys.Prev):
		h.cycleFocus(-1)
		return nil
	}
	if h.focus != focusLessons {
		return h.handlePanelKey(msg)
	}
	if h.handleTextInput(msg) {
		return nil
	}
	switch {
	case key.Matches(msg, h.keys.Up):
		h.moveCursor(h.list.MoveUp)
	case key.Matches(msg, h.keys.Down):
		h.moveCursor(h.list.MoveDown)
	case key.Matches(msg, h.keys.Top):
		h.moveCursor(h.list.MoveHome)
	case key.Matches(msg, h.keys.Bottom):
		h.moveCursor(h.list.MoveEnd)
	}
	return nil
}

func (h *Home) handleEscapeKey() tea.Cmd {
	if h.list.Filter != "" {
		before := h.list.FilterCursorPos()
		h.list.ClearFilter()
		h.noteFilterCursorChange(before)
		h.errMsg = ""
		events.Filter.Cleared()
		return nil
	}
	if h.focus != focusLessons {
		h.focus = focusLessons
		return nil
	}
	return tea.Quit
}

func (h *Home) handleEnterKey() tea.Cmd {
	if action := h.focus.action(); action != "" {
		return h.Invoke(action)
	}
	entry, ok := h.list.Current()
	if !ok {
		return nil
	}
	_ = h.TriggerLesson(view.ID(entry.ID))
	return nil
}

func (h *Home) handlePanelKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, h.keys.Left):
		h.focus = focusHealthCheck
	case key.Matches(msg, h.keys.Right):
		h.focus = focusHelloWorld
	case key.Matches(msg, h.keys.Up):
		h.focus = focusLessons
	}
	return nil
}

func (h *Home) cycleFocus(delta int) {
	next := (int(h.focus) + delta) % int(focusCount)
	if next < 0 {
		next += int(focusCount)
	}
	h.focus = focusTarget(next)
	events.UI.Cursor(next)
}

func (h *Home) moveCursor(move func() bool) {
	if move() {
		events.UI.Cursor(h.list.Cursor)
	}
}

// mountHome puts the home tree back on the surface.
func (m *Model) mountHome(reason string) tea.Cmd {
	events.UI.Home(reason)
	return tea.Batch(m.root.Mount(m.home), m.syncSize(), m.titleCmd())
}

func (m *Model) homeMounted() bool {
	return m.root.Current() == m.home
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Back) && !m.homeMounted():
		return m.mountHome("esc")
	}
	return m.forward(keyMsg)
}
