package ui

import (
	"unicode"

	"github.com/atomicstack/lesson-console/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filterPlaceholder = "(type to filter lessons)"

func (h *Home) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.filterCursor, cmd = h.filterCursor.Update(msg)
	return cmd
}

func (h *Home) noteFilterCursorChange(before int) {
	if before != h.list.FilterCursorPos() {
		h.filterCursorDirty = true
	}
}

// handleTextInput applies msg to the lesson filter. It reports whether the
// key was consumed.
func (h *Home) handleTextInput(msg tea.KeyMsg) bool {
	list := h.list
	before := list.FilterCursorPos()
	switch msg.String() {
	case "ctrl+u":
		if !list.ClearFilter() {
			return false
		}
		h.noteFilterCursorChange(before)
		h.errMsg = ""
		events.Filter.Cleared()
		return true
	case "ctrl+w":
		if !list.DeleteFilterWordBackward() {
			return false
		}
		h.noteFilterCursorChange(before)
		h.errMsg = ""
		events.Filter.WordBackspace(list.Filter)
		return true
	case "ctrl+a":
		return h.moveFilterCursor(list.MoveFilterCursorStart, before)
	case "ctrl+e":
		return h.moveFilterCursor(list.MoveFilterCursorEnd, before)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !list.DeleteFilterRuneBackward() {
			return false
		}
		h.noteFilterCursorChange(before)
		h.errMsg = ""
		events.Filter.Backspace(list.Filter)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return h.appendToFilter(string(msg.Runes), before)
	case tea.KeySpace:
		return h.appendToFilter(" ", before)
	case tea.KeyLeft:
		return h.moveFilterCursor(func() bool { return list.MoveFilterCursor(-1) }, before)
	case tea.KeyRight:
		return h.moveFilterCursor(func() bool { return list.MoveFilterCursor(1) }, before)
	}
	return false
}

func (h *Home) appendToFilter(text string, before int) bool {
	if !h.list.InsertFilterText(text) {
		return false
	}
	h.noteFilterCursorChange(before)
	h.errMsg = ""
	events.Filter.Append(h.list.Filter)
	return true
}

func (h *Home) moveFilterCursor(move func() bool, before int) bool {
	if !move() {
		return false
	}
	h.noteFilterCursorChange(before)
	events.Filter.Cursor(h.list.FilterCursor)
	return true
}

func (h *Home) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		h.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		h.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		h.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.FilterPrompt, "» ")

	if h.list.Filter == "" {
		runes := []rune(filterPlaceholder)
		if styles.FilterPlaceholder != nil {
			h.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := h.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}

	runes := []rune(h.list.Filter)
	pos := h.list.FilterCursorPos()
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	before := render(styles.Filter, string(runes[:pos]))
	return prompt + before + h.renderFilterCursor(caretRune) + after
}

func (h *Home) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	h.filterCursor.SetChar(char)

	base := h.filterCursor.TextStyle.Copy().Inline(true)
	if h.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
