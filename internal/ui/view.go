package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/lesson-console/internal/lesson"
	"github.com/atomicstack/lesson-console/internal/panel"
	"github.com/atomicstack/lesson-console/internal/theme"
	"github.com/atomicstack/lesson-console/internal/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	lessonsHeading = "Lessons"
	itemIndicator  = "▌"
	// status line plus filter prompt
	bottomBarRows = 2
)

type styledLine struct {
	text   string
	style  *lipgloss.Style
	raw    bool // already styled; truncate ANSI-aware and skip styling
	zoneID string
}

// View implements mount.Tree.
func (h *Home) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: lessonsHeading, style: styles.Section})
	lines = append(lines, h.lessonLines()...)
	lines = append(lines, styledLine{})
	lines = append(lines, h.panelLines()...)
	if h.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: h.help.View(h.keys), raw: true})
	}
	lines = limitHeight(lines, h.height-bottomBarRows, h.width)
	lines = applyWidth(lines, h.width)

	var status styledLine
	if h.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", h.errMsg), style: styles.Error}
	}
	bottom := applyWidth([]styledLine{status, {text: h.filterPrompt(), raw: true}}, h.width)
	lines = append(lines, bottom...)
	return renderLines(lines, h.mark)
}

func (h *Home) lessonLines() []styledLine {
	items := h.list.Items
	if len(items) == 0 {
		msg := "(no lessons)"
		if h.list.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", h.list.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	visible := make([]*lesson.Selector, len(items))
	for i, item := range items {
		sel, ok := h.selectors[view.ID(item.ID)]
		if !ok {
			sel = lesson.NewSelector(view.ID(item.ID), item.Label, h.resolver, h.surface).WithDescription(item.Description)
		}
		visible[i] = sel
	}
	rendered := lesson.RenderAll(visible, h.list.Cursor)
	lines := make([]styledLine, len(items))
	for i, item := range items {
		indicator := styles.ItemIndicator
		if i == h.list.Cursor && h.focus == focusLessons {
			indicator = styles.SelectedItemIndicator
		}
		lines[i] = styledLine{
			text:   theme.Render(indicator, itemIndicator) + " " + rendered[i],
			raw:    true,
			zoneID: lessonZoneID(item.ID),
		}
	}
	return lines
}

func (h *Home) panelLines() []styledLine {
	if h.panel == nil {
		return nil
	}
	rendered := h.panel.RenderLines(h.focus.action(), func(a panel.Action, text string) string {
		return h.mark(panelZoneID(a), text)
	})
	lines := make([]styledLine, len(rendered))
	for i, text := range rendered {
		lines[i] = styledLine{text: text, raw: true}
	}
	return lines
}

func (h *Home) mark(id, text string) string {
	if h.zones == nil || id == "" {
		return text
	}
	return h.zones.Mark(id, text)
}

func lessonZoneID(id string) string {
	return "lesson:" + id
}

func panelZoneID(a panel.Action) string {
	return "panel:" + string(a)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine, mark func(id, text string) string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		if line.zoneID != "" && mark != nil {
			text = mark(line.zoneID, text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
