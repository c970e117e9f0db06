package ui

import (
	"github.com/atomicstack/lesson-console/internal/panel"
	"github.com/atomicstack/lesson-console/internal/view"
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg turns left clicks on home controls into activations and
// forwards everything else to the mounted tree.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if m.zones == nil || !m.homeMounted() || !isLeftClick(ev) {
		return m.forward(ev)
	}
	for _, item := range m.home.list.Items {
		if !m.inZone(lessonZoneID(item.ID), ev) {
			continue
		}
		before := m.root.Generation()
		if err := m.home.TriggerLesson(view.ID(item.ID)); err != nil || m.root.Generation() == before {
			return nil
		}
		return tea.Batch(m.root.Current().Init(), m.syncSize(), m.titleCmd())
	}
	for _, a := range panel.Actions() {
		if m.inZone(panelZoneID(a), ev) {
			return m.home.Invoke(a)
		}
	}
	return nil
}

func (m *Model) inZone(id string, ev tea.MouseMsg) bool {
	info := m.zones.Get(id)
	if info == nil {
		return false
	}
	return info.InBounds(ev)
}

func isLeftClick(ev tea.MouseMsg) bool {
	return ev.Button == tea.MouseButtonLeft && ev.Action == tea.MouseActionRelease
}
