package ui

import (
	"github.com/atomicstack/lesson-console/internal/lesson"
	"github.com/atomicstack/lesson-console/internal/logging/events"
	"github.com/atomicstack/lesson-console/internal/mount"
	"github.com/atomicstack/lesson-console/internal/panel"
	uistate "github.com/atomicstack/lesson-console/internal/ui/state"
	"github.com/atomicstack/lesson-console/internal/view"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

type focusTarget int

const (
	focusLessons focusTarget = iota
	focusHealthCheck
	focusHelloWorld
	focusCount
)

func (f focusTarget) action() panel.Action {
	switch f {
	case focusHealthCheck:
		return panel.HealthCheck
	case focusHelloWorld:
		return panel.HelloWorld
	}
	return ""
}

func focusFor(a panel.Action) focusTarget {
	switch a {
	case panel.HealthCheck:
		return focusHealthCheck
	case panel.HelloWorld:
		return focusHelloWorld
	}
	return focusLessons
}

// Home is the tree mounted at startup: the lesson list plus the API panel.
// It survives being unmounted so its filter and panel state persist.
type Home struct {
	list      *uistate.List
	selectors map[view.ID]*lesson.Selector
	resolver  lesson.Resolver
	surface   mount.Surface
	panel     *panel.Panel

	focus      focusTarget
	errMsg     string
	width      int
	height     int
	showFooter bool
	keys       keyMap
	help       help.Model
	zones      *zone.Manager

	filterCursor      cursor.Model
	filterCursorDirty bool
}

func newHome(registry *view.Registry, surface mount.Surface, p *panel.Panel, zones *zone.Manager, showFooter bool) *Home {
	selectors := lesson.SelectorsFor(registry, surface)
	entries := make([]uistate.Entry, 0, len(selectors))
	byID := make(map[view.ID]*lesson.Selector, len(selectors))
	for _, sel := range selectors {
		entries = append(entries, uistate.Entry{
			ID:          string(sel.Key()),
			Label:       sel.Label(),
			Description: sel.Description(),
		})
		byID[sel.Key()] = sel
	}
	h := &Home{
		list:       uistate.NewList(entries),
		selectors:  byID,
		resolver:   registry,
		surface:    surface,
		panel:      p,
		showFooter: showFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
		zones:      zones,
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	h.filterCursor = c
	return h
}

// MountName implements mount.Named.
func (h *Home) MountName() string { return "home" }

// Init implements mount.Tree.
func (h *Home) Init() tea.Cmd {
	return h.filterCursor.Focus()
}

// Update implements mount.Tree.
func (h *Home) Update(msg tea.Msg) (mount.Tree, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 3)
	if cmd := h.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := h.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.WindowSizeMsg:
		h.resize(msg.Width, msg.Height)
	}
	return h, h.finishUpdate(cmds)
}

func (h *Home) resize(width, height int) {
	h.width = width
	h.height = height
	h.help.Width = width
}

func (h *Home) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if h.filterCursorDirty {
		h.filterCursorDirty = false
		h.filterCursor.Blink = false
		if cmd := h.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// TriggerLesson mounts the view registered under id. A key with no control
// on screen still goes through a selector so the lookup failure is reported
// the same way.
func (h *Home) TriggerLesson(id view.ID) error {
	sel, ok := h.selectors[id]
	if !ok {
		sel = lesson.NewSelector(id, string(id), h.resolver, h.surface)
	}
	if err := sel.Trigger(); err != nil {
		h.setLookupError(id, err)
		return err
	}
	h.errMsg = ""
	before := h.list.FilterCursorPos()
	h.list.SetFilter("", 0)
	h.noteFilterCursorChange(before)
	h.list.Select(string(id))
	h.focus = focusLessons
	return nil
}

// Invoke starts the panel call behind a and moves focus onto its control.
func (h *Home) Invoke(a panel.Action) tea.Cmd {
	if h.panel == nil {
		return nil
	}
	h.focus = focusFor(a)
	return h.panel.Invoke(a)
}

func (h *Home) setLookupError(id view.ID, err error) {
	h.errMsg = err.Error()
	events.View.LookupFailed(string(id), err)
}
