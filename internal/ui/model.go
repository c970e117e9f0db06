package ui

import (
	"reflect"
	"strings"

	"github.com/atomicstack/lesson-console/internal/mount"
	"github.com/atomicstack/lesson-console/internal/panel"
	"github.com/atomicstack/lesson-console/internal/theme"
	"github.com/atomicstack/lesson-console/internal/view"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

var styles = theme.Default()

// AppTitle is the terminal title while the home screen is mounted.
const AppTitle = "lesson-console"

type msgHandler func(tea.Msg) tea.Cmd

// Options configures NewModel.
type Options struct {
	Registry    *view.Registry
	Panel       *panel.Panel
	Width       int
	Height      int
	ShowFooter  bool
	InitialView string
	Zones       *zone.Manager
}

// Model implements the Bubble Tea model for the lesson console.
type Model struct {
	root     *mount.Root
	home     *Home
	registry *view.Registry
	panel    *panel.Panel
	zones    *zone.Manager
	keys     keyMap

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	handlers map[reflect.Type]msgHandler
}

// NewModel mounts the home screen, or the requested initial view when one is
// named and registered.
func NewModel(opts Options) *Model {
	registry := opts.Registry
	if registry == nil {
		registry = view.BuildRegistry()
	}
	p := opts.Panel
	if p == nil {
		p = panel.New(nil)
	}
	root := mount.NewRoot()
	m := &Model{
		root:     root,
		registry: registry,
		panel:    p,
		zones:    opts.Zones,
		keys:     defaultKeyMap(),
	}
	m.home = newHome(registry, root, p, opts.Zones, opts.ShowFooter)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.home.resize(m.width, m.height)
	root.Replace(m.home)
	m.applyInitialView(opts.InitialView)
	m.registerHandlers()
	return m
}

func (m *Model) applyInitialView(requested string) {
	trimmed := strings.TrimSpace(requested)
	if trimmed == "" {
		return
	}
	id := view.ID(strings.ToLower(trimmed))
	v, err := m.registry.Resolve(id)
	if err != nil {
		m.home.setLookupError(id, err)
		return
	}
	m.root.Replace(v)
	m.home.list.Select(string(id))
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	current := m.root.Current()
	if current == nil {
		return nil
	}
	return tea.Batch(current.Init(), m.syncSize(), m.titleCmd())
}

// Title names the mounted tree for the terminal title bar.
func (m *Model) Title() string {
	if t, ok := m.root.Current().(interface{ Title() string }); ok && t.Title() != "" {
		return AppTitle + ": " + t.Title()
	}
	return AppTitle
}

func (m *Model) titleCmd() tea.Cmd {
	return tea.SetWindowTitle(m.Title())
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, m.forward(msg)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):                  m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):           m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):                m.handleMouseMsg,
		reflect.TypeOf(panel.HealthCheckResultMsg{}): m.handlePanelResultMsg,
		reflect.TypeOf(panel.HelloWorldResultMsg{}):  m.handlePanelResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// forward hands msg to the mounted tree. A tree mounted while handling msg
// is sized before the next frame.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	before := m.root.Generation()
	cmd := m.root.Update(msg)
	if m.root.Generation() == before {
		return cmd
	}
	return tea.Batch(cmd, m.syncSize(), m.titleCmd())
}

func (m *Model) syncSize() tea.Cmd {
	if m.width <= 0 && m.height <= 0 {
		return nil
	}
	if m.homeMounted() {
		m.home.resize(m.width, m.height)
		return nil
	}
	return m.root.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.home.resize(m.width, m.height)
	return m.syncSize()
}

func (m *Model) handlePanelResultMsg(msg tea.Msg) tea.Cmd {
	m.panel.Handle(msg)
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	out := m.root.View()
	if m.zones != nil {
		return m.zones.Scan(out)
	}
	return out
}
