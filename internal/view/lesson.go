package view

import (
	"strings"

	"github.com/atomicstack/lesson-console/internal/mount"
	"github.com/atomicstack/lesson-console/internal/theme"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	lessonDefaultWidth = 80
	lessonChromeRows   = 3 // title, blank, hint
)

var styles = theme.Default()

// Lesson is a read-only view with a title and a scrollable body.
type Lesson struct {
	id       ID
	title    string
	body     []string
	viewport viewport.Model
}

// NewLesson builds a lesson sized to show its whole body until a window size
// arrives.
func NewLesson(id ID, title string, body ...string) *Lesson {
	lines := append([]string(nil), body...)
	vp := viewport.New(lessonDefaultWidth, len(lines))
	vp.SetContent(strings.Join(lines, "\n"))
	return &Lesson{id: id, title: title, body: lines, viewport: vp}
}

// ID implements View.
func (l *Lesson) ID() ID { return l.id }

// Title returns the lesson heading.
func (l *Lesson) Title() string { return l.title }

// MountName implements mount.Named.
func (l *Lesson) MountName() string { return "view:" + string(l.id) }

// Init implements mount.Tree.
func (l *Lesson) Init() tea.Cmd { return nil }

// Update implements mount.Tree.
func (l *Lesson) Update(msg tea.Msg) (mount.Tree, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.resize(msg.Width, msg.Height)
		return l, nil
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		l.viewport, cmd = l.viewport.Update(msg)
		return l, cmd
	}
	return l, nil
}

// View implements mount.Tree.
func (l *Lesson) View() string {
	lines := []string{
		theme.Render(styles.LessonTitle, l.title),
		theme.Render(styles.LessonBody, l.viewport.View()),
		"",
		theme.Render(styles.Footer, "↑/↓ scroll  esc back  ctrl+c quit"),
	}
	return strings.Join(lines, "\n")
}

func (l *Lesson) resize(width, height int) {
	if width > 0 {
		l.viewport.Width = width
	}
	if height > 0 {
		h := height - lessonChromeRows
		if h < 1 {
			h = 1
		}
		l.viewport.Height = h
	}
}
