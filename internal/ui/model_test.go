package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/atomicstack/lesson-console/internal/panel"
	"github.com/atomicstack/lesson-console/internal/remote"
	"github.com/atomicstack/lesson-console/internal/testutil"
	"github.com/atomicstack/lesson-console/internal/view"
	tea "github.com/charmbracelet/bubbletea"
)

type stubCaller struct {
	health    string
	hello     string
	healthErr error
	helloErr  error
}

func (s *stubCaller) HealthCheck(context.Context) (remote.HealthCheckResponse, error) {
	return remote.HealthCheckResponse{Result: s.health}, s.healthErr
}

func (s *stubCaller) HelloWorld(context.Context) (remote.HelloReply, error) {
	return remote.HelloReply{Msg: s.hello}, s.helloErr
}

func newTestModel(opts Options) *Model {
	if opts.Panel == nil {
		opts.Panel = panel.New(&stubCaller{health: "ok", hello: "hi"})
	}
	return NewModel(opts)
}

func mountedView(t *testing.T, m *Model) view.View {
	t.Helper()
	v, ok := m.root.Current().(view.View)
	if !ok {
		t.Fatalf("expected a lesson view to be mounted, got %T", m.root.Current())
	}
	return v
}

func TestNewModelMountsHome(t *testing.T) {
	m := newTestModel(Options{})
	if !m.homeMounted() {
		t.Fatalf("expected home to be mounted, got %T", m.root.Current())
	}
	out := stripANSI(m.View())
	for _, want := range []string{"Lessons", "Lesson 1", "Lesson 2", "Lesson 3", "API List", "[ Call HealthCheck ]", "[ Call HelloWorld ]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestInitialViewMountsLesson(t *testing.T) {
	m := newTestModel(Options{InitialView: " Lesson2 "})
	if got := mountedView(t, m).ID(); got != view.Lesson2 {
		t.Fatalf("expected lesson2, got %s", got)
	}
	if m.home.list.Cursor != 1 {
		t.Fatalf("expected home cursor on lesson2, got %d", m.home.list.Cursor)
	}
}

func TestInvalidInitialViewFallsBackToHome(t *testing.T) {
	logs := testutil.ObserveLogs(t)
	m := newTestModel(Options{InitialView: "lesson9"})
	if !m.homeMounted() {
		t.Fatalf("expected home to stay mounted")
	}
	if m.home.errMsg == "" {
		t.Fatalf("expected error message for unknown view")
	}
	if !strings.Contains(stripANSI(m.View()), "Error: no such view") {
		t.Fatalf("expected status line error, got:\n%s", m.View())
	}
	if n := logs.FilterMessage("view.lookup").Len(); n != 1 {
		t.Fatalf("expected one lookup log entry, got %d", n)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := newTestModel(Options{Width: 50})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	if m.width != 50 || m.height != 30 {
		t.Fatalf("expected 50x30, got %dx%d", m.width, m.height)
	}
	if m.home.width != 50 || m.home.height != 30 {
		t.Fatalf("expected home sized 50x30, got %dx%d", m.home.width, m.home.height)
	}
	for _, line := range strings.Split(m.View(), "\n") {
		if w := len([]rune(stripANSI(line))); w > 50 {
			t.Fatalf("line exceeds width: %q (%d)", line, w)
		}
	}
}

func TestPanelResultsApplyWhileLessonMounted(t *testing.T) {
	m := newTestModel(Options{InitialView: "lesson1"})
	m.Update(panel.HealthCheckResultMsg{Response: remote.HealthCheckResponse{Result: "ok"}})
	if !strings.Contains(stripANSI(m.View()), "Lesson 1") {
		t.Fatalf("expected lesson to stay mounted")
	}
	if got := m.panel.State().LastResult; got != "healthcheck: ok" {
		t.Fatalf("expected result applied, got %q", got)
	}
}

func TestHandlerForResolvesPointerMessages(t *testing.T) {
	m := newTestModel(Options{})
	if m.handlerFor(&tea.WindowSizeMsg{}) == nil {
		t.Fatalf("expected pointer message to resolve handler")
	}
	if m.handlerFor(nil) != nil {
		t.Fatalf("expected nil message to have no handler")
	}
}
