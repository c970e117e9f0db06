package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/lesson-console/internal/testutil"
	"github.com/atomicstack/lesson-console/internal/view"
)

func TestEnterMountsFirstLesson(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	h.Key("enter")
	if got := mountedView(t, h.Model()).ID(); got != view.Lesson1 {
		t.Fatalf("expected lesson1, got %s", got)
	}
	if !strings.Contains(stripANSI(h.View()), "Lesson 1: Models") {
		t.Fatalf("expected lesson content, got:\n%s", h.View())
	}
}

func TestCursorWrapsAndSelectsLesson(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	h.Key("up")
	h.Key("enter")
	if got := mountedView(t, h.Model()).ID(); got != view.Lesson3 {
		t.Fatalf("expected wrap to lesson3, got %s", got)
	}
	h.Key("esc")
	h.Key("down")
	h.Key("enter")
	if got := mountedView(t, h.Model()).ID(); got != view.Lesson1 {
		t.Fatalf("expected wrap to lesson1, got %s", got)
	}
}

func TestTriggeringSameLessonTwiceIsIdempotent(t *testing.T) {
	m := newTestModel(Options{})
	home := m.home
	if err := home.TriggerLesson(view.Lesson2); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	first := m.root.View()
	if err := home.TriggerLesson(view.Lesson2); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if got := mountedView(t, m).ID(); got != view.Lesson2 {
		t.Fatalf("expected lesson2, got %s", got)
	}
	if m.root.View() != first {
		t.Fatalf("expected identical content after second trigger")
	}
}

func TestUnknownLessonKeyLeavesSurfaceUnchanged(t *testing.T) {
	logs := testutil.ObserveLogs(t)
	m := newTestModel(Options{})
	err := m.home.TriggerLesson("lesson9")
	if !errors.Is(err, view.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !m.homeMounted() {
		t.Fatalf("expected home to stay mounted, got %T", m.root.Current())
	}
	if !strings.Contains(stripANSI(m.View()), `Error: no such view "lesson9"`) {
		t.Fatalf("expected lookup error on status line:\n%s", m.View())
	}
	if n := logs.FilterMessage("view.lookup").Len(); n != 1 {
		t.Fatalf("expected one diagnostic entry, got %d", n)
	}
}

func TestEscapeRemountsHomeThenQuits(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	h.Key("down")
	h.Key("enter")
	h.Key("esc")
	if !h.Model().homeMounted() {
		t.Fatalf("expected home after esc")
	}
	if h.Model().home.list.Cursor != 1 {
		t.Fatalf("expected cursor kept on lesson2, got %d", h.Model().home.list.Cursor)
	}
	if h.Quit() {
		t.Fatalf("did not expect quit yet")
	}
	h.Key("esc")
	if !h.Quit() {
		t.Fatalf("expected esc on home to quit")
	}
}

func TestCtrlCQuitsFromLesson(t *testing.T) {
	h := NewHarness(newTestModel(Options{InitialView: "lesson3"}))
	h.Key("ctrl+c")
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
}

func TestFocusCyclesThroughPanelControls(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	home := h.Model().home
	h.Key("tab")
	if home.focus != focusHealthCheck {
		t.Fatalf("expected health check focus, got %d", home.focus)
	}
	h.Key("right")
	if home.focus != focusHelloWorld {
		t.Fatalf("expected hello world focus, got %d", home.focus)
	}
	h.Key("enter")
	if got := h.Model().panel.State().LastResult; got != "helloworld:hi" {
		t.Fatalf("expected hello result, got %q", got)
	}
	h.Key("tab")
	if home.focus != focusLessons {
		t.Fatalf("expected focus to wrap to lessons, got %d", home.focus)
	}
	h.Key("shift+tab")
	if home.focus != focusHelloWorld {
		t.Fatalf("expected reverse cycle to hello world, got %d", home.focus)
	}
	h.Key("esc")
	if home.focus != focusLessons || h.Quit() {
		t.Fatalf("expected esc to return focus to lessons without quitting")
	}
}

func TestPanelKeysDoNotEditFilter(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	h.Key("tab")
	h.Type("abc")
	if f := h.Model().home.list.Filter; f != "" {
		t.Fatalf("expected filter untouched, got %q", f)
	}
}

func TestWindowTitleFollowsMountedTree(t *testing.T) {
	h := NewHarness(newTestModel(Options{}))
	if got := h.Model().Title(); got != AppTitle {
		t.Fatalf("expected app title on home, got %q", got)
	}
	msgs := collect(h.Dispatch(keyMsg("enter")))
	found := false
	for _, msg := range msgs {
		if fmt.Sprintf("%T", msg) == "tea.setWindowTitleMsg" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a window title command when a lesson mounts, got %v", msgs)
	}
	if got := h.Model().Title(); !strings.HasPrefix(got, AppTitle+": Lesson 1") {
		t.Fatalf("expected lesson title, got %q", got)
	}
	h.Key("esc")
	if got := h.Model().Title(); got != AppTitle {
		t.Fatalf("expected app title after returning home, got %q", got)
	}
}
