package ui

import (
	"net/http"
	"strings"
	"testing"

	"github.com/atomicstack/lesson-console/internal/panel"
	"github.com/atomicstack/lesson-console/internal/remote"
	"github.com/atomicstack/lesson-console/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func newHTTPHarness(t *testing.T) (*Harness, *testutil.APIServer) {
	t.Helper()
	api := testutil.NewAPIServer(t)
	p := panel.New(remote.New(api.URL))
	return NewHarness(NewModel(Options{Panel: p})), api
}

func TestHealthCheckRoundTrip(t *testing.T) {
	h, api := newHTTPHarness(t)
	h.Key("tab")
	h.Key("enter")
	if got := h.Model().panel.State().LastResult; got != "healthcheck: ok" {
		t.Fatalf("expected healthcheck: ok, got %q", got)
	}
	if api.Hits("GET /api/healthcheck") != 1 {
		t.Fatalf("expected one GET")
	}
	h.Key("right")
	h.Key("enter")
	if got := h.Model().panel.State().LastResult; got != "helloworld:hi" {
		t.Fatalf("expected helloworld:hi, got %q", got)
	}
	if api.Hits("POST /api/helloworld") != 1 {
		t.Fatalf("expected one POST")
	}
}

func TestFailedCallKeepsResultAndLogsOnce(t *testing.T) {
	h, api := newHTTPHarness(t)
	h.Key("tab")
	h.Key("enter")

	logs := testutil.ObserveLogs(t)
	api.Set("POST /api/helloworld", testutil.Reply{Status: http.StatusInternalServerError, Raw: `{"error":"boom"}`})
	h.Key("right")
	h.Key("enter")

	if got := h.Model().panel.State().LastResult; got != "healthcheck: ok" {
		t.Fatalf("expected result unchanged, got %q", got)
	}
	if n := logs.Len(); n != 1 {
		t.Fatalf("expected exactly one log entry, got %d", n)
	}
	out := stripANSI(h.View())
	if strings.Contains(out, "Error:") || strings.Contains(out, "boom") {
		t.Fatalf("expected failure to stay out of the UI:\n%s", out)
	}
}

func TestLastArrivingResponseWins(t *testing.T) {
	h, _ := newHTTPHarness(t)
	h.Key("tab")
	healthCmd := h.Dispatch(keyMsg("enter"))
	h.Key("right")
	helloCmd := h.Dispatch(keyMsg("enter"))

	helloMsgs := collect(helloCmd)
	healthMsgs := collect(healthCmd)
	for _, msg := range helloMsgs {
		h.Send(msg)
	}
	for _, msg := range healthMsgs {
		h.Send(msg)
	}
	if got := h.Model().panel.State().LastResult; got != "healthcheck: ok" {
		t.Fatalf("expected the later-handled health check to win, got %q", got)
	}
}

func TestResultSurvivesLessonRoundTrip(t *testing.T) {
	h, _ := newHTTPHarness(t)
	h.Key("tab")
	h.Key("enter")
	h.Key("tab")
	h.Key("tab")
	h.Key("enter")
	if _, ok := h.Model().root.Current().(*Home); ok {
		t.Fatalf("expected a lesson to be mounted")
	}
	h.Key("esc")
	if !strings.Contains(stripANSI(h.View()), "healthcheck: ok") {
		t.Fatalf("expected result to persist on home:\n%s", h.View())
	}
}
