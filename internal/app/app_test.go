package app

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/lesson-console/internal/testutil"
	"github.com/atomicstack/lesson-console/internal/ui"
)

func TestNewModelCallsConfiguredAPI(t *testing.T) {
	api := testutil.NewAPIServer(t)
	model := NewModel(Config{BaseURL: api.URL, Timeout: time.Second}, nil)
	h := ui.NewHarness(model)
	h.Key("tab")
	h.Key("enter")
	if api.Hits("GET /api/healthcheck") != 1 {
		t.Fatalf("expected health check to reach the API")
	}
	if !strings.Contains(h.View(), "healthcheck: ok") {
		t.Fatalf("expected result in view")
	}
}

func TestNewModelMountsInitialView(t *testing.T) {
	model := NewModel(Config{BaseURL: "http://localhost:1", Timeout: time.Second, InitialView: "lesson3"}, nil)
	if !strings.Contains(model.View(), "Lesson 3") {
		t.Fatalf("expected lesson3 mounted")
	}
}
