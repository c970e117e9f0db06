package panel

import (
	"errors"
	"testing"

	"github.com/atomicstack/lesson-console/internal/remote"
)

func TestStateTransitions(t *testing.T) {
	var s State
	if s.LastResult != "" {
		t.Fatalf("expected empty initial result")
	}
	s = s.ApplyHealthCheck(remote.HealthCheckResponse{Result: "ok"})
	if s.LastResult != "healthcheck: ok" {
		t.Fatalf("unexpected result %q", s.LastResult)
	}
	s = s.ApplyHelloWorld(remote.HelloReply{Msg: "hi"})
	if s.LastResult != "helloworld:hi" {
		t.Fatalf("unexpected result %q", s.LastResult)
	}
	if next := s.ApplyFailure(errors.New("boom")); next != s {
		t.Fatalf("expected failure to keep state, got %+v", next)
	}
}
