package panel

import "github.com/atomicstack/lesson-console/internal/remote"

const (
	HealthCheckPrefix = "healthcheck: "
	HelloWorldPrefix  = "helloworld:"
)

// State is the panel's only mutable data. Transitions return a new value.
type State struct {
	LastResult string
}

// ApplyHealthCheck records a successful health check.
func (s State) ApplyHealthCheck(resp remote.HealthCheckResponse) State {
	s.LastResult = HealthCheckPrefix + resp.Result
	return s
}

// ApplyHelloWorld records a successful hello-world call.
func (s State) ApplyHelloWorld(reply remote.HelloReply) State {
	s.LastResult = HelloWorldPrefix + reply.Msg
	return s
}

// ApplyFailure leaves the state as it was.
func (s State) ApplyFailure(error) State {
	return s
}
