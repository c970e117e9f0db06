package panel

import "github.com/atomicstack/lesson-console/internal/remote"

// HealthCheckResultMsg carries the outcome of one health-check call.
type HealthCheckResultMsg struct {
	Response remote.HealthCheckResponse
	Err      error
}

// HelloWorldResultMsg carries the outcome of one hello-world call.
type HelloWorldResultMsg struct {
	Reply remote.HelloReply
	Err   error
}
