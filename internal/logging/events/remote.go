package events

import "github.com/atomicstack/lesson-console/internal/logging"

type RemoteTracer struct{}

var Remote = RemoteTracer{}

func (RemoteTracer) Request(method, endpoint, requestID string) {
	logging.Trace("remote.request", map[string]interface{}{
		"method":    method,
		"endpoint":  endpoint,
		"requestId": requestID,
	})
}

func (RemoteTracer) Response(endpoint, requestID string, status int) {
	logging.Trace("remote.response", map[string]interface{}{
		"endpoint":  endpoint,
		"requestId": requestID,
		"status":    status,
	})
}

func (RemoteTracer) Applied(endpoint, text string) {
	logging.Trace("remote.applied", map[string]interface{}{"endpoint": endpoint, "text": text})
}

// Failure is the diagnostic channel for remote calls. It is written
// regardless of the trace flag and never surfaces in the UI.
func (RemoteTracer) Failure(endpoint string, err error) {
	if err == nil {
		return
	}
	logging.Errorw("remote.failure", "endpoint", endpoint, "error", err.Error())
}
