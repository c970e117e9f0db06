package testutil

import (
	"testing"

	"github.com/atomicstack/lesson-console/internal/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// ObserveLogs routes the shared logger into an in-memory observer for the
// duration of the test. Trace output is disabled so only diagnostic entries
// are recorded unless the test enables it.
func ObserveLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	restore := logging.SetLogger(zap.New(core))
	prevTrace := logging.TraceEnabled()
	logging.SetTraceEnabled(false)
	t.Cleanup(func() {
		logging.SetTraceEnabled(prevTrace)
		restore()
	})
	return logs
}
