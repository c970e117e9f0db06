package events

import "github.com/atomicstack/lesson-console/internal/logging"

type ViewTracer struct{}

var View = ViewTracer{}

func (ViewTracer) Resolve(id string) {
	logging.Trace("view.resolve", map[string]interface{}{"id": id})
}

// LookupFailed is written regardless of the trace flag.
func (ViewTracer) LookupFailed(id string, err error) {
	if err == nil {
		return
	}
	logging.Errorw("view.lookup", "id", id, "error", err.Error())
}
