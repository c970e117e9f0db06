package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Reply describes one canned API response.
type Reply struct {
	Status int
	Body   interface{}
	Raw    string
}

// APIServer fakes the lesson console HTTP API.
type APIServer struct {
	*httptest.Server

	mu      sync.Mutex
	replies map[string]Reply
	hits    map[string]int
}

// NewAPIServer starts a fake API answering the two endpoints with success
// payloads until overridden with Set.
func NewAPIServer(t *testing.T) *APIServer {
	t.Helper()
	api := &APIServer{
		replies: map[string]Reply{
			"GET /api/healthcheck": {Body: map[string]string{"result": "ok"}},
			"POST /api/helloworld": {Body: map[string]interface{}{"msg": "hi", "code": 0}},
		},
		hits: map[string]int{},
	}
	api.Server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.Close)
	return api
}

// Set overrides the reply for "METHOD /path".
func (a *APIServer) Set(route string, reply Reply) {
	a.mu.Lock()
	a.replies[route] = reply
	a.mu.Unlock()
}

// Hits reports how many requests reached route.
func (a *APIServer) Hits(route string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits[route]
}

func (a *APIServer) serve(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path
	a.mu.Lock()
	a.hits[route]++
	reply, ok := a.replies[route]
	a.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if reply.Status != 0 {
		w.WriteHeader(reply.Status)
	}
	if reply.Raw != "" {
		_, _ = w.Write([]byte(reply.Raw))
		return
	}
	if reply.Body != nil {
		_ = json.NewEncoder(w).Encode(reply.Body)
	}
}
