package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthCheckDecodesResult(t *testing.T) {
	var gotMethod, gotPath, gotID string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotID = r.Method, r.URL.Path, r.Header.Get(requestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	})

	resp, err := New(srv.URL + "/").HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Result)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, EndpointHealthCheck, gotPath)
	assert.NotEmpty(t, gotID)
}

func TestHelloWorldPostsAndDecodesMsg(t *testing.T) {
	var gotMethod string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"msg":"hi","code":0}`))
	})

	reply, err := New(srv.URL).HelloWorld(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hi", reply.Msg)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func TestEmptyResultIsNotMissing(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":""}`))
	})
	resp, err := New(srv.URL).HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", resp.Result)
}

func TestFailuresAreCallErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		target  error
		status  int
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			target: ErrStatus,
			status: http.StatusInternalServerError,
		},
		{
			name: "malformed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result":`))
			},
			status: http.StatusOK,
		},
		{
			name: "missing field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status":"ok"}`))
			},
			target: ErrMissingField,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newServer(t, tc.handler)
			_, err := New(srv.URL).HealthCheck(context.Background())
			require.Error(t, err)
			var callErr *CallError
			require.True(t, errors.As(err, &callErr))
			assert.Equal(t, EndpointHealthCheck, callErr.Endpoint)
			assert.Equal(t, tc.status, callErr.Status)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).HelloWorld(context.Background())
	var callErr *CallError
	require.True(t, errors.As(err, &callErr))
	assert.Equal(t, http.MethodPost, callErr.Method)
	assert.Zero(t, callErr.Status)
}

func TestTimeoutBoundsRequest(t *testing.T) {
	release := make(chan struct{})
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	_, err := New(srv.URL, WithTimeout(20*time.Millisecond)).HealthCheck(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRequestsAreTraced(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == EndpointHelloWorld {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	})
	client := New(srv.URL, WithTracer(provider.Tracer("test")))

	_, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	_, err = client.HelloWorld(context.Background())
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "GET "+EndpointHealthCheck, spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "POST "+EndpointHelloWorld, spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
