// Package remote calls the lesson console's HTTP API.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/atomicstack/lesson-console/internal/logging/events"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	EndpointHealthCheck = "/api/healthcheck"
	EndpointHelloWorld  = "/api/helloworld"

	tracerName      = "github.com/atomicstack/lesson-console/internal/remote"
	requestIDHeader = "X-Request-Id"
	maxBodyBytes    = 1 << 20
	defaultTimeout  = 5 * time.Second
)

var (
	// ErrStatus is wrapped when the API answers with a non-2xx status.
	ErrStatus = errors.New("unexpected status")
	// ErrMissingField is wrapped when a response decodes but lacks its payload field.
	ErrMissingField = errors.New("missing field")
)

// HealthCheckResponse is the payload of GET /api/healthcheck.
type HealthCheckResponse struct {
	Result string
}

// HelloReply is the payload of POST /api/helloworld.
type HelloReply struct {
	Msg  string
	Code int
}

// CallError describes a failed call to one endpoint.
type CallError struct {
	Method   string
	Endpoint string
	Status   int
	Err      error
}

func (e *CallError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Client issues requests against a base URL.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
	timeout time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithTimeout bounds each request. Zero or negative values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New returns a client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		tracer:  otel.Tracer(tracerName),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL reports the root every endpoint is joined to.
func (c *Client) BaseURL() string { return c.baseURL }

type healthCheckBody struct {
	Result *string `json:"result"`
}

type helloBody struct {
	Msg  *string `json:"msg"`
	Code int     `json:"code"`
}

// HealthCheck calls GET /api/healthcheck.
func (c *Client) HealthCheck(ctx context.Context) (HealthCheckResponse, error) {
	var body healthCheckBody
	if err := c.do(ctx, http.MethodGet, EndpointHealthCheck, &body); err != nil {
		return HealthCheckResponse{}, err
	}
	if body.Result == nil {
		return HealthCheckResponse{}, &CallError{Method: http.MethodGet, Endpoint: EndpointHealthCheck, Err: fmt.Errorf("%w: result", ErrMissingField)}
	}
	return HealthCheckResponse{Result: *body.Result}, nil
}

// HelloWorld calls POST /api/helloworld with an empty body.
func (c *Client) HelloWorld(ctx context.Context) (HelloReply, error) {
	var body helloBody
	if err := c.do(ctx, http.MethodPost, EndpointHelloWorld, &body); err != nil {
		return HelloReply{}, err
	}
	if body.Msg == nil {
		return HelloReply{}, &CallError{Method: http.MethodPost, Endpoint: EndpointHelloWorld, Err: fmt.Errorf("%w: msg", ErrMissingField)}
	}
	return HelloReply{Msg: *body.Msg, Code: body.Code}, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, out interface{}) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, method+" "+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", endpoint),
			attribute.String("lesson_console.request_id", requestID),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	fail := func(status int, cause error) error {
		return &CallError{Method: method, Endpoint: endpoint, Status: status, Err: cause}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, nil)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	events.Remote.Request(method, endpoint, requestID)
	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	events.Remote.Response(endpoint, requestID, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fail(resp.StatusCode, ErrStatus)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
