// Package telemetry configures OpenTelemetry tracing for outbound API calls.
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	EnvEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName = "OTEL_SERVICE_NAME"

	defaultServiceName = "lesson-console"
	instrumentation    = "github.com/atomicstack/lesson-console"
)

// Provider wraps an SDK tracer provider. A nil Provider is valid and hands out
// no-op tracers.
type Provider struct {
	sdk *sdktrace.TracerProvider
}

// Setup creates an OTLP/HTTP exporter when OTEL_EXPORTER_OTLP_ENDPOINT is set.
// It returns nil when tracing is not configured.
func Setup(ctx context.Context, getenv func(string) string) (*Provider, error) {
	endpoint := strings.TrimSpace(getenv(EnvEndpoint))
	if endpoint == "" {
		return nil, nil
	}

	var opt otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		opt = otlptracehttp.WithEndpointURL(endpoint)
	} else {
		opt = otlptracehttp.WithEndpoint(endpoint)
	}
	opts := []otlptracehttp.Option{opt}
	if !strings.HasPrefix(endpoint, "https://") {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := strings.TrimSpace(getenv(EnvServiceName))
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	return NewProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	), nil
}

// NewProvider builds a Provider from SDK options.
func NewProvider(opts ...sdktrace.TracerProviderOption) *Provider {
	return &Provider{sdk: sdktrace.NewTracerProvider(opts...)}
}

// Tracer returns the application tracer.
func (p *Provider) Tracer() trace.Tracer {
	if p == nil || p.sdk == nil {
		return otel.Tracer(instrumentation)
	}
	return p.sdk.Tracer(instrumentation)
}

// Install registers p as the global tracer provider.
func (p *Provider) Install() {
	if p == nil || p.sdk == nil {
		return
	}
	otel.SetTracerProvider(p.sdk)
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
