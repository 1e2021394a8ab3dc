// Package telemetry wires OpenTelemetry tracing for maze generation.
//
// Generators call Tracer(name) and open one span per Generate; hosts
// that want the spans exported call Setup once at startup. A host that
// never calls Setup pays only the no-op provider cost, so the library
// is zero-config by default.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "mazegen"
	serviceVersion = "0.1.0"
)

// Setup installs a batching OTLP HTTP trace pipeline as the global
// tracer provider. Exporter configuration comes from the standard
// OTEL_* environment variables:
//
//   - OTEL_EXPORTER_OTLP_ENDPOINT: collector endpoint
//   - OTEL_EXPORTER_OTLP_HEADERS:  auth headers, if the backend needs them
//
// The returned shutdown function flushes pending spans and must be
// called on host exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	// 1. OTLP HTTP exporter; picks up OTEL_* env vars by itself.
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Resource describing this process. Built standalone rather than
	// merged with resource.Default() to avoid schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	// 3. Batching provider, registered globally.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer from the global provider. Before Setup
// runs (or when the host never calls it) the global provider is a
// no-op, so generators can trace unconditionally.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns an explicitly no-op tracer, useful in tests that
// must not touch the global provider.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

// hostname returns the system hostname, or "unknown" when it cannot be
// determined.
func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}

	return h
}
