// Package telemetry wires OpenTelemetry tracing for the game.
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
	serviceName    = "bugbout"
	serviceVersion = "0.1.0"
)

// Enabled reports whether an OTLP endpoint is configured. Without one the
// game runs untraced with the default noop provider.
func Enabled() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
}

// Setup initializes tracing with an OTLP HTTP exporter, configured entirely
// through the standard OTEL_* environment variables. It returns a shutdown
// function to call on exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for a component. Before Setup (or when no
// endpoint is configured) the global provider is a noop, so callers never
// need to branch on telemetry being available.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("bugbout/" + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("bugbout/noop")
}
