package main

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// traceFileEnv names a file that receives WaitForEvent spans as JSON.
// Spans go to a file because the text-mode backend owns the terminal.
const traceFileEnv = "YUI_TRACE_FILE"

// setupTracing installs a tracer provider when YUI_TRACE_FILE is set. The
// returned shutdown flushes pending spans and closes the file.
func setupTracing(backend string) (func(context.Context) error, error) {
	path := os.Getenv(traceFileEnv)
	if path == "" {
		return func(context.Context) error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(f))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String("yui-demo"),
			semconv.ServiceVersionKey.String(version),
			attribute.String("yui.backend", backend),
		),
	)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(provider)

	return func(ctx context.Context) error {
		err := provider.Shutdown(ctx)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	}, nil
}
