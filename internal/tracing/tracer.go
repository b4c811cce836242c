// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "workflow-service"

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer sets up the global otel tracer provider from the config and
// returns a tracer for the service. When tracing is disabled a noop
// provider is installed instead.
func NewTracer(c *Config) *Tracer {
	t := new(Tracer)

	if !c.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	exporter, err := newExporter(c)
	if err != nil {
		c.Logger.Errorf("failed to create otlp exporter, tracing disabled: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.tracer = provider.Tracer(tracerName)
	return t
}

func newExporter(c *Config) (*otlptrace.Exporter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if c.OtelGRPCEndpoint != "" {
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpoint(c.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	}

	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpoint(c.OtelHTTPEndpoint),
		otlptracehttp.WithInsecure(),
	)
}

// NewNoopTracer returns a tracer that records nothing, for tests.
func NewNoopTracer() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(tracerName)}
}
