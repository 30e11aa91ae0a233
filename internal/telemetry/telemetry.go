// Package telemetry records deck navigation as OpenTelemetry spans.
package telemetry

import (
	"context"
	"fmt"

	"execdeck/internal/config"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "execdeck/deck"

// Span and attribute names.
const (
	SpanNavigate = "deck.navigate"

	AttrFrom     = attribute.Key("execdeck.deck.from")
	AttrTo       = attribute.Key("execdeck.deck.to")
	AttrTrigger  = attribute.Key("execdeck.deck.trigger")
	AttrSlideKey = attribute.Key("execdeck.slide.key")
)

// Recorder emits navigation spans. The zero value and a nil *Recorder are
// both no-ops.
type Recorder struct {
	provider *sdktrace.TracerProvider // nil unless we own an exporter
	tracer   oteltrace.Tracer
}

// New creates a recorder exporting to cfg.Endpoint over OTLP/HTTP.
// With no endpoint configured it returns a no-op recorder.
func New(ctx context.Context, cfg config.TelemetryConfig) (*Recorder, error) {
	if cfg.Endpoint == "" {
		return NewWithProvider(noop.NewTracerProvider()), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "execdeck"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}, nil
}

// NewWithProvider creates a recorder on an existing provider.
func NewWithProvider(tp oteltrace.TracerProvider) *Recorder {
	return &Recorder{tracer: tp.Tracer(instrumentationName)}
}

// Navigation records one real slide transition.
func (r *Recorder) Navigation(ctx context.Context, from, to int, trigger, slideKey string) {
	if r == nil || r.tracer == nil {
		return
	}
	_, span := r.tracer.Start(ctx, SpanNavigate,
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal),
		oteltrace.WithAttributes(
			AttrFrom.Int(from),
			AttrTo.Int(to),
			AttrTrigger.String(trigger),
			AttrSlideKey.String(slideKey),
		),
	)
	span.End()
}

// Shutdown flushes and closes the exporter, if any.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
