package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/toastkit-dev/toastkit/pkg/toast"
)

// defaultTracerName is the tracer name used when none is configured.
const defaultTracerName = "toastkit"

// TracerConfig configures the OpenTelemetry observer.
type TracerConfig struct {
	// TracerName is the name of the tracer (default: "toastkit").
	TracerName string

	// AttributeExtractor adds custom attributes to every span.
	AttributeExtractor func() []attribute.KeyValue
}

// TracerOption configures the OpenTelemetry observer.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(fn func() []attribute.KeyValue) TracerOption {
	return func(c *TracerConfig) {
		c.AttributeExtractor = fn
	}
}

// Tracer is a toast.Observer that records each lifecycle event as a
// zero-duration span, so notification activity shows up alongside the
// host application's traces.
type Tracer struct {
	tracer  trace.Tracer
	extract func() []attribute.KeyValue
}

// NewTracer creates the OpenTelemetry observer.
func NewTracer(opts ...TracerOption) *Tracer {
	cfg := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tracer{
		tracer:  otel.Tracer(cfg.TracerName),
		extract: cfg.AttributeExtractor,
	}
}

func (t *Tracer) record(name string, attrs ...attribute.KeyValue) {
	if t.extract != nil {
		attrs = append(attrs, t.extract()...)
	}
	_, span := t.tracer.Start(context.Background(), name,
		trace.WithAttributes(attrs...))
	span.End()
}

// Shown implements toast.Observer.
func (t *Tracer) Shown(kind toast.Kind, position toast.Position) {
	t.record("toast.shown",
		attribute.String("toast.kind", string(kind)),
		attribute.String("toast.position", string(position)),
	)
}

// Dismissed implements toast.Observer.
func (t *Tracer) Dismissed(kind toast.Kind, reason toast.DismissReason) {
	t.record("toast.dismissed",
		attribute.String("toast.kind", string(kind)),
		attribute.String("toast.reason", string(reason)),
	)
}

// Cleared implements toast.Observer.
func (t *Tracer) Cleared(containers, items int) {
	t.record("toast.cleared",
		attribute.Int("toast.containers", containers),
		attribute.Int("toast.items", items),
	)
}
