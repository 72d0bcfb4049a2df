package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("matchstats/internal/usecase")

// startServiceSpan opens "usecase.<service>.<op>" under the request span. Without a
// recording parent (unit tests, filtered routes) ctx comes back unchanged.
func startServiceSpan(ctx context.Context, service, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, "usecase."+service+"."+op, trace.WithAttributes(attrs...))
}
