package logging

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const badKey = "!BADKEY"

// toFields pairs slog-style arguments. A non-string key is logged under !BADKEY,
// and a trailing key without value is logged as null.
func toFields(args []any) []zap.Field {
	fields := make([]zap.Field, 0, (len(args)+1)/2)
	for len(args) > 0 {
		key, ok := args[0].(string)
		switch {
		case !ok || key == "":
			fields = append(fields, zap.Any(badKey, args[0]))
			args = args[1:]
		case len(args) == 1:
			fields = append(fields, zap.Any(key, nil))
			args = nil
		default:
			fields = append(fields, field(key, args[1]))
			args = args[2:]
		}
	}
	return fields
}

func field(key string, value any) zap.Field {
	if err, ok := value.(error); ok {
		return zap.NamedError(key, err)
	}
	return zap.Any(key, value)
}

// traceFields correlates a record with the active span, if any.
func traceFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.Stringer("trace_id", sc.TraceID()),
		zap.Stringer("span_id", sc.SpanID()),
	}
}
