package observability

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/riskibarqy/matchstats/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap/zapcore"
)

const (
	logBridgeScope   = "matchstats/internal/platform/logging"
	accessLogMessage = "http request"
	badKey           = "!BADKEY"
	maxValueDepth    = 3
)

// Probe and scrape traffic stays in stdout only.
var quietAccessPaths = []string{"/healthz", "/metrics"}

var severities = map[zapcore.Level]otellog.Severity{
	zapcore.DebugLevel:  otellog.SeverityDebug,
	zapcore.InfoLevel:   otellog.SeverityInfo,
	zapcore.WarnLevel:   otellog.SeverityWarn,
	zapcore.ErrorLevel:  otellog.SeverityError,
	zapcore.DPanicLevel: otellog.SeverityFatal,
	zapcore.PanicLevel:  otellog.SeverityFatal,
	zapcore.FatalLevel:  otellog.SeverityFatal,
}

// logBridge forwards logger records to the global OpenTelemetry log provider.
type logBridge struct {
	logger otellog.Logger
}

func newLogBridge(serviceVersion string) logging.MirrorFunc {
	b := logBridge{
		logger: otelglobal.Logger(logBridgeScope, otellog.WithInstrumentationVersion(serviceVersion)),
	}
	return b.emit
}

func (b logBridge) emit(ctx context.Context, level logging.Level, msg string, args ...any) {
	if isQuietAccessLog(msg, args) {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	severity := severityOf(level)
	if !b.logger.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: msg}) {
		return
	}

	now := time.Now()
	var rec otellog.Record
	rec.SetTimestamp(now)
	rec.SetObservedTimestamp(now)
	rec.SetSeverity(severity)
	rec.SetSeverityText(level.CapitalString())
	rec.SetEventName(msg)
	rec.SetBody(otellog.StringValue(msg))
	rec.AddAttributes(logAttributes(args)...)

	b.logger.Emit(ctx, rec)
}

func isQuietAccessLog(msg string, args []any) bool {
	if msg != accessLogMessage {
		return false
	}
	for i := 0; i+1 < len(args); i += 2 {
		if key, _ := args[i].(string); key == "path" {
			path, _ := args[i+1].(string)
			return slices.Contains(quietAccessPaths, path)
		}
	}
	return false
}

func severityOf(level zapcore.Level) otellog.Severity {
	if s, ok := severities[level]; ok {
		return s
	}
	if level < zapcore.DebugLevel {
		return otellog.SeverityTrace
	}
	return otellog.SeverityError
}

// logAttributes pairs args the way slog does: a non-string key becomes !BADKEY and a
// trailing key without value is kept as an empty attribute.
func logAttributes(args []any) []otellog.KeyValue {
	attrs := make([]otellog.KeyValue, 0, (len(args)+1)/2)
	for len(args) > 0 {
		key, ok := args[0].(string)
		if !ok || key == "" {
			attrs = append(attrs, otellog.KeyValue{Key: badKey, Value: logValue(args[0], 0)})
			args = args[1:]
			continue
		}
		if len(args) == 1 {
			attrs = append(attrs, otellog.Empty(key))
			break
		}
		attrs = append(attrs, otellog.KeyValue{Key: key, Value: logValue(args[1], 0)})
		args = args[2:]
	}
	return attrs
}

func logValue(value any, depth int) otellog.Value {
	switch v := value.(type) {
	case nil:
		return otellog.Value{}
	case string:
		return otellog.StringValue(v)
	case bool:
		return otellog.BoolValue(v)
	case int:
		return otellog.IntValue(v)
	case int64:
		return otellog.Int64Value(v)
	case float64:
		return otellog.Float64Value(v)
	case []byte:
		return otellog.BytesValue(slices.Clone(v))
	case time.Time:
		return otellog.StringValue(v.UTC().Format(time.RFC3339Nano))
	case time.Duration:
		return otellog.StringValue(v.String())
	case error:
		return otellog.StringValue(v.Error())
	case fmt.Stringer:
		return otellog.StringValue(v.String())
	}

	if depth >= maxValueDepth {
		return otellog.StringValue(fmt.Sprint(value))
	}
	return reflectedLogValue(reflect.ValueOf(value), depth)
}

// reflectedLogValue covers named scalar types (projection modes, sides) and containers.
func reflectedLogValue(rv reflect.Value, depth int) otellog.Value {
	switch rv.Kind() {
	case reflect.String:
		return otellog.StringValue(rv.String())
	case reflect.Bool:
		return otellog.BoolValue(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return otellog.Int64Value(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return otellog.Int64Value(int64(u))
		}
		return otellog.StringValue(fmt.Sprint(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return otellog.Float64Value(rv.Float())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return otellog.Value{}
		}
		return logValue(rv.Elem().Interface(), depth+1)
	case reflect.Slice, reflect.Array:
		items := make([]otellog.Value, rv.Len())
		for i := range items {
			items[i] = logValue(rv.Index(i).Interface(), depth+1)
		}
		return otellog.SliceValue(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		kvs := make([]otellog.KeyValue, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			kvs = append(kvs, otellog.KeyValue{Key: iter.Key().String(), Value: logValue(iter.Value().Interface(), depth+1)})
		}
		slices.SortFunc(kvs, func(a, b otellog.KeyValue) int {
			switch {
			case a.Key < b.Key:
				return -1
			case a.Key > b.Key:
				return 1
			default:
				return 0
			}
		})
		return otellog.MapValue(kvs...)
	}
	return otellog.StringValue(fmt.Sprint(rv.Interface()))
}
