// Package logging is the service logger: zap JSON output driven by slog-style
// key/value arguments, with trace correlation and an optional record mirror.
package logging

import (
	"context"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// MirrorFunc receives a copy of every emitted record, e.g. to forward it to an OTel log exporter.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

// Logger is safe for concurrent use. Children made by With share the sink.
type Logger struct {
	core *zap.Logger
	// attrs are the With arguments, kept in raw form for the mirror.
	attrs []any
	flush func() error
}

var (
	fallback = NewNop()
	current  atomic.Pointer[Logger]
	mirror   atomic.Pointer[MirrorFunc]
)

// NewJSON builds a JSON logger writing to stdout.
func NewJSON(level Level) *Logger {
	return NewJSONWriter(os.Stdout, level)
}

// NewJSONWriter builds a JSON logger writing to w.
func NewJSONWriter(w io.Writer, level Level) *Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)
	// Skip log() and the exported method so caller points at the call site.
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{core: z, flush: sync.OnceValue(z.Sync)}
}

func NewNop() *Logger {
	return &Logger{core: zap.NewNop(), flush: func() error { return nil }}
}

// Default returns the process logger installed by SetDefault, or a no-op logger.
func Default() *Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return fallback
}

func SetDefault(l *Logger) {
	current.Store(l)
}

// SetMirror installs fn as the process-wide record mirror. nil disables mirroring.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirror.Store(nil)
		return
	}
	mirror.Store(&fn)
}

// Sync flushes buffered output once. Later calls are no-ops.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.flush()
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		l = Default()
	}
	return &Logger{
		core:  l.core.With(toFields(args)...),
		attrs: append(l.attrs[:len(l.attrs):len(l.attrs)], args...),
		flush: l.flush,
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.log(context.Background(), LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.log(context.Background(), LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(context.Background(), LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.log(context.Background(), LevelError, msg, args) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelDebug, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelInfo, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelWarn, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelError, msg, args)
}

func (l *Logger) log(ctx context.Context, level Level, msg string, args []any) {
	if l == nil {
		l = Default()
	}
	if !l.core.Core().Enabled(level) {
		return
	}

	if ce := l.core.Check(level, msg); ce != nil {
		ce.Write(append(toFields(args), traceFields(ctx)...)...)
	}
	if fn := mirror.Load(); fn != nil {
		(*fn)(ctx, level, msg, append(l.attrs[:len(l.attrs):len(l.attrs)], args...)...)
	}
}
