package logger

import (
	"context"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

var (
	globalLogger atomic.Pointer[logger]
	initOnce     sync.Once
)

func init() {
	globalLogger.Store(&logger{zapLogger: zap.NewNop()})
}

type logger struct {
	zapLogger *zap.Logger
}

// Init builds the process-wide logger. Only the first call has an effect.
func Init(levelStr string, asJSON bool) error {
	initOnce.Do(func() {
		encoderCfg := buildProductionEncoderConfig()

		var encoder zapcore.Encoder
		if asJSON {
			encoder = zapcore.NewJSONEncoder(encoderCfg)
		} else {
			encoder = zapcore.NewConsoleEncoder(encoderCfg)
		}

		core := zapcore.NewCore(
			encoder,
			zapcore.AddSync(os.Stdout),
			zap.NewAtomicLevelAt(parseLevel(levelStr)),
		)

		zapLogger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

		globalLogger.Store(&logger{zapLogger: zapLogger})
	})

	return nil
}

func buildProductionEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func parseLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// L returns the global logger.
func L() *logger {
	return globalLogger.Load()
}

// SetNopLogger replaces the global logger with one that discards everything.
// Used in tests.
func SetNopLogger() {
	globalLogger.Store(&logger{zapLogger: zap.NewNop()})
}

// With returns a child of the global logger with fields attached.
func With(fields ...Field) *logger {
	return L().With(fields...)
}

// WithRequestID stores a request id in ctx so that every log line written
// with that ctx carries it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	L().Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	L().Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	L().Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	L().Error(ctx, msg, fields...)
}

func (l *logger) With(fields ...Field) *logger {
	if l == nil || l.zapLogger == nil {
		return &logger{zapLogger: zap.NewNop()}
	}
	return &logger{zapLogger: l.zapLogger.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Debug(msg, appendContextFields(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Info(msg, appendContextFields(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Warn(msg, appendContextFields(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Error(msg, appendContextFields(ctx, fields)...)
}

// Sync flushes buffered entries.
func (l *logger) Sync() error {
	return l.zapLogger.Sync()
}

func appendContextFields(ctx context.Context, fields []Field) []Field {
	if id := RequestID(ctx); id != "" {
		return append(fields, String(string(requestIDKey), id))
	}
	return fields
}

// NoopLogger satisfies the ctx-aware logger interfaces and drops every entry.
type NoopLogger struct{}

func (NoopLogger) Debug(context.Context, string, ...Field) {}
func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Warn(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
