package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerAttachesRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := globalLogger.Load()
	globalLogger.Store(&logger{zapLogger: zap.New(core)})
	t.Cleanup(func() { globalLogger.Store(prev) })

	ctx := WithRequestID(context.Background(), "req-42")

	With(String("op", "test")).Warn(ctx, "degraded", Int("rows", 3))
	Info(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "degraded", entries[0].Message)
	assert.Equal(t, "test", first["op"])
	assert.Equal(t, int64(3), first["rows"])
	assert.Equal(t, "req-42", first["request_id"])

	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, parseLevel("warning"))
	assert.Equal(t, LevelError, parseLevel("error"))
	assert.Equal(t, LevelInfo, parseLevel(""))
}

func TestNoopLoggerWithNilReceiver(t *testing.T) {
	t.Parallel()

	var l *logger
	assert.NotPanics(t, func() {
		l.With(String("k", "v")).Info(context.Background(), "dropped")
	})
	assert.Empty(t, RequestID(context.Background()))
}
