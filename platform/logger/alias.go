package logger

import (
	"go.uber.org/zap"
)

const (
	LevelDebug = zap.DebugLevel
	LevelInfo  = zap.InfoLevel
	LevelWarn  = zap.WarnLevel
	LevelError = zap.ErrorLevel
)

// Field constructors used across the service.
var (
	String   = zap.String
	Stringer = zap.Stringer
	Int      = zap.Int
	Duration = zap.Duration
	ErrorF   = zap.Error
	Any      = zap.Any
)

type (
	Field = zap.Field
)
