// Package loggertest provides loggers that write through testing.TB.
package loggertest

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvsort/internal/logger"
)

// New returns a debug-level Logger writing to tb.
func New(tb testing.TB) logger.Logger {
	tb.Helper()
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000000")

	return logger.FromZap(zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg),
			zaptest.NewTestingWriter(tb),
			zapcore.DebugLevel,
		),
	))
}

// NewObserved returns a Logger writing to tb and the entries it records at
// lvl and above.
func NewObserved(tb testing.TB, lvl zapcore.Level) (logger.Logger, *observer.ObservedLogs) {
	tb.Helper()
	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return logger.FromZap(zaptest.NewLogger(tb, zaptest.WrapOptions(observe, zap.AddCaller()))), logs
}
