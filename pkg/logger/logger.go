// Package logger builds the zap logger shared by the binary and its services.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a sugared logger tagged with service. Output goes to stderr
// so stdout carries nothing but benchmark results. An unparsable level falls
// back to info.
func New(service string, level string) *zap.SugaredLogger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(lvl),
	)

	return zap.New(core, zap.AddCaller()).
		With(zap.String("service", service), zap.Int("pid", os.Getpid())).
		Sugar()
}

// NewNop returns a logger that discards everything, for tests and library callers.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
