package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootLogger = zap.NewNop()

// InitLogger replaces the process logger with a console logger at the given
// level ("debug", "info", "warn" or "error").
func InitLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)

	if err != nil {
		return fmt.Errorf("bad log level '%s': %w", level, err)
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	l, err := config.Build()

	if err != nil {
		return fmt.Errorf("cannot build logger: %w", err)
	}

	rootLogger = l
	return nil
}

// Logger returns a sugared logger named for the calling component.
func Logger(name ...string) *zap.SugaredLogger {
	l := rootLogger

	for _, n := range name {
		l = l.Named(n)
	}

	return l.Sugar()
}

// SyncLogger flushes any buffered log entries. Call it before exiting.
func SyncLogger() error {
	return rootLogger.Sync()
}
