// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() *SecurityLogger {
	return l.security
}

// NewLogger creates a production zap logger at the given level.
// Unknown levels fall back to error.
func NewLogger(level string) *Logger {
	parsedLevel, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsedLevel = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsedLevel)

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: zapLogger.Sugar(),
		security:      &SecurityLogger{l: zapLogger.Named("security")},
	}
}
