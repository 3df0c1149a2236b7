// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

func levelFromString(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	default:
		return zap.ErrorLevel
	}
}

// NewLogger creates a new default logger
// it will need to be closed with
// ```
// defer logger.Desugar().Sync()
// ```
// to make sure all has been piped out before terminating
func NewLogger(l string) *Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(levelFromString(l))
	config.Encoding = "json"
	config.EncoderConfig.TimeKey = "@timestamp"
	config.EncoderConfig.LevelKey = "severity"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	logger := zap.Must(config.Build())
	logger.Debug("Logger initialized")

	l_ := new(Logger)
	l_.SugaredLogger = logger.Sugar()
	l_.security = NewSecurityLogger(logger)

	return l_
}

// NewNoopLogger discards everything, used by tooling and tests
func NewNoopLogger() *Logger {
	logger := zap.NewNop()

	l := new(Logger)
	l.SugaredLogger = logger.Sugar()
	l.security = NewSecurityLogger(logger)

	return l
}
