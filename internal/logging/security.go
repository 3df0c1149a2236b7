// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	authnTokenSuccess = "authn_token_success"
	authnTokenFail    = "authn_token_fail"
	sysStartup        = "sys_startup"
	sysShutdown       = "sys_shutdown"
)

type SecurityLogger struct {
	logger *zap.Logger
}

func (s *SecurityLogger) AuthnSuccess(subject string, strategy string) {
	s.logger.Info(
		"token authentication succeeded",
		zap.String("event", fmt.Sprintf("%s:%s", authnTokenSuccess, subject)),
		zap.String("strategy", strategy),
		zap.String("level", "INFO"),
	)
}

func (s *SecurityLogger) AuthnFailure(reason string, strategy string) {
	s.logger.Warn(
		"token authentication failed",
		zap.String("event", fmt.Sprintf("%s:%s", authnTokenFail, reason)),
		zap.String("strategy", strategy),
		zap.String("level", "WARN"),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.logger.Warn("system startup", zap.String("event", sysStartup), zap.String("level", "WARN"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.logger.Warn("system shutdown", zap.String("event", sysShutdown), zap.String("level", "WARN"))
}

func NewSecurityLogger(logger *zap.Logger) *SecurityLogger {
	s := new(SecurityLogger)
	s.logger = logger.With(zap.String("type", "security"))

	return s
}
