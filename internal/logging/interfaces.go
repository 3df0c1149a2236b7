// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Sync() error
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits audit events following the OWASP logging vocabulary
type SecurityLoggerInterface interface {
	AuthnSuccess(subject string, strategy string)
	AuthnFailure(reason string, strategy string)
	SystemStartup()
	SystemShutdown()
}
