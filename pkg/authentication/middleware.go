// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
)

// Middleware is the host pipeline, it runs registered strategies and turns their signals into HTTP
type Middleware struct {
	registry *Registry
	realm    string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

const (
	pipelineMisconfigured = "misconfigured"
	pipelineNoSignal      = "no_signal"
	pipelineDoubleSignal  = "double_signal"
)

// requestSignals collects the signals of one strategy for one request
type requestSignals struct {
	strategy string
	signals  int

	succeeded bool
	principal any

	reason error
	status int

	logger logging.LoggerInterface
}

func (s *requestSignals) Success(principal any) {
	if s.signalled() {
		return
	}
	s.succeeded = true
	s.principal = principal
}

func (s *requestSignals) Fail(reason error, statusCode int) {
	if s.signalled() {
		return
	}
	s.reason = reason
	s.status = statusCode
}

func (s *requestSignals) signalled() bool {
	s.signals++
	if s.signals > 1 {
		s.logger.Errorf("strategy %s signalled more than once, ignoring", s.strategy)
		return true
	}
	return false
}

// Authenticate tries the named strategies in order, the first success lets the request through
// with the principal in its context. When all of them fail the first failure is returned.
func (m *Middleware) Authenticate(names ...string) func(http.Handler) http.Handler {
	strategies, lookupErr := m.registry.Lookup(names...)
	if lookupErr != nil {
		m.logger.Errorf("authentication middleware misconfigured: %v", lookupErr)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			if lookupErr != nil {
				m.recordPipelineFault(strings.Join(names, ","), pipelineMisconfigured)
				m.errorResponse(w, http.StatusInternalServerError, "authentication is misconfigured")
				return
			}

			r = r.WithContext(ctx)

			var first *requestSignals
			for _, strategy := range strategies {
				signals := &requestSignals{strategy: strategy.Name(), logger: m.logger}
				strategy.Authenticate(r, signals)

				if signals.signals > 1 {
					m.recordPipelineFault(strategy.Name(), pipelineDoubleSignal)
				}

				if signals.signals == 0 {
					m.recordPipelineFault(strategy.Name(), pipelineNoSignal)
					m.logger.Errorf("strategy %s did not signal an outcome", strategy.Name())
					signals.reason = NewInternalError(nil, "authentication.Middleware.Authenticate")
					signals.status = http.StatusUnauthorized
				}

				if signals.succeeded {
					next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, signals.principal)))
					return
				}

				if first == nil {
					first = signals
				}
			}

			m.unauthorizedResponse(w, first)
		})
	}
}

// recordPipelineFault counts strategies that break the single signal contract or cannot be resolved
func (m *Middleware) recordPipelineFault(strategy, outcome string) {
	tags := map[string]string{
		"strategy": strategy,
		"outcome":  outcome,
		"code":     ErrCodeInternalError,
	}

	if err := m.monitor.IncrementAuthenticationOutcome(tags); err != nil {
		m.logger.Debugf("error incrementing authentication outcome metric: %v", err)
	}
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, failure *requestSignals) {
	status := http.StatusUnauthorized
	var reason error = ErrUnauthorized
	if failure != nil {
		if failure.status != 0 {
			status = failure.status
		}
		if failure.reason != nil {
			reason = failure.reason
		}
	}

	challenge := fmt.Sprintf(`%s realm="%s"`, SchemeBearer, m.realm)
	if ErrorCode(reason) == ErrCodeInvalidToken {
		challenge = fmt.Sprintf(`%s, error="invalid_token"`, challenge)
	}
	w.Header().Set("WWW-Authenticate", challenge)

	m.errorResponse(w, status, PublicMessage(reason))
}

func (m *Middleware) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(registry *Registry, realm string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		registry: registry,
		realm:    realm,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
