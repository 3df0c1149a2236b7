// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
)

const opAuthenticate = "authentication.Strategy.Authenticate"

// Strategy bridges a token extractor and an identity verifier to the host signals.
// It holds no per request state and is safe for concurrent use.
type Strategy struct {
	name         string
	extractor    ExtractorFunc
	checkRevoked bool
	validate     ValidateFunc

	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Strategy) Name() string {
	return s.name
}

func (s *Strategy) CheckRevoked() bool {
	return s.checkRevoked
}

// Authenticate signals exactly one of Success or Fail for the request
func (s *Strategy) Authenticate(r *http.Request, signals SignalsInterface) {
	result := s.authenticate(r)
	s.record(result)
	result.Signal(signals)
}

func (s *Strategy) authenticate(r *http.Request) (result *Result) {
	ctx, span := s.tracer.Start(r.Context(), opAuthenticate)
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Errorf("recovered from panic during authentication: %v", rec)
			result = NewFailure(NewInternalError(fmt.Errorf("%v", rec), opAuthenticate), http.StatusUnauthorized)
		}
	}()

	token, err := s.extractor(r.WithContext(ctx))
	if err != nil {
		s.logger.Errorf("failed to extract token: %v", err)
		return NewFailure(NewExtractionError(err, opAuthenticate), http.StatusUnauthorized)
	}

	if token == "" {
		return NewFailure(NewMissingTokenError(opAuthenticate), http.StatusUnauthorized)
	}

	claims, err := s.verifier.VerifyToken(ctx, token, s.checkRevoked)
	if err != nil {
		s.logger.Errorf("token verification failed: %v", err)
		return NewFailure(NewVerificationError(err, opAuthenticate), http.StatusUnauthorized)
	}

	principal, err := s.validate(ctx, claims)
	if err != nil {
		s.logger.Errorf("claims validation failed: %v", err)
		return NewFailure(NewValidationError(err, opAuthenticate), http.StatusUnauthorized)
	}

	if isNil(principal) {
		return NewFailure(NewRejectedClaimsError(opAuthenticate), http.StatusUnauthorized)
	}

	return NewSuccess(principal)
}

func (s *Strategy) record(result *Result) {
	tags := map[string]string{
		"strategy": s.name,
		"outcome":  result.Outcome().String(),
		"code":     result.Code(),
	}

	if err := s.monitor.IncrementAuthenticationOutcome(tags); err != nil {
		s.logger.Debugf("error incrementing authentication outcome metric: %v", err)
	}

	if result.Outcome() == OutcomeSuccess {
		s.logger.Security().AuthnSuccess(subjectOf(result.Principal()), s.name)
		return
	}

	s.logger.Security().AuthnFailure(result.Code(), s.name)
}

func subjectOf(principal any) string {
	if c, ok := principal.(Claims); ok && c.Subject() != "" {
		return c.Subject()
	}
	return "unknown"
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// NewStrategy fails when the configuration has no extractor, the strategy is unusable without one.
// Nil tracer, monitor or logger fall back to no-op implementations.
func NewStrategy(
	config *Config,
	verifier TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Strategy, error) {
	if config == nil || config.Extractor == nil {
		return nil, ErrMissingExtractor
	}

	if verifier == nil {
		return nil, ErrMissingVerifier
	}

	s := new(Strategy)

	s.name = config.Name
	if s.name == "" {
		s.name = DefaultStrategyName
	}

	s.extractor = config.Extractor
	s.checkRevoked = config.CheckRevoked

	s.validate = config.Validate
	if s.validate == nil {
		s.validate = IdentityValidate
	}

	s.verifier = verifier

	s.tracer = tracer
	if s.tracer == nil {
		s.tracer = tracing.NewNoopTracer()
	}

	s.monitor = monitor
	if s.monitor == nil {
		s.monitor = monitoring.NewNoopMonitor(s.name)
	}

	s.logger = logger
	if s.logger == nil {
		s.logger = logging.NewNoopLogger()
	}

	return s, nil
}
