// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestNewStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestMocks(ctrl)
	verifier := NewMockTokenVerifierInterface(ctrl)

	tests := []struct {
		name        string
		config      *Config
		verifier    TokenVerifierInterface
		expectedErr error
	}{
		{
			name:        "nil config",
			config:      nil,
			verifier:    verifier,
			expectedErr: ErrMissingExtractor,
		},
		{
			name:        "missing extractor",
			config:      &Config{CheckRevoked: true},
			verifier:    verifier,
			expectedErr: ErrMissingExtractor,
		},
		{
			name:        "missing verifier",
			config:      NewConfig(FromAuthHeaderAsBearerToken(), false),
			verifier:    nil,
			expectedErr: ErrMissingVerifier,
		},
		{
			name:     "valid configuration",
			config:   NewConfig(FromAuthHeaderAsBearerToken(), false),
			verifier: verifier,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := NewStrategy(test.config, test.verifier, m.tracer, m.monitor, m.logger)

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}
			if test.expectedErr != nil && s != nil {
				t.Fatal("expected no strategy on construction failure")
			}
			if test.expectedErr == nil && s.Name() != DefaultStrategyName {
				t.Errorf("expected name %q, got %q", DefaultStrategyName, s.Name())
			}
		})
	}
}

func TestNewStrategyDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestMocks(ctrl)

	s, err := NewStrategy(&Config{Extractor: FromAuthHeaderAsBearerToken()}, NewNoopVerifier(), m.tracer, m.monitor, m.logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.CheckRevoked() {
		t.Error("expected checkRevoked to default to false")
	}
	if s.Name() != DefaultStrategyName {
		t.Errorf("expected default name, got %q", s.Name())
	}
	if s.validate == nil {
		t.Error("expected default validate hook")
	}
}

func TestNewStrategyNilCollaborators(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "valid token", token: "abc.def.ghi"},
	}

	s, err := NewStrategy(NewConfig(FromAuthHeaderAsBearerToken(), false), NewNoopVerifier(), nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if test.token != "" {
				req.Header.Set("Authorization", "Bearer "+test.token)
			}

			signals := new(recordingSignals)
			s.Authenticate(req, signals)

			o := signals.outcome
			if len(o.successes)+len(o.failures) != 1 {
				t.Fatalf("expected exactly one signal, got %d successes and %d failures", len(o.successes), len(o.failures))
			}
			if test.token == "" && o.statusCode != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", o.statusCode)
			}
			if test.token != "" && len(o.successes) != 1 {
				t.Errorf("expected success, got failures %v", o.failures)
			}
		})
	}
}

func TestStrategyAuthenticate(t *testing.T) {
	claims := Claims{"uid": "u1"}

	tests := []struct {
		name       string
		authHeader string
		config     func() *Config
		setupMocks func(*MockTokenVerifierInterface, *MockLoggerInterface, *MockSignalsInterface)
	}{
		{
			name:       "valid token signals success with the claims",
			authHeader: "Bearer abc.def.ghi",
			config:     func() *Config { return NewConfig(FromAuthHeaderAsBearerToken(), false) },
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "abc.def.ghi", false).Return(claims, nil).Times(1)
				s.EXPECT().Success(Claims{"uid": "u1"}).Times(1)
			},
		},
		{
			name:       "missing token fails without calling the verifier",
			authHeader: "",
			config:     func() *Config { return NewConfig(FromAuthHeaderAsBearerToken(), false) },
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				s.EXPECT().Fail(hasCode(ErrCodeUnauthorized), http.StatusUnauthorized).Times(1)
			},
		},
		{
			name:       "non bearer scheme counts as missing token",
			authHeader: "Basic dXNlcjpwYXNz",
			config:     func() *Config { return NewConfig(FromAuthHeaderAsBearerToken(), false) },
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				s.EXPECT().Fail(hasCode(ErrCodeUnauthorized), http.StatusUnauthorized).Times(1)
			},
		},
		{
			name:       "verifier rejection fails and logs once",
			authHeader: "Bearer bad-token",
			config:     func() *Config { return NewConfig(FromAuthHeaderAsBearerToken(), false) },
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "bad-token", false).Return(nil, errors.New("invalid-token")).Times(1)
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
				s.EXPECT().Fail(hasCode(ErrCodeInvalidToken), http.StatusUnauthorized).Times(1)
			},
		},
		{
			name:       "checkRevoked is forwarded to the verifier",
			authHeader: "Bearer revoked-token",
			config:     func() *Config { return NewConfig(FromAuthHeaderAsBearerToken(), true) },
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "revoked-token", true).Return(nil, ErrTokenRevoked).Times(1)
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
				s.EXPECT().Fail(hasCode(ErrCodeInvalidToken), http.StatusUnauthorized).Times(1)
			},
		},
		{
			name:       "validate hook rejecting claims fails",
			authHeader: "Bearer abc.def.ghi",
			config: func() *Config {
				c := NewConfig(FromAuthHeaderAsBearerToken(), false)
				c.Validate = func(context.Context, Claims) (any, error) { return nil, nil }
				return c
			},
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "abc.def.ghi", false).Return(claims, nil).Times(1)
				s.EXPECT().Fail(hasCode(ErrCodeUnauthorized), http.StatusUnauthorized).Times(1)
			},
		},
		{
			name:       "validate hook returning typed nil claims fails",
			authHeader: "Bearer abc.def.ghi",
			config: func() *Config {
				c := NewConfig(FromAuthHeaderAsBearerToken(), false)
				c.Validate = func(context.Context, Claims) (any, error) { return Claims(nil), nil }
				return c
			},
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "abc.def.ghi", false).Return(claims, nil).Times(1)
				s.EXPECT().Fail(hasCode(ErrCodeUnauthorized), http.StatusUnauthorized).Times(1)
			},
		},
		{
			name:       "validate hook error fails and logs",
			authHeader: "Bearer abc.def.ghi",
			config: func() *Config {
				c := NewConfig(FromAuthHeaderAsBearerToken(), false)
				c.Validate = func(context.Context, Claims) (any, error) { return nil, errors.New("user disabled") }
				return c
			},
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "abc.def.ghi", false).Return(claims, nil).Times(1)
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
				s.EXPECT().Fail(hasCode(ErrCodeUnauthorized), http.StatusUnauthorized).Times(1)
			},
		},
		{
			name:       "validate hook mapping claims to a custom principal",
			authHeader: "Bearer abc.def.ghi",
			config: func() *Config {
				c := NewConfig(FromAuthHeaderAsBearerToken(), false)
				c.Validate = func(_ context.Context, c Claims) (any, error) { return c.Subject(), nil }
				return c
			},
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "abc.def.ghi", false).Return(claims, nil).Times(1)
				s.EXPECT().Success("u1").Times(1)
			},
		},
		{
			name: "extractor error fails and logs",
			config: func() *Config {
				return NewConfig(func(*http.Request) (string, error) { return "", errors.New("malformed cookie") }, false)
			},
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
				s.EXPECT().Fail(hasCode(ErrCodeUnauthorized), http.StatusUnauthorized).Times(1)
			},
		},
		{
			name: "extractor panic is recovered",
			config: func() *Config {
				return NewConfig(func(*http.Request) (string, error) { panic("boom") }, false)
			},
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
				s.EXPECT().Fail(hasCode(ErrCodeInternalError), http.StatusUnauthorized).Times(1)
			},
		},
		{
			name:       "verifier panic is recovered",
			authHeader: "Bearer abc.def.ghi",
			config:     func() *Config { return NewConfig(FromAuthHeaderAsBearerToken(), false) },
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, s *MockSignalsInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "abc.def.ghi", false).DoAndReturn(
					func(context.Context, string, bool) (Claims, error) { panic("provider client not initialized") },
				).Times(1)
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
				s.EXPECT().Fail(hasCode(ErrCodeInternalError), http.StatusUnauthorized).Times(1)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTestMocks(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockSignals := NewMockSignalsInterface(ctrl)

			test.setupMocks(mockVerifier, m.logger, mockSignals)

			s, err := NewStrategy(test.config(), mockVerifier, m.tracer, m.monitor, m.logger)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if test.authHeader != "" {
				req.Header.Set("Authorization", test.authHeader)
			}

			s.Authenticate(req, mockSignals)
		})
	}
}

func TestStrategyRecordsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)
	mockVerifier := NewMockTokenVerifierInterface(ctrl)
	mockSignals := NewMockSignalsInterface(ctrl)

	mockTracer := newTestMocks(ctrl).tracer

	mockLogger.EXPECT().Security().Return(mockSecurity).Times(2)
	mockSecurity.EXPECT().AuthnSuccess("u1", "custom").Times(1)
	mockSecurity.EXPECT().AuthnFailure(ErrCodeUnauthorized, "custom").Times(1)
	mockMonitor.EXPECT().IncrementAuthenticationOutcome(map[string]string{"strategy": "custom", "outcome": "success", "code": ""}).Return(nil).Times(1)
	mockMonitor.EXPECT().IncrementAuthenticationOutcome(map[string]string{"strategy": "custom", "outcome": "failure", "code": ErrCodeUnauthorized}).Return(fmt.Errorf("metric not instantiated")).Times(1)
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).Times(1)

	mockVerifier.EXPECT().VerifyToken(gomock.Any(), "tok", false).Return(Claims{"sub": "u1"}, nil)
	mockSignals.EXPECT().Success(Claims{"sub": "u1"})
	mockSignals.EXPECT().Fail(hasCode(ErrCodeUnauthorized), http.StatusUnauthorized)

	config := NewConfig(FromAuthHeaderAsBearerToken(), false)
	config.Name = "custom"

	s, err := NewStrategy(config, mockVerifier, mockTracer, mockMonitor, mockLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	withToken := httptest.NewRequest(http.MethodGet, "/", nil)
	withToken.Header.Set("Authorization", "Bearer tok")
	s.Authenticate(withToken, mockSignals)
	s.Authenticate(httptest.NewRequest(http.MethodGet, "/", nil), mockSignals)
}

type recordedOutcome struct {
	successes  []any
	failures   []error
	statusCode int
}

type recordingSignals struct {
	mu      sync.Mutex
	outcome recordedOutcome
}

func (r *recordingSignals) Success(principal any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcome.successes = append(r.outcome.successes, principal)
}

func (r *recordingSignals) Fail(reason error, statusCode int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcome.failures = append(r.outcome.failures, reason)
	r.outcome.statusCode = statusCode
}

func TestStrategyConcurrentRequestsAreIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestMocks(ctrl)
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	mockVerifier := NewMockTokenVerifierInterface(ctrl)
	mockVerifier.EXPECT().VerifyToken(gomock.Any(), gomock.Any(), false).DoAndReturn(
		func(_ context.Context, token string, _ bool) (Claims, error) {
			if token == "bad-token" {
				return nil, errors.New("invalid-token")
			}
			return Claims{"uid": token}, nil
		},
	).AnyTimes()

	s, err := NewStrategy(NewConfig(FromAuthHeaderAsBearerToken(), false), mockVerifier, m.tracer, m.monitor, m.logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tokens := []string{"u1", "bad-token", "u2", "", "u3", "bad-token", "u4"}
	signals := make([]*recordingSignals, len(tokens))

	var wg sync.WaitGroup
	for i, token := range tokens {
		signals[i] = new(recordingSignals)
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			s.Authenticate(req, signals[i])
		}(i, token)
	}
	wg.Wait()

	for i, token := range tokens {
		o := signals[i].outcome
		if len(o.successes)+len(o.failures) != 1 {
			t.Fatalf("request %d: expected exactly one signal, got %d successes and %d failures", i, len(o.successes), len(o.failures))
		}

		switch token {
		case "", "bad-token":
			if o.statusCode != http.StatusUnauthorized {
				t.Errorf("request %d: expected 401, got %d", i, o.statusCode)
			}
		default:
			c, ok := o.successes[0].(Claims)
			if !ok || c.Subject() != token {
				t.Errorf("request %d: expected principal for %q, got %v", i, token, o.successes[0])
			}
		}
	}
}
