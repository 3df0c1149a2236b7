// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)


type testMocks struct {
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

// newTestMocks allows tracing, metrics, security events, debug and info logs.
// Errorf is left for each test to expect explicitly.
func newTestMocks(ctrl *gomock.Controller) *testMocks {
	m := &testMocks{
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	m.monitor.EXPECT().IncrementAuthenticationOutcome(gomock.Any()).Return(nil).AnyTimes()
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	m.security.EXPECT().AuthnSuccess(gomock.Any(), gomock.Any()).AnyTimes()
	m.security.EXPECT().AuthnFailure(gomock.Any(), gomock.Any()).AnyTimes()

	return m
}

type codeMatcher struct {
	code string
}

func (m codeMatcher) Matches(x any) bool {
	err, ok := x.(error)
	if !ok {
		return false
	}
	ae := new(AuthenticationError)
	return errors.As(err, &ae) && ae.Code == m.code
}

func (m codeMatcher) String() string {
	return fmt.Sprintf("is an AuthenticationError with code %s", m.code)
}

func hasCode(code string) gomock.Matcher {
	return codeMatcher{code: code}
}
