// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
)

type Settings struct {
	TokenLookup     string
	CheckRevoked    bool
	AllowedSubjects string
	Realm           string
}

// SetupAuthentication builds the strategy from settings, registers it and returns the
// middleware guarding routes with it
func SetupAuthentication(
	settings Settings,
	verifier TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Middleware, *Strategy, error) {
	extractor, err := ExtractorFromLookup(settings.TokenLookup, SchemeBearer)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build token extractor: %w", err)
	}

	config := NewConfig(extractor, settings.CheckRevoked)
	if subjects := ParseList(settings.AllowedSubjects); len(subjects) > 0 {
		logger.Infof("Restricting authentication to %d subjects", len(subjects))
		config.Validate = AllowSubjects(subjects...)
	}

	strategy, err := NewStrategy(config, verifier, tracer, monitor, logger)
	if err != nil {
		return nil, nil, err
	}

	registry := NewRegistry()
	if err := registry.Register(strategy); err != nil {
		return nil, nil, err
	}

	return NewMiddleware(registry, settings.Realm, tracer, monitor, logger), strategy, nil
}
