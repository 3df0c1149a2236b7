// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/canonical/firebase-auth-strategy/internal/config"
	"github.com/canonical/firebase-auth-strategy/internal/firebase"
	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
	"github.com/canonical/firebase-auth-strategy/pkg/authentication"
)

// buildVerifier creates the identity provider client once for the whole process
func buildVerifier(
	ctx context.Context,
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (authentication.TokenVerifierInterface, error) {
	cfg := &authentication.VerifierConfig{
		Provider:      specs.AuthenticationProvider,
		Issuer:        specs.AuthenticationIssuer,
		JwksURL:       specs.AuthenticationJwksURL,
		HydraAdminURL: specs.AuthenticationHydraAdmin,
	}

	if !specs.AuthenticationEnabled {
		logger.Info("Authentication is disabled")
		cfg.Provider = authentication.VerifierNoop
	}

	if cfg.Provider == authentication.VerifierFirebase {
		client, err := firebase.NewAuthClient(
			ctx,
			firebase.NewConfig(specs.FirebaseProjectID, specs.FirebaseCredentialsFile),
			logger,
		)

		availability := 1.0
		if err != nil {
			availability = 0
		}
		if merr := monitor.SetDependencyAvailability(map[string]string{"component": "firebase"}, availability); merr != nil {
			logger.Debugf("error setting firebase availability metric: %v", merr)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to setup firebase: %w", err)
		}

		cfg.FirebaseClient = client
	}

	return authentication.NewTokenVerifier(ctx, cfg, tracer, monitor, logger)
}
