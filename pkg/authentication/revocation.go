// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	hydra "github.com/ory/hydra-client-go/v2"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
)

// HydraRevocationChecker asks the Hydra admin API whether a token is still active
type HydraRevocationChecker struct {
	client *hydra.APIClient

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (c *HydraRevocationChecker) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "authentication.HydraRevocationChecker.IsRevoked")
	defer span.End()

	introspected, _, err := c.client.OAuth2API.IntrospectOAuth2Token(ctx).Token(rawToken).Execute()
	if err != nil {
		return false, fmt.Errorf("failed to introspect token: %w", err)
	}

	if !introspected.GetActive() {
		c.logger.Debugf("token for subject %q is no longer active", introspected.GetSub())
		return true, nil
	}

	return false, nil
}

func NewHydraRevocationChecker(adminURL string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *HydraRevocationChecker {
	configuration := hydra.NewConfiguration()
	configuration.Servers = []hydra.ServerConfiguration{
		{
			URL: adminURL,
		},
	}
	configuration.HTTPClient = &otelHTTPClient

	c := new(HydraRevocationChecker)
	c.client = hydra.NewAPIClient(configuration)
	c.tracer = tracer
	c.logger = logger

	return c
}
