// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
)

// JWTVerifier verifies tokens issued by a generic OIDC provider
type JWTVerifier struct {
	verifier   *oidc.IDTokenVerifier
	revocation RevocationCheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string, checkRevoked bool) (Claims, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	if checkRevoked {
		if v.revocation == nil {
			return nil, ErrRevocationUnsupported
		}

		revoked, err := v.revocation.IsRevoked(ctx, rawToken)
		if err != nil {
			return nil, fmt.Errorf("failed to check token revocation: %w", err)
		}

		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	claims := make(Claims)
	if err := token.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to decode token claims: %w", err)
	}

	return claims, nil
}

func NewJWTVerifier(provider ProviderInterface, revocation RevocationCheckerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	return NewJWTVerifierDirect(provider.Verifier(verifierConfig()), revocation, tracer, monitor, logger)
}

func NewJWTVerifierDirect(verifier *oidc.IDTokenVerifier, revocation RevocationCheckerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.revocation = revocation

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
