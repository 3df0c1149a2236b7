// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
)

const (
	VerifierFirebase = "firebase"
	VerifierOIDC     = "oidc"
	VerifierNoop     = "noop"
)

type VerifierConfig struct {
	Provider string

	// firebase
	FirebaseClient FirebaseAuthClientInterface

	// oidc
	Issuer        string
	JwksURL       string
	HydraAdminURL string
}

// NewTokenVerifier initializes the token verifier selected by configuration.
func NewTokenVerifier(
	ctx context.Context,
	cfg *VerifierConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	switch cfg.Provider {
	case VerifierNoop:
		logger.Info("Token verification is disabled, every token is accepted")
		return NewNoopVerifier(), nil
	case VerifierFirebase:
		if cfg.FirebaseClient == nil {
			return nil, fmt.Errorf("firebase verifier requires an initialized firebase auth client")
		}
		logger.Info("Token verification is delegated to Firebase Authentication")
		return NewFirebaseVerifier(cfg.FirebaseClient, tracer, monitor, logger), nil
	case VerifierOIDC:
		return newOIDCVerifier(ctx, cfg, tracer, monitor, logger)
	default:
		return nil, fmt.Errorf("unknown token verifier %q", cfg.Provider)
	}
}

func newOIDCVerifier(
	ctx context.Context,
	cfg *VerifierConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*JWTVerifier, error) {
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("AUTH_PROVIDER is oidc but AUTH_ISSUER is not configured")
	}

	var revocation RevocationCheckerInterface
	if cfg.HydraAdminURL != "" {
		logger.Infof("Using Hydra introspection for revocation checks: %s", cfg.HydraAdminURL)
		revocation = NewHydraRevocationChecker(cfg.HydraAdminURL, tracer, logger)
	}

	if cfg.JwksURL != "" {
		logger.Infof("Using manual JWKS URL: %s", cfg.JwksURL)
		_, idTokenVerifier, err := NewProviderWithJWKS(ctx, cfg.Issuer, cfg.JwksURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create JWKS verifier: %w", err)
		}
		logger.Info("OIDC token verification is enabled with manual JWKS URL")
		return NewJWTVerifierDirect(idTokenVerifier, revocation, tracer, monitor, logger), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", cfg.Issuer)
	provider, err := NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}
	logger.Info("OIDC token verification is enabled with OIDC discovery")

	return NewJWTVerifier(provider, revocation, tracer, monitor, logger), nil
}
