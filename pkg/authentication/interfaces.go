// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/coreos/go-oidc/v3/oidc"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw token and returns its decoded claims
	VerifyToken(ctx context.Context, rawToken string, checkRevoked bool) (Claims, error)
}

type RevocationCheckerInterface interface {
	// IsRevoked reports whether the identity provider no longer considers the token active
	IsRevoked(ctx context.Context, rawToken string) (bool, error)
}

// FirebaseAuthClientInterface is the subset of *auth.Client used for ID token verification
type FirebaseAuthClientInterface interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
}

// SignalsInterface receives the outcome of one authentication attempt, exactly one call per attempt
type SignalsInterface interface {
	Success(principal any)
	Fail(reason error, statusCode int)
}

type StrategyInterface interface {
	// Name identifies the strategy in a Registry
	Name() string
	Authenticate(r *http.Request, signals SignalsInterface)
}
