// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
)

// FirebaseVerifier delegates to the process wide Firebase auth client, which owns
// key rotation and revocation lookups
type FirebaseVerifier struct {
	client FirebaseAuthClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *FirebaseVerifier) VerifyToken(ctx context.Context, rawToken string, checkRevoked bool) (Claims, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.FirebaseVerifier.VerifyToken")
	defer span.End()

	var (
		token *auth.Token
		err   error
	)

	if checkRevoked {
		token, err = v.client.VerifyIDTokenAndCheckRevoked(ctx, rawToken)
	} else {
		token, err = v.client.VerifyIDToken(ctx, rawToken)
	}

	if err != nil {
		return nil, err
	}

	return ClaimsFromFirebaseToken(token), nil
}

func NewFirebaseVerifier(client FirebaseAuthClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *FirebaseVerifier {
	v := new(FirebaseVerifier)

	v.client = client

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
