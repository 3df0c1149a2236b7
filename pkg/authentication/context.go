// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, principal any) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (any, bool) {
	p := ctx.Value(principalKey{})
	return p, p != nil
}

// ClaimsFromContext returns the principal when it is the verified Claims
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(principalKey{}).(Claims)
	return c, ok
}
