// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"slices"
	"strings"
)

const DefaultStrategyName = "firebase-auth"

// ValidateFunc turns verified claims into the principal handed to the host.
// A nil principal with a nil error rejects the request.
type ValidateFunc func(ctx context.Context, claims Claims) (any, error)

type Config struct {
	// Name is used for registration in a Registry, defaults to DefaultStrategyName
	Name string
	// Extractor is required
	Extractor ExtractorFunc
	// CheckRevoked asks the verifier to also check revocation, false unless set
	CheckRevoked bool
	// Validate defaults to IdentityValidate
	Validate ValidateFunc
}

func NewConfig(extractor ExtractorFunc, checkRevoked bool) *Config {
	c := new(Config)

	c.Name = DefaultStrategyName
	c.Extractor = extractor
	c.CheckRevoked = checkRevoked
	c.Validate = IdentityValidate

	return c
}

// IdentityValidate returns the claims unchanged as the principal
func IdentityValidate(_ context.Context, claims Claims) (any, error) {
	return claims, nil
}

// AllowSubjects only accepts claims whose subject is listed, an empty list accepts everyone
func AllowSubjects(subjects ...string) ValidateFunc {
	return func(_ context.Context, claims Claims) (any, error) {
		if len(subjects) == 0 {
			return claims, nil
		}
		if slices.Contains(subjects, claims.Subject()) {
			return claims, nil
		}
		return nil, nil
	}
}

// ParseList splits a comma separated setting, dropping blanks
func ParseList(s string) []string {
	var ret []string
	for _, v := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			ret = append(ret, trimmed)
		}
	}
	return ret
}
