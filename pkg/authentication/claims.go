// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"firebase.google.com/go/v4/auth"
)

// Claims is the decoded identity payload produced by a verifier, passed through untouched
type Claims map[string]any

// Subject returns the uid claim, falling back to sub
func (c Claims) Subject() string {
	if uid, ok := c["uid"].(string); ok && uid != "" {
		return uid
	}
	if sub, ok := c["sub"].(string); ok {
		return sub
	}
	return ""
}

// ClaimsFromFirebaseToken flattens a verified Firebase ID token into the decoded payload shape
func ClaimsFromFirebaseToken(token *auth.Token) Claims {
	claims := make(Claims, len(token.Claims)+8)
	for k, v := range token.Claims {
		claims[k] = v
	}

	claims["uid"] = token.UID
	claims["sub"] = token.Subject
	claims["iss"] = token.Issuer
	claims["aud"] = token.Audience
	claims["exp"] = token.Expires
	claims["iat"] = token.IssuedAt
	claims["auth_time"] = token.AuthTime

	firebase := make(map[string]any)
	if raw, ok := token.Claims["firebase"].(map[string]any); ok {
		for k, v := range raw {
			firebase[k] = v
		}
	}

	// the typed fields only fill what the raw payload does not carry
	if _, ok := firebase["sign_in_provider"]; !ok {
		firebase["sign_in_provider"] = token.Firebase.SignInProvider
	}
	if _, ok := firebase["identities"]; !ok {
		firebase["identities"] = token.Firebase.Identities
	}
	if _, ok := firebase["tenant"]; !ok && token.Firebase.Tenant != "" {
		firebase["tenant"] = token.Firebase.Tenant
	}
	claims["firebase"] = firebase

	return claims
}
