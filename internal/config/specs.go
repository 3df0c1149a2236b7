// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderFirebase = "firebase"
	ProviderOIDC     = "oidc"
	ProviderNoop     = "noop"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error" validate:"oneof=debug info warn warning error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080" validate:"min=1,max=65535"`

	AuthenticationEnabled  bool   `envconfig:"auth_enabled" default:"true"`
	AuthenticationProvider string `envconfig:"auth_provider" default:"firebase" validate:"oneof=firebase oidc noop"`
	// AuthenticationTokenLookup lists where tokens are looked up, e.g. header:Authorization,query:token,cookie:jwt
	AuthenticationTokenLookup string `envconfig:"auth_token_lookup" default:"header:Authorization" validate:"required"`
	// AuthenticationCheckRevoked is false unless explicitly enabled
	AuthenticationCheckRevoked bool   `envconfig:"auth_check_revoked" default:"false"`
	AuthenticationIssuer       string `envconfig:"auth_issuer" validate:"required_if=AuthenticationProvider oidc"`
	AuthenticationJwksURL      string `envconfig:"auth_jwks_url" validate:"omitempty,url"`
	AuthenticationHydraAdmin   string `envconfig:"auth_hydra_admin_url" validate:"omitempty,url"`
	// AuthenticationAllowedSubjects is a comma separated allow list, empty allows every verified subject
	AuthenticationAllowedSubjects string `envconfig:"auth_allowed_subjects"`
	AuthenticationRealm           string `envconfig:"auth_realm" default:"firebase-auth-strategy"`

	FirebaseProjectID       string `envconfig:"firebase_project_id"`
	FirebaseCredentialsFile string `envconfig:"firebase_credentials_file"`
}

// Validate checks cross field constraints envconfig cannot express
func (s *EnvSpec) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if s.AuthenticationEnabled && s.AuthenticationCheckRevoked && s.AuthenticationProvider == ProviderOIDC && s.AuthenticationHydraAdmin == "" {
		return fmt.Errorf("invalid configuration: AUTH_CHECK_REVOKED with the oidc provider requires AUTH_HYDRA_ADMIN_URL")
	}

	return nil
}

// Load sources the environment and validates the result
func Load() (*EnvSpec, error) {
	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	if err := specs.Validate(); err != nil {
		return nil, err
	}

	return specs, nil
}
