// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
)

type Config struct {
	ProjectID       string
	CredentialsFile string
}

func NewConfig(projectID, credentialsFile string) *Config {
	c := new(Config)

	c.ProjectID = projectID
	c.CredentialsFile = credentialsFile

	return c
}

// clientOptions falls back to application default credentials when no file is configured
func (c *Config) clientOptions() []option.ClientOption {
	opts := make([]option.ClientOption, 0)
	if c.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.CredentialsFile))
	}
	return opts
}

// NewAuthClient builds the process wide Firebase auth client, the SDK caches signing keys on it
func NewAuthClient(ctx context.Context, config *Config, logger logging.LoggerInterface) (*auth.Client, error) {
	var appConfig *firebase.Config
	if config.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: config.ProjectID}
	}

	opts := config.clientOptions()
	if len(opts) == 0 {
		logger.Info("No Firebase credentials file configured, using application default credentials")
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	logger.Infof("Firebase auth client initialized for project %q", config.ProjectID)

	return client, nil
}
