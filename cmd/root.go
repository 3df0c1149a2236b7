// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const serviceName = "firebase-auth-strategy"

var rootCmd = &cobra.Command{
	Use:   serviceName,
	Short: "Bearer token authentication backed by Firebase Authentication",
	Long: `Authentication service guarding HTTP routes with a bearer token strategy.

Tokens are verified by Firebase Authentication or by a generic OIDC issuer,
optionally checking revocation.`,
}

// Execute runs the root command, exiting non zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
