// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/canonical/firebase-auth-strategy/internal/config"
	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
	"github.com/canonical/firebase-auth-strategy/pkg/authentication"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a single token and print its claims",
	Long: `Run a token through the authentication strategy and print the decoded claims as JSON.

The identity provider is configured through the same environment variables as serve,
flags take precedence.

Example:
  firebase-auth-strategy verify --token "$ID_TOKEN" --check-revoked`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runVerify(cmd, cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().String("token", "", "Raw token to verify")
	verifyCmd.Flags().Bool("check-revoked", false, "Also check whether the token has been revoked")
	verifyCmd.Flags().String("provider", "", "Identity provider to verify against (firebase, oidc, noop)")

	_ = verifyCmd.MarkFlagRequired("token")

	rootCmd.AddCommand(verifyCmd)
}

// verifySignals keeps the outcome of the single verification run
type verifySignals struct {
	principal any
	reason    error
}

func (s *verifySignals) Success(principal any) {
	s.principal = principal
}

func (s *verifySignals) Fail(reason error, _ int) {
	s.reason = reason
}

// verifyExtractor accepts the token with or without the Bearer scheme
func verifyExtractor() authentication.ExtractorFunc {
	return authentication.FromExtractors(
		authentication.FromAuthHeaderAsBearerToken(),
		authentication.FromHeader(authentication.HeaderAuthorization),
	)
}

func runVerify(cmd *cobra.Command, out io.Writer) error {
	token, _ := cmd.Flags().GetString("token")
	checkRevoked, _ := cmd.Flags().GetBool("check-revoked")
	provider, _ := cmd.Flags().GetString("provider")

	specs, err := config.Load()
	if err != nil {
		return err
	}

	if provider != "" {
		specs.AuthenticationProvider = provider
	}
	if checkRevoked {
		specs.AuthenticationCheckRevoked = true
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := monitoring.NewNoopMonitor(serviceName)
	tracer := tracing.NewTracer(tracing.NewConfig(false, "", "", logger))

	ctx := context.Background()

	verifier, err := buildVerifier(ctx, specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	strategy, err := authentication.NewStrategy(
		authentication.NewConfig(verifyExtractor(), specs.AuthenticationCheckRevoked),
		verifier,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return err
	}
	req.Header.Set(authentication.HeaderAuthorization, token)

	signals := new(verifySignals)
	strategy.Authenticate(req, signals)

	if signals.reason != nil {
		return signals.reason
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(signals.principal)
}
