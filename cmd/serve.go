// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/firebase-auth-strategy/internal/config"
	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring/prometheus"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
	"github.com/canonical/firebase-auth-strategy/pkg/authentication"
	"github.com/canonical/firebase-auth-strategy/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	verifier, err := buildVerifier(context.Background(), specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to setup token verifier: %v", err)
	}

	authMiddleware, strategy, err := authentication.SetupAuthentication(
		authentication.Settings{
			TokenLookup:     specs.AuthenticationTokenLookup,
			CheckRevoked:    specs.AuthenticationCheckRevoked,
			AllowedSubjects: specs.AuthenticationAllowedSubjects,
			Realm:           specs.AuthenticationRealm,
		},
		verifier,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to setup authentication: %v", err)
	}

	router := web.NewRouter(authMiddleware, []string{strategy.Name()}, tracer, monitor, logger)
	logger.Infof("Starting server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
