// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
	"github.com/canonical/firebase-auth-strategy/internal/version"
)

func TestStatusEndpoints(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

	t.Run("status", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rr.Code)
		}

		s := new(Status)
		if err := json.NewDecoder(rr.Body).Decode(s); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if s.Status != okValue {
			t.Errorf("expected status %q, got %q", okValue, s.Status)
		}
		if s.BuildInfo == nil || s.BuildInfo.Version != version.Version {
			t.Errorf("unexpected build info %+v", s.BuildInfo)
		}
	})

	t.Run("version", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/version", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rr.Code)
		}

		info := new(BuildInfo)
		if err := json.NewDecoder(rr.Body).Decode(info); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if info.Version != version.Version {
			t.Errorf("expected version %q, got %q", version.Version, info.Version)
		}
	})
}
