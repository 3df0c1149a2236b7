// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
	"github.com/canonical/firebase-auth-strategy/pkg/authentication"
)

func withPrincipal(p any) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authentication.WithPrincipal(r.Context(), p)))
		})
	}
}

func TestHandleMe(t *testing.T) {
	tests := []struct {
		name            string
		middleware      func(http.Handler) http.Handler
		expectedStatus  int
		expectedSubject string
	}{
		{
			name:            "claims principal",
			middleware:      withPrincipal(authentication.Claims{"uid": "u1", "email": "u1@example.com"}),
			expectedStatus:  http.StatusOK,
			expectedSubject: "u1",
		},
		{
			name:            "string principal",
			middleware:      withPrincipal("u2"),
			expectedStatus:  http.StatusOK,
			expectedSubject: "u2",
		},
		{
			name:           "no principal",
			middleware:     nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux := chi.NewMux()
			NewAPI(test.middleware, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/me", nil))

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
			if test.expectedStatus != http.StatusOK {
				return
			}

			p := new(Principal)
			if err := json.NewDecoder(rr.Body).Decode(p); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if p.Subject != test.expectedSubject {
				t.Errorf("expected subject %q, got %q", test.expectedSubject, p.Subject)
			}
		})
	}
}
