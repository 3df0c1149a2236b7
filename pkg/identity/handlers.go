// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
	"github.com/canonical/firebase-auth-strategy/internal/monitoring"
	"github.com/canonical/firebase-auth-strategy/internal/tracing"
	"github.com/canonical/firebase-auth-strategy/pkg/authentication"
)

type Principal struct {
	Subject string         `json:"subject"`
	Claims  map[string]any `json:"claims,omitempty"`
}

// API exposes the principal established by the authentication middleware
type API struct {
	authenticate func(http.Handler) http.Handler

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	r := chi.Router(mux)
	if a.authenticate != nil {
		r = mux.With(a.authenticate)
	}
	r.Get("/api/v0/me", a.handleMe)
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "identity.API.handleMe")
	defer span.End()

	p, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		a.writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "no authenticated principal",
		})
		return
	}

	resp := Principal{}
	switch principal := p.(type) {
	case authentication.Claims:
		resp.Subject = principal.Subject()
		resp.Claims = principal
	case string:
		resp.Subject = principal
	default:
		a.logger.Debugf("unexpected principal type %T", p)
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

// NewAPI mounts /api/v0/me behind authenticate, a nil middleware leaves the route unprotected
func NewAPI(
	authenticate func(http.Handler) http.Handler,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.authenticate = authenticate

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
