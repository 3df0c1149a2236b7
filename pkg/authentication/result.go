// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
)

type Outcome int

const (
	OutcomeSuccess Outcome = iota + 1
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result holds exactly one outcome of an authentication attempt
type Result struct {
	outcome   Outcome
	principal any
	reason    error
	status    int
}

func NewSuccess(principal any) *Result {
	return &Result{outcome: OutcomeSuccess, principal: principal}
}

func NewFailure(reason error, status int) *Result {
	return &Result{outcome: OutcomeFailure, reason: reason, status: status}
}

func (r *Result) Outcome() Outcome {
	return r.outcome
}

func (r *Result) Principal() any {
	return r.principal
}

func (r *Result) Reason() error {
	return r.reason
}

func (r *Result) StatusCode() int {
	return r.status
}

// Code is the error code of a failure, empty for a success
func (r *Result) Code() string {
	if r.outcome == OutcomeSuccess {
		return ""
	}
	return ErrorCode(r.reason)
}

// Signal delivers the outcome to the host, calling exactly one of Success or Fail
func (r *Result) Signal(signals SignalsInterface) {
	switch r.outcome {
	case OutcomeSuccess:
		signals.Success(r.principal)
	case OutcomeFailure:
		signals.Fail(r.reason, r.status)
	default:
		// zero value Result, never produced by Strategy
		signals.Fail(NewInternalError(nil, "Signal"), http.StatusUnauthorized)
	}
}
