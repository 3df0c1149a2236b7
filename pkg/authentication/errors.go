// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"
)

// Error codes carried by AuthenticationError
const (
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeInvalidToken  = "INVALID_TOKEN"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

var (
	ErrMissingExtractor      = errors.New("extractor is not a function, an extractor must be provided to the strategy")
	ErrMissingVerifier       = errors.New("a token verifier must be provided to the strategy")
	ErrTokenRevoked          = errors.New("token has been revoked")
	ErrRevocationUnsupported = errors.New("revocation check requested but no revocation checker is configured")

	// ErrUnauthorized matches every AuthenticationError with code UNAUTHORIZED through errors.Is
	ErrUnauthorized = &AuthenticationError{Code: ErrCodeUnauthorized, Message: "unauthorized"}
	// ErrInvalidToken matches every AuthenticationError with code INVALID_TOKEN through errors.Is
	ErrInvalidToken = &AuthenticationError{Code: ErrCodeInvalidToken, Message: "invalid token"}
)

// AuthenticationError is the failure reason handed to the host on every runtime failure path
type AuthenticationError struct {
	Code       string // Machine-readable error code
	Message    string // Human-readable message, safe to return to clients
	Op         string // Operation that failed
	Underlying error  // The underlying error if any
}

func (e *AuthenticationError) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

// Is matches on the error code
func (e *AuthenticationError) Is(target error) bool {
	t, ok := target.(*AuthenticationError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func (e *AuthenticationError) Unwrap() error {
	return e.Underlying
}

func NewMissingTokenError(op string) *AuthenticationError {
	return &AuthenticationError{
		Code:    ErrCodeUnauthorized,
		Message: "missing token",
		Op:      op,
	}
}

func NewExtractionError(err error, op string) *AuthenticationError {
	return &AuthenticationError{
		Code:       ErrCodeUnauthorized,
		Message:    "unable to extract token",
		Op:         op,
		Underlying: err,
	}
}

func NewVerificationError(err error, op string) *AuthenticationError {
	return &AuthenticationError{
		Code:       ErrCodeInvalidToken,
		Message:    "token verification failed",
		Op:         op,
		Underlying: err,
	}
}

func NewRejectedClaimsError(op string) *AuthenticationError {
	return &AuthenticationError{
		Code:    ErrCodeUnauthorized,
		Message: "claims rejected",
		Op:      op,
	}
}

func NewValidationError(err error, op string) *AuthenticationError {
	return &AuthenticationError{
		Code:       ErrCodeUnauthorized,
		Message:    "claims validation failed",
		Op:         op,
		Underlying: err,
	}
}

func NewInternalError(err error, op string) *AuthenticationError {
	return &AuthenticationError{
		Code:       ErrCodeInternalError,
		Message:    "internal authentication error",
		Op:         op,
		Underlying: err,
	}
}

// ErrorCode returns the code of the first AuthenticationError in the chain, UNAUTHORIZED otherwise
func ErrorCode(err error) string {
	ae := new(AuthenticationError)
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ErrCodeUnauthorized
}

// PublicMessage renders a failure reason without leaking underlying verifier errors
func PublicMessage(err error) string {
	ae := new(AuthenticationError)
	if errors.As(err, &ae) {
		return fmt.Sprintf("%s: %s", ae.Code, ae.Message)
	}
	return ErrCodeUnauthorized
}
