package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgInvalidSession = "invalid session"
	ErrMsgUnauthorized   = "unauthorized"
	ErrMsgLoginExhausted = "login retries exhausted"
	ErrMsgMissingToken   = "response has no token"
	ErrMsgRefreshFailed  = "token refresh failed"
	ErrMsgNotLoggedIn    = "not logged in"
	ErrMsgMissingPayload = "web app payload is empty"
	ErrMsgProxyRequired  = "proxy is required"

	// Response errors
	ErrMsgUnexpectedShape = "unexpected response shape"

	// Config errors
	ErrMsgInvalidRange = "invalid range"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidSession means the handshake credentials are unusable; the account stops.
	ErrInvalidSession = errors.New(ErrMsgInvalidSession)

	// ErrUnauthorized is returned when the remote API rejects the bearer token.
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	ErrLoginExhausted = errors.New(ErrMsgLoginExhausted)
	ErrMissingToken   = errors.New(ErrMsgMissingToken)
	ErrRefreshFailed  = errors.New(ErrMsgRefreshFailed)
	ErrNotLoggedIn    = errors.New(ErrMsgNotLoggedIn)
	ErrMissingPayload = errors.New(ErrMsgMissingPayload)
	ErrProxyRequired  = errors.New(ErrMsgProxyRequired)

	// ErrUnexpectedShape is returned when a decoded response lacks an expected field.
	ErrUnexpectedShape = errors.New(ErrMsgUnexpectedShape)

	ErrInvalidRange = errors.New(ErrMsgInvalidRange)
)
