// Package common defines shared constants and sentinel errors used across
// client and server layers of TouchBase. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// Messages returned to the client verbatim on authentication failures.
// The CLI prints them as-is, so they are phrased for end users.
const (
	MsgInvalidCredentials  = "invalid login credentials"
	MsgAlreadyRegistered   = "user already registered"
	MsgEmailNotConfirmed   = "email not confirmed"
	MsgInvalidConfirmation = "invalid confirmation token"
)

// Authentication failures carrying the end-user messages above.
var (
	ErrInvalidCredentials  = errors.New(MsgInvalidCredentials)
	ErrAlreadyRegistered   = errors.New(MsgAlreadyRegistered)
	ErrEmailNotConfirmed   = errors.New(MsgEmailNotConfirmed)
	ErrInvalidConfirmation = errors.New(MsgInvalidConfirmation)
)
