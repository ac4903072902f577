// Package common defines shared constants and sentinel errors used across
// the client and server layers of e-store-pos. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation error")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrSessionRevoked means the presented refresh token no longer matches
	// the one stored for the user, i.e. the session was rotated or logged out.
	ErrSessionRevoked = errors.New("session revoked")
)

// Cookie names shared between the server handlers and the client gateway.
const (
	AccessTokenCookieName  = "accessToken"
	RefreshTokenCookieName = "refreshToken"
)
