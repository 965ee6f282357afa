// Package common defines shared constants and sentinel errors used across
// the gateway components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Credential store errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrEmptyCredentials   = errors.New("username and password must not be empty")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Session errors.
	ErrUnauthorized         = errors.New("unauthorized")
	ErrAlreadyAuthenticated = errors.New("session is already authenticated")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Prediction errors.
	ErrUnknownDiseaseType = errors.New("unknown disease type")
	ErrModelUnavailable   = errors.New("model unavailable")

	// Input validation errors.
	ErrFieldCount   = errors.New("wrong number of fields")
	ErrMissingField = errors.New("missing field")
	ErrNotNumeric   = errors.New("not numeric")
)
