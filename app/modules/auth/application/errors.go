package authservice

import "errors"

var (
	// ErrInvalidCredentials is returned on login failure. It is deliberately
	// identical for an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken is returned when no token is provided.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrUnauthorized is the umbrella failure surfaced to callers for any
	// identity resolution failure, regardless of underlying cause.
	ErrUnauthorized = errors.New("could not validate credentials")
)
