package domain

import "errors"

// Error taxonomy. Callers discriminate with errors.Is; wrapped messages
// carry the remote service's payload verbatim.
var (
	// ErrValidation marks malformed local input, caught before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials marks a credential or token rejection by the service.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden marks a role mismatch, detected locally or remotely.
	ErrForbidden = errors.New("access forbidden")
	// ErrNotFound marks a referenced complaint that no longer exists.
	ErrNotFound = errors.New("complaint not found")
	// ErrInvalidTransition marks an illegal status transition.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrUserExists marks a registration against a taken email.
	ErrUserExists = errors.New("user already exists")
	// ErrUnavailable marks an unreachable service or a non-2xx response
	// without a structured body.
	ErrUnavailable = errors.New("service unavailable")
)
