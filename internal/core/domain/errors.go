package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Credential Errors.

	// ErrNoCredential indicates no API key is configured.
	// The cycle is skipped; recoverable by user action.
	ErrNoCredential = errors.New("no API key configured")

	// ErrAuthInvalid indicates the remote service rejected the API key.
	ErrAuthInvalid = errors.New("authentication invalid")

	// Export API Errors.

	// ErrRateLimited indicates the export API rate limit was exceeded.
	// Treated as a transient failure; retried at the next interval.
	ErrRateLimited = errors.New("rate limited")

	// ErrMalformedResponse indicates the export API returned a body
	// that could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)
