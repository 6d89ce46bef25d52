// Package apperr defines the error taxonomy shared across stores,
// services, and handlers. Callers classify failures with errors.Is.
package apperr

import "errors"

var (
	// ErrNotFound: a lookup (invitation code, document id) matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrValidation: the request was malformed before any store access.
	ErrValidation = errors.New("invalid input")

	// ErrAuthRequired: the operation needs an authenticated user and none
	// was supplied.
	ErrAuthRequired = errors.New("authentication required")

	// ErrPersistence: a read, write, or transaction against the backing
	// store failed. Wrapped around the driver error at the store boundary.
	ErrPersistence = errors.New("persistence failure")
)
