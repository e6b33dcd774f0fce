package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
	// ErrUnavailable wraps transient store failures the caller may retry.
	ErrUnavailable = errors.New("store unavailable")
	// ErrConcurrencyConflict surfaces only after the bounded internal retry
	// on optimistic state updates is exhausted.
	ErrConcurrencyConflict = errors.New("concurrent update conflict")
)
