package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP status codes; anything unrecognized becomes a 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")

	// Registration business-rule violations. Never retried.
	ErrAlreadyRegistered = errors.New("already registered for this conference")
	ErrNoSeatsAvailable  = errors.New("no seats available")

	// Filter compilation failures.
	ErrInvalidFilter             = errors.New("filter contains invalid field or operator")
	ErrMultipleInequalityFilters = errors.New("inequality filter is allowed on only one field")

	// ErrTransient is returned when storage contention persists past the
	// bounded retry budget.
	ErrTransient = errors.New("transient storage failure")

	ErrProfileNotFound    = errors.New("profile not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
