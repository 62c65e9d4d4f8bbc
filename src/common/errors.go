package common

import "errors"

var (
	// ErrValidation covers malformed or missing booking input caught before
	// any store call.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when a booking lookup matches no row.
	ErrNotFound = errors.New("booking not found")
	// ErrTerminalStatus rejects transitions out of completed/cancelled.
	ErrTerminalStatus = errors.New("booking is in a terminal status")
	// ErrInvalidTransition rejects disallowed payment-status moves.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrRetryExhausted means booking-number generation kept colliding.
	ErrRetryExhausted = errors.New("could not allocate a unique booking number")
)
