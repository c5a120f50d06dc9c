package ledger

import "errors"

var (
	// ErrValidation is returned when required registration input is
	// missing or inconsistent. Nothing is persisted.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when the referenced customer does not exist.
	ErrNotFound = errors.New("customer not found")

	// ErrInvalidAmount is returned for non-positive payment amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidDuration is returned for non-positive extension periods.
	ErrInvalidDuration = errors.New("duration must be positive")
)
