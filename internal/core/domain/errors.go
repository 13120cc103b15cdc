package domain

import "errors"

// Shared domain errors
var (
	// ErrInvalidParameter marks validation failures on caller input.
	ErrInvalidParameter = errors.New("invalid parameters")

	// ErrAccountNotFound is returned when an account id does not exist
	// in the banking core.
	ErrAccountNotFound = errors.New("account not found")
)
