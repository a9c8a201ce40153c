package model

import "errors"

// Error kinds surfaced by the catalog. Callers match them with errors.Is;
// concrete errors wrap one of these with operation context.
var (
	// ErrInvalidArgument is returned when a required input is missing.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrValidation is returned when a Book invariant is violated.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when an operation needs at least one matching document.
	ErrNotFound = errors.New("book not found")
	// ErrConversion is returned when a stored document does not match the book schema.
	ErrConversion = errors.New("document conversion failed")
)
