package service

import "errors"

var (
	// ErrValidation marks a missing or malformed required field. Handlers
	// translate it to a 400.
	ErrValidation = errors.New("validation failed")

	// ErrSlugTaken is returned when a product create would duplicate an
	// existing slug. Handlers translate it to a 409.
	ErrSlugTaken = errors.New("slug already in use")

	// ErrInvalidStatus is returned when an inquiry status update names a
	// value outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid inquiry status")
)
