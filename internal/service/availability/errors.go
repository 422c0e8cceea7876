package availability

import "errors"

var (
	// ErrAvailabilityNotFound is returned when the artist has no
	// availability record.
	ErrAvailabilityNotFound = errors.New("availability not found")

	// ErrAccessDenied is returned when the caller is not the artist whose
	// availability is being changed.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned when the submitted schedule violates a
	// structural invariant.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("availability service: internal error")
)
