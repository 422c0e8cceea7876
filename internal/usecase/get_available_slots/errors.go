package get_available_slots

import "errors"

var (
	// ErrAvailabilityNotFound is returned when the artist has no
	// availability record.
	ErrAvailabilityNotFound = errors.New("get_available_slots: availability not found")

	// ErrInvalidDuration is returned when the requested duration is not a
	// positive multiple of the artist's slot granularity.
	ErrInvalidDuration = errors.New("get_available_slots: invalid duration")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
