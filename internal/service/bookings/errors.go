package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking has the requested id.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the caller is neither the booking's
	// client nor its artist, or asks for another party's listing.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed filter values.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("bookings service: internal error")
)
