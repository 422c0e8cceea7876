package create_booking

import "errors"

var (
	// ErrAvailabilityNotFound is returned when the artist has no
	// availability record to book against.
	ErrAvailabilityNotFound = errors.New("create_booking: availability not found")

	// ErrInvalidSlot is returned when the requested window does not lie on
	// the artist's availability grid (outside open hours, off-granularity
	// start, or bad duration).
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotConflict is returned when the slot is no longer free. The
	// caller should refresh the slot list and pick again; retrying the same
	// slot blindly will keep failing.
	ErrSlotConflict = errors.New("create_booking: slot conflict")

	// ErrTooLateToBook is returned when the slot start violates the
	// artist's cutoff lead time.
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrPolicyNotConfigured is returned when a paid appointment is
	// requested but the artist has no usable deposit policy.
	ErrPolicyNotConfigured = errors.New("create_booking: deposit policy not configured")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("create_booking: internal error")
)
