package transition_booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking has the requested id.
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrForbidden is returned when the actor is neither the booking's
	// client nor its artist.
	ErrForbidden = errors.New("transition_booking: actor is not a party to this booking")

	// ErrInvalidTransition is returned when the state machine rejects the
	// requested transition for the current status, actor role or time.
	ErrInvalidTransition = errors.New("transition_booking: invalid transition")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("transition_booking: invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("transition_booking: internal error")
)
