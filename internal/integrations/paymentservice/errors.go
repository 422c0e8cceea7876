package paymentservice

import "errors"

var (
	// ErrChargeDeclined is returned when the processor refuses the charge
	// (insufficient funds, blocked card). A business outcome, not a fault.
	ErrChargeDeclined = errors.New("paymentservice client: charge declined")

	// ErrInternal is returned for request building and transport failures.
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse is returned when the processor answers with an
	// unexpected status or an unparseable body.
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")

	// ErrServiceUnavailable is returned when the processor cannot be
	// reached. The booking stays pending; the caller decides whether to
	// retry the charge or cancel.
	ErrServiceUnavailable = errors.New("paymentservice client: service unavailable")
)
