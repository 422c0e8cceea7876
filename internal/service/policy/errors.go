package policy

import "errors"

var (
	// ErrPolicyNotFound is returned when the artist has no deposit policy.
	ErrPolicyNotFound = errors.New("deposit policy not found")

	// ErrAccessDenied is returned when the caller is not the artist whose
	// policy is being changed.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned when the submitted policy is incoherent
	// for its mode.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("policy service: internal error")
)
