package availability

import "errors"

var (
	// ErrAvailabilityNotFound is returned when an artist has no
	// availability record yet.
	ErrAvailabilityNotFound = errors.New("availability.repository: availability not found")

	// ErrBuildQuery is returned when a SQL statement cannot be built.
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrEncode is returned when the weekly/exception maps cannot be
	// marshalled to JSON for storage.
	ErrEncode = errors.New("availability.repository: failed to encode schedule")
)
