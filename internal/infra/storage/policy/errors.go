package policy

import "errors"

var (
	// ErrPolicyNotFound is returned when an artist has no deposit policy.
	ErrPolicyNotFound = errors.New("policy.repository: deposit policy not found")

	// ErrBuildQuery is returned when a SQL statement cannot be built.
	ErrBuildQuery = errors.New("policy.repository: failed to build query")

	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("policy.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("policy.repository: failed to scan row")
)
