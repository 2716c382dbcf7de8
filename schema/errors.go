package schema

import "errors"

// Error taxonomy for a trends report. Callers wrap these with context and
// match them with errors.Is.
var (
	// ErrInvalidConfiguration means the period or first-day convention is malformed.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrBackendQueryFailed means git returned nothing usable where a definite result was required.
	ErrBackendQueryFailed = errors.New("backend query failed")

	// ErrDivisionByZero means a bucket has churn against an empty repository snapshot.
	ErrDivisionByZero = errors.New("division by zero")
)
