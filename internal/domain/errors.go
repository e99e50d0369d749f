package domain

import "errors"

var (
	// ErrNotFound is returned when a car, rental or schedule cannot be
	// resolved under the expected state filter.
	ErrNotFound = errors.New("not found")

	// ErrCarUnavailable is returned when a rental is created against a car
	// that is not in the active status.
	ErrCarUnavailable = errors.New("car is not available for rent")

	// ErrInvalidState is returned when an action is attempted on a rental,
	// schedule or car that is not in the required lifecycle state.
	ErrInvalidState = errors.New("invalid state for this operation")

	// ErrValidation is returned for malformed monetary or period input.
	ErrValidation = errors.New("validation failed")
)
