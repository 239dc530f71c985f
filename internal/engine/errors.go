package engine

import "errors"

// Domain errors for engine construction and stepping.
var (
	// ErrInvalidMass indicates a non-positive large-block mass at construction.
	ErrInvalidMass = errors.New("engine: mass must be positive")

	// ErrInvalidTimestep indicates Advance was called with dt <= 0.
	ErrInvalidTimestep = errors.New("engine: timestep must be positive")
)
