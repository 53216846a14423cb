package bplus

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bplus: invalid configuration")
	// ErrInvariantViolated is returned by Check when the tree structure is
	// internally inconsistent. It always indicates a bug in this package,
	// never an input error.
	ErrInvariantViolated = errors.New("bplus: tree invariant violated")
)
