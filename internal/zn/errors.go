package zn

import (
	"errors"
	"fmt"
)

// Domain errors for model construction and sweeping.
var (
	// ErrInvalidConfig indicates parameters no model can be built from.
	ErrInvalidConfig = errors.New("zn: invalid configuration")

	// ErrInvalidTemperature indicates a non-positive or NaN temperature.
	ErrInvalidTemperature = errors.New("zn: temperature must be positive")

	// ErrConsistency indicates the incrementally tracked energy or
	// magnetization diverged from a full recomputation. It signals a bug in
	// the engine, never a caller error.
	ErrConsistency = errors.New("zn: tracked state diverged from recomputation")
)

// ConsistencyError carries the quantity that diverged and both values.
type ConsistencyError struct {
	Quantity string
	Got      float64
	Want     float64
	Tol      float64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%v: %s tracked %g, recomputed %g (tol %g)",
		ErrConsistency, e.Quantity, e.Got, e.Want, e.Tol)
}

func (e *ConsistencyError) Unwrap() error {
	return ErrConsistency
}
