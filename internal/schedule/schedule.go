// Package schedule builds the temperature sequences a run sweeps through.
package schedule

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/spinlab/internal/zn"
)

// Schedule is a finite ordered sequence of sweep temperatures.
type Schedule []float64

// Linear spans steps temperatures from from to to, inclusive at both ends.
// A single step pins the schedule at from.
func Linear(from, to float64, steps int) Schedule {
	if steps < 1 {
		return nil
	}
	if steps == 1 {
		return Schedule{from}
	}
	return Schedule(floats.Span(make([]float64, steps), from, to))
}

// Geometric scales from toward to by a constant ratio per step, inclusive
// at both ends.
func Geometric(from, to float64, steps int) Schedule {
	if steps < 1 {
		return nil
	}
	if steps == 1 {
		return Schedule{from}
	}
	ratio := math.Pow(to/from, 1/float64(steps-1))
	s := make(Schedule, steps)
	t := from
	for i := range s {
		s[i] = t
		t *= ratio
	}
	s[steps-1] = to
	return s
}

// Constant holds t for steps sweeps.
func Constant(t float64, steps int) Schedule {
	if steps < 1 {
		return nil
	}
	s := make(Schedule, steps)
	for i := range s {
		s[i] = t
	}
	return s
}

// FromValues copies an explicit temperature list.
func FromValues(vs ...float64) Schedule {
	return append(Schedule(nil), vs...)
}

// Validate rejects empty schedules and any non-positive or NaN entry.
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty schedule", zn.ErrInvalidTemperature)
	}
	for i, t := range s {
		if math.IsNaN(t) || t <= 0 {
			return fmt.Errorf("%w: step %d is %g", zn.ErrInvalidTemperature, i, t)
		}
	}
	return nil
}
