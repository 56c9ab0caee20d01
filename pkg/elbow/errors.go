package elbow

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidOvershoot is returned when the overshoot is negative or not finite.
	ErrInvalidOvershoot = errors.New("overshoot must be a non-negative finite number")

	// ErrInvalidCoordinate is returned when any endpoint coordinate is not finite.
	ErrInvalidCoordinate = errors.New("all coordinates must be finite numbers")

	// ErrInvalidDirection is returned for facing values outside the enum.
	ErrInvalidDirection = errors.New("invalid facing direction")
)

func validate(start, end Endpoint, overshoot float64) error {
	if math.IsNaN(overshoot) || math.IsInf(overshoot, 0) || overshoot < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidOvershoot, overshoot)
	}
	if !start.finite() {
		return fmt.Errorf("%w: start (%v, %v)", ErrInvalidCoordinate, start.X, start.Y)
	}
	if !end.finite() {
		return fmt.Errorf("%w: end (%v, %v)", ErrInvalidCoordinate, end.X, end.Y)
	}
	if !start.Facing.Valid() {
		return fmt.Errorf("%w: start %v", ErrInvalidDirection, start.Facing)
	}
	if !end.Facing.Valid() {
		return fmt.Errorf("%w: end %v", ErrInvalidDirection, end.Facing)
	}
	return nil
}
