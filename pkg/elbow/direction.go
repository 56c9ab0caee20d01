// Package elbow computes orthogonal ("elbow") connector paths between two
// points, each optionally constrained to leave or enter along an axis.
package elbow

import "fmt"

// Direction is the axis and sign along which a connector must leave (start)
// or arrive at (end) a point. The zero value means no constraint.
type Direction int

const (
	None Direction = iota
	PosX           // x+
	NegX           // x-
	PosY           // y+
	NegY           // y-
)

// ParseDirection maps a facing tag to a Direction. An empty tag or "none"
// yields None.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "none":
		return None, nil
	case "x+":
		return PosX, nil
	case "x-":
		return NegX, nil
	case "y+":
		return PosY, nil
	case "y-":
		return NegY, nil
	}
	return None, fmt.Errorf("%w: unknown facing %q", ErrInvalidDirection, s)
}

// String returns the facing tag ("x+", "y-", ...) or "none".
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case PosX:
		return "x+"
	case NegX:
		return "x-"
	case PosY:
		return "y+"
	case NegY:
		return "y-"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the five defined directions.
func (d Direction) Valid() bool {
	return d >= None && d <= NegY
}

// Vector returns the unit step for d, or (0, 0) for None.
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case PosX:
		return 1, 0
	case NegX:
		return -1, 0
	case PosY:
		return 0, 1
	case NegY:
		return 0, -1
	}
	return 0, 0
}

// Opposite returns the reverse direction. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case PosX:
		return NegX
	case NegX:
		return PosX
	case PosY:
		return NegY
	case NegY:
		return PosY
	}
	return d
}

// directionOf is the inverse of Vector for axis-aligned unit steps.
func directionOf(dx, dy float64) Direction {
	switch {
	case dx > 0:
		return PosX
	case dx < 0:
		return NegX
	case dy > 0:
		return PosY
	case dy < 0:
		return NegY
	}
	return None
}

// StartFacing is the facing a normalized start point may have. Only "none"
// and "+x" are representable, so the router never sees any other start.
type StartFacing int

const (
	StartNone StartFacing = iota
	StartPosX
)

// Direction widens f to a Direction.
func (f StartFacing) Direction() Direction {
	if f == StartPosX {
		return PosX
	}
	return None
}

func (f StartFacing) String() string {
	if !f.Valid() {
		return fmt.Sprintf("StartFacing(%d)", int(f))
	}
	return f.Direction().String()
}

// Valid reports whether f is StartNone or StartPosX.
func (f StartFacing) Valid() bool {
	return f == StartNone || f == StartPosX
}
