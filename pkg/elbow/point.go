package elbow

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Endpoint is a connector end: a point plus an optional facing.
type Endpoint struct {
	Point
	Facing Direction
}

// NormalizedStart is a start endpoint whose facing is restricted to none or +x.
type NormalizedStart struct {
	Point
	Facing StartFacing
}

// NormalizeStart converts e when its facing is representable as a
// StartFacing. It reports false for -x, +y and -y.
func NormalizeStart(e Endpoint) (NormalizedStart, bool) {
	switch e.Facing {
	case None:
		return NormalizedStart{Point: e.Point, Facing: StartNone}, true
	case PosX:
		return NormalizedStart{Point: e.Point, Facing: StartPosX}, true
	}
	return NormalizedStart{}, false
}

// Endpoint widens s back to a plain Endpoint.
func (s NormalizedStart) Endpoint() Endpoint {
	return Endpoint{Point: s.Point, Facing: s.Facing.Direction()}
}

// Advance moves p by amount along d. A None direction leaves p unchanged.
func Advance(p Point, d Direction, amount float64) Point {
	switch d {
	case PosX:
		p.X += amount
	case NegX:
		p.X -= amount
	case PosY:
		p.Y += amount
	case NegY:
		p.Y -= amount
	}
	return p
}

// Tolerance returns the alignment tolerance for an overshoot distance. It
// scales with the overshoot so near-aligned geometry is treated as aligned
// at any zoom level.
func Tolerance(overshoot float64) float64 {
	return math.Max(1e-8, overshoot*0.01)
}

// Aligned reports whether a and b share an x and/or y coordinate within tol.
func Aligned(a, b Point, tol float64) (xAligned, yAligned bool) {
	return math.Abs(a.X-b.X) <= tol, math.Abs(a.Y-b.Y) <= tol
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// near reports whether p and q differ by at most eps on both axes.
func (p Point) near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}
