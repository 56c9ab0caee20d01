package elbow

import "math"

// Path is an ordered connector polyline. Paths returned by this package are
// never empty.
type Path []Point

// Segment is one straight run of a path.
type Segment struct {
	From, To Point
}

// Horizontal reports whether the segment runs along x.
func (s Segment) Horizontal() bool {
	return s.From.Y == s.To.Y
}

// Direction returns the travel direction of an axis-aligned segment.
func (s Segment) Direction() Direction {
	dx, dy := s.To.X-s.From.X, s.To.Y-s.From.Y
	if math.Abs(dx) >= math.Abs(dy) {
		return directionOf(dx, 0)
	}
	return directionOf(0, dy)
}

// Segments returns consecutive point pairs.
func (p Path) Segments() []Segment {
	if len(p) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		segs = append(segs, Segment{p[i-1], p[i]})
	}
	return segs
}

// Length returns the total Manhattan length of the path.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += math.Abs(p[i].X-p[i-1].X) + math.Abs(p[i].Y-p[i-1].Y)
	}
	return total
}

// Bends returns the number of interior points.
func (p Path) Bends() int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 2
}

// Bounds returns the bounding box of all points.
func (p Path) Bounds() (min, max Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}

	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return min, max
}

// Orthogonal reports whether every segment changes at most one coordinate
// by more than tol.
func (p Path) Orthogonal(tol float64) bool {
	for i := 1; i < len(p); i++ {
		dx := math.Abs(p[i].X - p[i-1].X)
		dy := math.Abs(p[i].Y - p[i-1].Y)
		if dx > tol && dy > tol {
			return false
		}
	}
	return true
}

// Equal reports whether p and q have the same length and every point pair
// matches within tol. A tol of 0 requires exact equality.
func (p Path) Equal(q Path, tol float64) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].near(q[i], tol) {
			return false
		}
	}
	return true
}

// Reverse returns a reversed copy of p.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}
