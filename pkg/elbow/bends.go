package elbow

import "fmt"

// emitEpsilon is the per-axis distance under which a candidate point is
// treated as a repeat of the previous one.
const emitEpsilon = 1e-10

// CalculateBends routes a connector from a normalized start to end. The
// returned path begins exactly at start and ends exactly at end; every
// segment is horizontal or vertical.
func CalculateBends(start NormalizedStart, end Endpoint, overshoot float64) (Path, error) {
	path, _, err := CalculateBendsCase(start, end, overshoot)
	return path, err
}

// CalculateBendsCase is CalculateBends that also reports which routing
// template produced the path.
func CalculateBendsCase(start NormalizedStart, end Endpoint, overshoot float64) (Path, Case, error) {
	if err := validate(start.Endpoint(), end, overshoot); err != nil {
		return nil, "", err
	}
	if !start.Facing.Valid() {
		return nil, "", fmt.Errorf("%w: start %v", ErrInvalidDirection, start.Facing)
	}

	r := newRouter(start, end, overshoot)
	c := r.dispatch()
	r.finish()
	return r.path, c, nil
}

// router holds the per-call geometry. It is created fresh for every call.
type router struct {
	start NormalizedStart
	end   Endpoint

	x1, y1, x2, y2 float64
	o              float64
	midX, midY     float64
	target         Point

	xAligned, yAligned bool

	path Path
}

func newRouter(start NormalizedStart, end Endpoint, o float64) *router {
	r := &router{
		start:  start,
		end:    end,
		x1:     start.X,
		y1:     start.Y,
		x2:     end.X,
		y2:     end.Y,
		o:      o,
		midX:   (start.X + end.X) / 2,
		midY:   (start.Y + end.Y) / 2,
		target: Advance(end.Point, end.Facing, o),
		path:   make(Path, 1, 6),
	}
	r.xAligned, r.yAligned = Aligned(start.Point, end.Point, Tolerance(o))
	r.path[0] = start.Point
	return r
}

// push appends pt unless it repeats the last point.
func (r *router) push(x, y float64) {
	pt := Point{x, y}
	if r.path[len(r.path)-1].near(pt, emitEpsilon) {
		return
	}
	r.path = append(r.path, pt)
}

// finish offers the end point. If it is swallowed as a repeat, the last
// point is replaced so the path still ends exactly on it.
func (r *router) finish() {
	last := len(r.path) - 1
	switch {
	case !r.path[last].near(r.end.Point, emitEpsilon):
		r.path = append(r.path, r.end.Point)
	case last > 0:
		r.path[last] = r.end.Point
	case r.path[0] != r.end.Point:
		r.path = append(r.path, r.end.Point)
	}
}

func (r *router) dispatch() Case {
	switch r.start.Facing {
	case StartNone:
		if r.end.Facing == None {
			r.push(r.midX, r.y1)
			r.push(r.midX, r.y2)
			return Case1
		}
	case StartPosX:
		switch r.end.Facing {
		case PosY:
			return r.posXToPosY()
		case PosX:
			return r.posXToPosX()
		case NegY:
			return r.posXToNegY()
		case NegX:
			if c, ok := r.posXToNegX(); ok {
				return c
			}
		}
	}
	return r.viaMidX()
}

func (r *router) posXToPosY() Case {
	x1, y1, x2, y2, o := r.x1, r.y1, r.x2, r.y2, r.o

	switch {
	case x1 > x2 && y1 < y2:
		r.push(x1+o, y1)
		r.push(x1+o, y2+o)
		r.push(x2, y2+o)
		return Case21
	case x1 < x2 && y1 > y2:
		r.push(x2, y1)
		return Case22
	case r.xAligned:
		r.push(x1+o, y1)
		r.push(x1+o, y2+o)
		r.push(x2, y2+o)
		return Case23
	case x1 < x2:
		r.push(r.midX, y1)
		r.push(r.midX, r.target.Y)
		r.push(x2, r.target.Y)
		return Case24
	case y1 <= y2+o:
		r.push(x1+o, y1)
		r.push(x1+o, y1+o)
		r.push(x2, y1+o)
		r.push(x2, y2)
		return Case25
	default:
		r.push(x1+o, y1)
		r.push(x1+o, r.midY)
		r.push(x2, r.midY)
		return Case26
	}
}

func (r *router) posXToPosX() Case {
	x1, y1, x2, y2, o := r.x1, r.y1, r.x2, r.y2, r.o

	if !r.yAligned {
		commonX := max(x1+o, r.target.X)
		r.push(commonX, y1)
		r.push(commonX, y2)
		return Case3
	}

	r.push(x1+o, y1)
	r.push(x1+o, y1+o)
	r.push(x2+o, y1+o)
	r.push(x2+o, y2)
	return Case31
}

func (r *router) posXToNegY() Case {
	x1, y1, x2, y2, o := r.x1, r.y1, r.x2, r.y2, r.o

	switch {
	case r.xAligned && y1 <= y2:
		r.push(x1+o, y1)
		r.push(x1+o, r.midY)
		r.push(x2, r.midY)
		return Case411
	case r.xAligned:
		r.push(x1+o, y1)
		r.push(x1+o, y2-o)
		r.push(x2, y2-o)
		return Case412
	case x1 < x2 && y1 < y2:
		r.push(x2, y1)
		return Case42
	case x1 > x2 && y1 < y2:
		r.push(x1+o, y1)
		r.push(x1+o, r.midY)
		r.push(x2, r.midY)
		return Case43
	case x1 > x2 && y1 > y2:
		r.push(x1+o, y1)
		r.push(x1+o, r.target.Y)
		r.push(x2, r.target.Y)
		return Case44
	case y1 == y2:
		r.push(x1+o, y1)
		r.push(x1+o, y1-o)
		r.push(x2, y1-o)
		return Case45
	default:
		r.push(r.midX, y1)
		r.push(r.midX, r.target.Y)
		r.push(x2, r.target.Y)
		return Case46
	}
}

// posXToNegX reports false when no dedicated template applies and the
// generic route should be used. The same-y templates compare y exactly; a
// nearly level pair goes through its midpoint.
func (r *router) posXToNegX() (Case, bool) {
	x1, y1, x2, y2, o := r.x1, r.y1, r.x2, r.y2, r.o

	switch {
	case x1+o >= x2-o && y1 != y2:
		r.push(x1+o, y1)
		r.push(x1+o, r.midY)
		r.push(r.target.X, r.midY)
		r.push(r.target.X, r.target.Y)
		return Case5, true
	case y1 == y2 && x2 > x1:
		r.push(x1+o, y1)
		r.push(x1+o, y1+o)
		r.push(x2-o, y1+o)
		r.push(x2-o, y2)
		return Case6, true
	case y1 == y2:
		r.push(x1+o, y1)
		r.push(x1+o, y1+o)
		r.push(x2-o, y1+o)
		r.push(x2-o, y1)
		return Case7, true
	}
	return "", false
}

// viaMidX is the terminal template: it accepts every remaining combination.
func (r *router) viaMidX() Case {
	if r.start.Facing == StartPosX {
		r.push(r.x1+r.o, r.y1)
	}
	r.push(r.midX, r.path[len(r.path)-1].Y)
	r.push(r.midX, r.target.Y)
	r.push(r.target.X, r.target.Y)
	return Case8
}
