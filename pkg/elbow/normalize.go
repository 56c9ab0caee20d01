package elbow

// Calculate routes a connector between two arbitrary endpoints. It brings
// the pair into the frame CalculateBends expects, routes there, and maps
// the path back.
//
// The start facing is rotated onto +x by a reflection of the plane. A start
// without facing is swapped with a faced end (or, when neither end faces,
// with an end that sorts before it) and the path is reversed afterwards.
func Calculate(start, end Endpoint, overshoot float64) (Path, error) {
	path, _, err := CalculateCase(start, end, overshoot)
	return path, err
}

// CalculateCase is Calculate that also reports the routing template used.
func CalculateCase(start, end Endpoint, overshoot float64) (Path, Case, error) {
	if err := validate(start, end, overshoot); err != nil {
		return nil, "", err
	}

	swapped := false
	if start.Facing == None && (end.Facing != None || before(end.Point, start.Point)) {
		start, end = end, start
		swapped = true
	}

	f := frameFor(start.Facing)
	ns := NormalizedStart{Point: f.point(start.Point)}
	if start.Facing != None {
		ns.Facing = StartPosX
	}
	ne := Endpoint{Point: f.point(end.Point), Facing: f.direction(end.Facing)}

	path, c, err := CalculateBendsCase(ns, ne, overshoot)
	if err != nil {
		return nil, "", err
	}

	for i := range path {
		path[i] = f.point(path[i])
	}
	if swapped {
		path = path.Reverse()
	}
	return path, c, nil
}

// before orders points by x, then y.
func before(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// frame is a reflection of the plane: an optional x/y swap followed by
// optional sign flips. Every frame used here is its own inverse.
type frame struct {
	swap       bool
	negX, negY bool
}

// frameFor returns the reflection that carries d onto +x.
func frameFor(d Direction) frame {
	switch d {
	case NegX:
		return frame{negX: true}
	case PosY:
		return frame{swap: true}
	case NegY:
		return frame{swap: true, negX: true, negY: true}
	}
	return frame{}
}

func (f frame) point(p Point) Point {
	if f.swap {
		p.X, p.Y = p.Y, p.X
	}
	if f.negX {
		p.X = -p.X
	}
	if f.negY {
		p.Y = -p.Y
	}
	return p
}

func (f frame) direction(d Direction) Direction {
	if d == None {
		return None
	}
	dx, dy := d.Vector()
	v := f.point(Point{dx, dy})
	return directionOf(v.X, v.Y)
}
