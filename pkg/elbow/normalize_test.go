package elbow

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateScenes(t *testing.T) {
	tests := []struct {
		name       string
		start, end Endpoint
		overshoot  float64
		want       Path
	}{
		{
			name:      "down-facing pair",
			start:     end(100, 100, NegY),
			end:       end(300, 200, NegY),
			overshoot: 50,
			want:      Path{{100, 100}, {100, 50}, {300, 50}, {300, 200}},
		},
		{
			name:      "opposed vertical facings",
			start:     end(150, 100, NegY),
			end:       end(450, 200, PosY),
			overshoot: 50,
			want:      Path{{150, 100}, {150, 50}, {300, 50}, {300, 250}, {450, 250}, {450, 200}},
		},
		{
			name:      "facing each other on one line",
			start:     end(0, 0, PosX),
			end:       end(2, 0, NegX),
			overshoot: 0.5,
			want:      Path{{0, 0}, {0.5, 0}, {0.5, 0.5}, {1.5, 0.5}, {1.5, 0}, {2, 0}},
		},
		{
			// The midpoint is (0.30000000000000004 + 1.15) / 2 rounded once.
			name:      "left-facing start above down-facing end",
			start:     end(-1.15, 0.30000000000000004, NegX),
			end:       end(-1.1500000000000004, 1.15, NegY),
			overshoot: 0.2,
			want: Path{
				{-1.15, 0.30000000000000004},
				{-1.3499999999999999, 0.30000000000000004},
				{-1.3499999999999999, 0.725},
				{-1.1500000000000004, 0.725},
				{-1.1500000000000004, 1.15},
			},
		},
		{
			name:      "right then down",
			start:     end(0, 0, PosX),
			end:       end(1, 1, PosY),
			overshoot: 0.1,
			want:      Path{{0, 0}, {0.5, 0}, {0.5, 1.1}, {1, 1.1}, {1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.start, tt.end, tt.overshoot)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want, 0) {
				t.Errorf("path = %v\nwant   %v", got, tt.want)
			}
		})
	}
}

func TestCalculateNearlyAlignedLeftFacing(t *testing.T) {
	s := end(-3.5512907000000005, 0.0002732499999993365, NegX)
	e := end(2.4487906999999995, -0.00027334999999961695, NegX)
	o := 0.2

	got, c, err := CalculateCase(s, e, o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != Case31 {
		t.Errorf("case = %s, want %s", c, Case31)
	}

	want := Path{
		{s.X, s.Y},
		{s.X - o, s.Y},
		{s.X - o, s.Y + o},
		{e.X - o, s.Y + o},
		{e.X - o, e.Y},
		{e.X, e.Y},
	}
	if !got.Equal(want, 1e-5) {
		t.Errorf("path = %v\nwant   %v", got, want)
	}
}

func TestCalculateTinyDistances(t *testing.T) {
	s := end(0, 0, PosX)
	e := end(0.0000001, 0.0000001, PosY)

	got, err := Calculate(s, e, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) < 2 {
		t.Fatalf("expected more than one point, got %v", got)
	}
	if got[0] != s.Point {
		t.Errorf("first = %v, want %v", got[0], s.Point)
	}
	if got[len(got)-1] != e.Point {
		t.Errorf("last = %v, want %v", got[len(got)-1], e.Point)
	}
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Errorf("duplicate point at %d: %v", i, got[i])
		}
	}
}

func TestCalculateSwapsUnfacedStart(t *testing.T) {
	s := end(0, 0, None)
	e := end(100, 50, PosY)

	got, err := Calculate(s, e, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != s.Point || got[len(got)-1] != e.Point {
		t.Fatalf("ends = %v .. %v, want %v .. %v", got[0], got[len(got)-1], s.Point, e.Point)
	}

	// The faced end must be entered along its facing: the last segment
	// arrives from below, travelling in -y.
	segs := got.Segments()
	if d := segs[len(segs)-1].Direction(); d != NegY {
		t.Errorf("last segment direction = %v, want %v", d, NegY)
	}
}

func TestCalculateOrdersUnfacedPair(t *testing.T) {
	forward, err := Calculate(end(0, 0, None), end(100, 50, None), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	backward, err := Calculate(end(100, 50, None), end(0, 0, None), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !backward.Equal(forward.Reverse(), 0) {
		t.Errorf("backward = %v, want %v", backward, forward.Reverse())
	}
}

func TestCalculateLeavesAlongStartFacing(t *testing.T) {
	for _, d := range []Direction{PosX, NegX, PosY, NegY} {
		t.Run(d.String(), func(t *testing.T) {
			got, err := Calculate(end(10, 20, d), end(-40, 90, None), 5)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			first := got.Segments()[0]
			if first.Direction() != d {
				t.Errorf("first segment direction = %v, want %v (path %v)", first.Direction(), d, got)
			}
		})
	}
}

func TestCalculateValidation(t *testing.T) {
	_, err := Calculate(end(0, 0, None), end(1, 1, None), -1)
	if !errors.Is(err, ErrInvalidOvershoot) {
		t.Errorf("error = %v, want %v", err, ErrInvalidOvershoot)
	}

	_, err = Calculate(end(math.Inf(1), 0, None), end(1, 1, None), 0.1)
	if !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("error = %v, want %v", err, ErrInvalidCoordinate)
	}

	_, err = Calculate(end(0, 0, Direction(-2)), end(1, 1, None), 0.1)
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("error = %v, want %v", err, ErrInvalidDirection)
	}
}

func TestFrameIsInvolution(t *testing.T) {
	p := Point{3.25, -7.5}
	for _, d := range []Direction{None, PosX, NegX, PosY, NegY} {
		f := frameFor(d)
		if got := f.point(f.point(p)); got != p {
			t.Errorf("%v: round trip = %v, want %v", d, got, p)
		}
		if got := f.direction(d); d != None && got != PosX {
			t.Errorf("%v: mapped facing = %v, want x+", d, got)
		}
		for _, e := range []Direction{None, PosX, NegX, PosY, NegY} {
			if got := f.direction(f.direction(e)); got != e {
				t.Errorf("%v: direction round trip of %v = %v", d, e, got)
			}
		}
	}
}
