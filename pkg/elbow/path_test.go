package elbow

import "testing"

func TestPathHelpers(t *testing.T) {
	p := Path{{0, 0}, {10, 0}, {10, -5}, {30, -5}}

	if got := p.Length(); got != 35 {
		t.Errorf("Length() = %v, want 35", got)
	}
	if got := p.Bends(); got != 2 {
		t.Errorf("Bends() = %d, want 2", got)
	}

	min, max := p.Bounds()
	if min != (Point{0, -5}) || max != (Point{30, 0}) {
		t.Errorf("Bounds() = %v, %v", min, max)
	}

	segs := p.Segments()
	if len(segs) != 3 {
		t.Fatalf("Segments() returned %d segments, want 3", len(segs))
	}
	wantDirs := []Direction{PosX, NegY, PosX}
	for i, s := range segs {
		if s.Direction() != wantDirs[i] {
			t.Errorf("segment %d direction = %v, want %v", i, s.Direction(), wantDirs[i])
		}
	}
	if !segs[0].Horizontal() || segs[1].Horizontal() {
		t.Error("unexpected Horizontal() results")
	}

	if !p.Orthogonal(0) {
		t.Error("expected orthogonal path")
	}
	if (Path{{0, 0}, {1, 1}}).Orthogonal(0.5) {
		t.Error("diagonal segment reported orthogonal")
	}

	r := p.Reverse()
	if r[0] != p[3] || r[3] != p[0] {
		t.Errorf("Reverse() = %v", r)
	}
	if !r.Reverse().Equal(p, 0) {
		t.Error("double reverse differs")
	}
	if p.Equal(p[:3], 0) {
		t.Error("paths of different length compared equal")
	}
	if !p.Equal(Path{{0, 0}, {10, 0.001}, {10, -5}, {30, -5}}, 0.01) {
		t.Error("expected equality within tolerance")
	}
}

func TestPathEmpty(t *testing.T) {
	var p Path
	if p.Segments() != nil || p.Bends() != 0 || p.Length() != 0 {
		t.Error("empty path helpers should return zero values")
	}
	min, max := p.Bounds()
	if min != (Point{}) || max != (Point{}) {
		t.Errorf("Bounds() of empty path = %v, %v", min, max)
	}
}

func TestCasesTable(t *testing.T) {
	cases := Cases()
	if len(cases) != 20 {
		t.Errorf("Cases() returned %d entries, want 20", len(cases))
	}
	if cases[0].Case != Case1 || cases[len(cases)-1].Case != Case8 {
		t.Errorf("Cases() order: first %s last %s", cases[0].Case, cases[len(cases)-1].Case)
	}

	// The returned slice is a copy.
	cases[0].Description = "changed"
	if Cases()[0].Description == "changed" {
		t.Error("Cases() exposed the internal table")
	}
}
