package elbowfile

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ha1tch/elbow-toolkit/pkg/elbow"
)

func TestLoadFixtures(t *testing.T) {
	f, err := LoadScenes(filepath.Join("testdata", "fixtures.yaml"))
	if err != nil {
		t.Fatalf("LoadScenes: %v", err)
	}
	if f.Version != "v1.0.0" {
		t.Errorf("version = %q, want v1.0.0", f.Version)
	}
	if len(f.Scenes) != 6 {
		t.Fatalf("got %d scenes, want 6", len(f.Scenes))
	}

	for _, s := range f.Scenes {
		t.Run(s.Name, func(t *testing.T) {
			path, _, err := s.Check()
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if path[0] != s.Start.Point || path[len(path)-1] != s.End.Point {
				t.Errorf("ends = %v .. %v", path[0], path[len(path)-1])
			}
		})
	}
}

func TestFixtureComparedExactly(t *testing.T) {
	f, err := LoadScenes(filepath.Join("testdata", "fixtures.yaml"))
	if err != nil {
		t.Fatalf("LoadScenes: %v", err)
	}
	s, err := f.Find("left-above-down")
	if err != nil {
		t.Fatal(err)
	}
	if s.Tolerance != 0 {
		t.Fatalf("tolerance = %v, want exact comparison", s.Tolerance)
	}

	// One ulp off on the midpoint must be reported.
	off := *s
	off.Expect = append(elbow.Path(nil), s.Expect...)
	off.Expect[2].Y = math.Nextafter(off.Expect[2].Y, 1)
	if _, _, err := off.Check(); !errors.Is(err, ErrMismatch) {
		t.Errorf("error = %v, want %v", err, ErrMismatch)
	}
}

func TestParseScenesJSON(t *testing.T) {
	data := []byte(`{
		"version": "v1.2.0",
		"scenes": [{
			"name": "a",
			"start": {"x": 0, "y": 0, "facing": "x+"},
			"end": {"x": 1, "y": 1, "facing": "y+"},
			"overshoot": 0.1,
			"expect": [{"x":0,"y":0},{"x":0.5,"y":0},{"x":0.5,"y":1.1},{"x":1,"y":1.1},{"x":1,"y":1}]
		}]
	}`)

	f, err := ParseScenesJSON(data)
	if err != nil {
		t.Fatalf("ParseScenesJSON: %v", err)
	}
	if f.Version != "v1.2.0" {
		t.Errorf("version = %q", f.Version)
	}
	s := f.Scenes[0]
	if s.Start.Facing != elbow.PosX || s.End.Facing != elbow.PosY {
		t.Errorf("facings = %v, %v", s.Start.Facing, s.End.Facing)
	}
	if len(s.Expect) != 5 {
		t.Errorf("expect has %d points, want 5", len(s.Expect))
	}
}

func TestParseScenesDefaultsVersion(t *testing.T) {
	f, err := ParseScenesYAML([]byte("scenes:\n  - start: {x: 0, y: 0}\n    end: {x: 1, y: 2}\n"))
	if err != nil {
		t.Fatalf("ParseScenesYAML: %v", err)
	}
	if f.Version != CurrentVersion {
		t.Errorf("version = %q, want %q", f.Version, CurrentVersion)
	}
	if f.Scenes[0].Start.Facing != elbow.None {
		t.Errorf("facing = %v, want none", f.Scenes[0].Start.Facing)
	}
	if f.Scenes[0].Expect != nil {
		t.Errorf("expect = %v, want nil", f.Scenes[0].Expect)
	}
}

func TestParseScenesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad version", `{"version":"1.0","scenes":[]}`, "invalid scene version"},
		{"future major", `{"version":"v2.0.0","scenes":[]}`, "unsupported scene version"},
		{"bad facing", `{"scenes":[{"start":{"x":0,"y":0,"facing":"up"},"end":{"x":1,"y":1}}]}`, "scene 0: start"},
		{"bad end facing", `{"scenes":[{"start":{"x":0,"y":0},"end":{"x":1,"y":1,"facing":"z+"}}]}`, "scene 0: end"},
		{"not json", `scenes: []`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenesJSON([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParseScenesBadFacingWrapsSentinel(t *testing.T) {
	_, err := ParseScenesYAML([]byte("scenes:\n  - start: {x: 0, y: 0, facing: left}\n    end: {x: 1, y: 1}\n"))
	if !errors.Is(err, elbow.ErrInvalidDirection) {
		t.Errorf("error = %v, want ErrInvalidDirection", err)
	}
}

func TestWriteAndLoadScenes(t *testing.T) {
	orig := &SceneFile{
		Scenes: []Scene{
			{
				Name:      "one",
				Start:     elbow.Endpoint{Point: elbow.Point{X: 0, Y: 0}, Facing: elbow.PosX},
				End:       elbow.Endpoint{Point: elbow.Point{X: 2, Y: 0}, Facing: elbow.NegX},
				Overshoot: 0.5,
				Expect:    elbow.Path{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 0}, {X: 2, Y: 0}},
			},
			{
				Name:      "two",
				Start:     elbow.Endpoint{Point: elbow.Point{X: 5, Y: 5}},
				End:       elbow.Endpoint{Point: elbow.Point{X: -5, Y: 7}, Facing: elbow.NegY},
				Overshoot: 3,
				Tolerance: 1e-6,
			},
		},
	}

	dir := t.TempDir()
	for _, name := range []string{"scenes.json", "scenes.yaml", "scenes.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := WriteScenes(path, orig); err != nil {
				t.Fatalf("WriteScenes: %v", err)
			}
			got, err := LoadScenes(path)
			if err != nil {
				t.Fatalf("LoadScenes: %v", err)
			}

			if got.Version != CurrentVersion {
				t.Errorf("version = %q, want %q", got.Version, CurrentVersion)
			}
			if len(got.Scenes) != len(orig.Scenes) {
				t.Fatalf("got %d scenes, want %d", len(got.Scenes), len(orig.Scenes))
			}
			for i, s := range got.Scenes {
				o := orig.Scenes[i]
				if s.Name != o.Name || s.Start != o.Start || s.End != o.End ||
					s.Overshoot != o.Overshoot || s.Tolerance != o.Tolerance {
					t.Errorf("scene %d = %+v, want %+v", i, s, o)
				}
				if !s.Expect.Equal(o.Expect, 0) {
					t.Errorf("scene %d expect = %v, want %v", i, s.Expect, o.Expect)
				}
			}
		})
	}
}

func TestUnknownSceneFormat(t *testing.T) {
	if _, err := LoadScenes("scenes.txt"); err == nil {
		t.Error("expected error for missing file")
	}
	if err := WriteScenes(filepath.Join(t.TempDir(), "scenes.txt"), &SceneFile{}); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestSceneCheckMismatch(t *testing.T) {
	s := Scene{
		Start:     elbow.Endpoint{Point: elbow.Point{X: 0, Y: 0}},
		End:       elbow.Endpoint{Point: elbow.Point{X: 100, Y: 40}},
		Overshoot: 20,
		Expect:    elbow.Path{{X: 0, Y: 0}, {X: 100, Y: 40}},
	}

	path, c, err := s.Check()
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("error = %v, want ErrMismatch", err)
	}
	if c != elbow.Case1 {
		t.Errorf("case = %s, want %s", c, elbow.Case1)
	}
	want := elbow.Path{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 40}, {X: 100, Y: 40}}
	if !path.Equal(want, 0) {
		t.Errorf("path = %v, want %v", path, want)
	}
}

func TestSceneCheckInvalid(t *testing.T) {
	s := Scene{Overshoot: -1}
	if _, _, err := s.Check(); !errors.Is(err, elbow.ErrInvalidOvershoot) {
		t.Errorf("error = %v, want ErrInvalidOvershoot", err)
	}
}

func TestFind(t *testing.T) {
	f := &SceneFile{Scenes: []Scene{{Name: "a"}, {Name: "b"}}}

	s, err := f.Find("")
	if err != nil || s.Name != "a" {
		t.Errorf("Find(\"\") = %v, %v", s, err)
	}
	s, err = f.Find("b")
	if err != nil || s.Name != "b" {
		t.Errorf("Find(b) = %v, %v", s, err)
	}
	if _, err := f.Find("c"); err == nil {
		t.Error("expected error for unknown scene")
	}
	if _, err := (&SceneFile{}).Find(""); err == nil {
		t.Error("expected error for empty file")
	}
}
