package elbowfile

import "testing"

// FuzzParseScenesJSON tests the JSON scene parser with arbitrary input.
// Run with: go test -fuzz=FuzzParseScenesJSON -fuzztime=30s ./pkg/elbowfile/
func FuzzParseScenesJSON(f *testing.F) {
	f.Add([]byte(`{"version":"v1.0.0","scenes":[{"start":{"x":0,"y":0,"facing":"x+"},"end":{"x":1,"y":1,"facing":"y+"},"overshoot":0.1}]}`))
	f.Add([]byte(`{"scenes":[{"start":{"x":0,"y":0},"end":{"x":0,"y":0},"overshoot":0,"expect":[{"x":0,"y":0}]}]}`))
	f.Add([]byte(`{"scenes":[{"start":{"x":0,"y":0},"end":{"x":1,"y":1},"overshoot":-1}]}`))

	f.Add([]byte(`{}`))
	f.Add([]byte(`[]`))
	f.Add([]byte(`null`))
	f.Add([]byte(``))
	f.Add([]byte(`{"version":"v9"}`))
	f.Add([]byte(`{"scenes":[{"start":{"facing":"sideways"}}]}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		sf, err := ParseScenesJSON(data)
		if err != nil {
			return
		}
		// Routing and serialization must not panic on anything that parses.
		for _, s := range sf.Scenes {
			_, _, _ = s.Check()
		}
		if _, err := ToJSON(sf, false); err != nil {
			t.Fatalf("ToJSON: %v", err)
		}
		if _, err := ToYAML(sf); err != nil {
			t.Fatalf("ToYAML: %v", err)
		}
	})
}

// FuzzParseScenesYAML tests the YAML scene parser with arbitrary input.
func FuzzParseScenesYAML(f *testing.F) {
	f.Add([]byte("scenes:\n  - start: {x: 0, y: 0, facing: \"x+\"}\n    end: {x: 2, y: 0, facing: \"x-\"}\n    overshoot: 0.5\n"))
	f.Add([]byte("version: v1.3.0\nscenes: []\n"))
	f.Add([]byte("scenes:\n  - expect: [{x: 1}]\n"))
	f.Add([]byte(""))
	f.Add([]byte("- 1\n- 2\n"))
	f.Add([]byte("scenes: {a: b}\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		sf, err := ParseScenesYAML(data)
		if err != nil {
			return
		}
		// YAML admits .nan and .inf, which routing must reject cleanly.
		for _, s := range sf.Scenes {
			if path, _, err := s.Route(); err == nil {
				_ = RenderSVG(path, DefaultSVGOptions())
			}
		}
	})
}
