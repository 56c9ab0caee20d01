package elbowfile

import (
	"encoding/json"
	"fmt"

	"github.com/ha1tch/elbow-toolkit/pkg/elbow"
)

// fileDoc is the serialized form of a SceneFile, shared by JSON and YAML.
type fileDoc struct {
	Version string     `json:"version,omitempty" yaml:"version,omitempty"`
	Scenes  []sceneDoc `json:"scenes" yaml:"scenes"`
}

type sceneDoc struct {
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	Start     endpointDoc `json:"start" yaml:"start"`
	End       endpointDoc `json:"end" yaml:"end"`
	Overshoot float64     `json:"overshoot" yaml:"overshoot"`
	Expect    []pointDoc  `json:"expect,omitempty" yaml:"expect,omitempty,flow"`
	Tolerance float64     `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
}

type endpointDoc struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Facing string  `json:"facing,omitempty" yaml:"facing,omitempty"`
}

type pointDoc struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// ParseScenesJSON parses a scene file from JSON.
func ParseScenesJSON(data []byte) (*SceneFile, error) {
	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return fromDoc(doc)
}

// ToJSON converts a scene file to JSON.
func ToJSON(f *SceneFile, pretty bool) ([]byte, error) {
	doc := toDoc(f)
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func fromDoc(doc fileDoc) (*SceneFile, error) {
	version, err := checkVersion(doc.Version)
	if err != nil {
		return nil, err
	}

	f := &SceneFile{Version: version, Scenes: make([]Scene, 0, len(doc.Scenes))}
	for i, sd := range doc.Scenes {
		start, err := sd.Start.endpoint()
		if err != nil {
			return nil, fmt.Errorf("scene %d: start: %w", i, err)
		}
		end, err := sd.End.endpoint()
		if err != nil {
			return nil, fmt.Errorf("scene %d: end: %w", i, err)
		}

		s := Scene{
			Name:      sd.Name,
			Start:     start,
			End:       end,
			Overshoot: sd.Overshoot,
			Tolerance: sd.Tolerance,
		}
		if sd.Expect != nil {
			s.Expect = make(elbow.Path, len(sd.Expect))
			for j, p := range sd.Expect {
				s.Expect[j] = elbow.Point{X: p.X, Y: p.Y}
			}
		}
		f.Scenes = append(f.Scenes, s)
	}
	return f, nil
}

func toDoc(f *SceneFile) fileDoc {
	doc := fileDoc{Version: f.Version, Scenes: make([]sceneDoc, 0, len(f.Scenes))}
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}

	for _, s := range f.Scenes {
		sd := sceneDoc{
			Name:      s.Name,
			Start:     endpointDocOf(s.Start),
			End:       endpointDocOf(s.End),
			Overshoot: s.Overshoot,
			Tolerance: s.Tolerance,
		}
		for _, p := range s.Expect {
			sd.Expect = append(sd.Expect, pointDoc{p.X, p.Y})
		}
		doc.Scenes = append(doc.Scenes, sd)
	}
	return doc
}

func (e endpointDoc) endpoint() (elbow.Endpoint, error) {
	d, err := elbow.ParseDirection(e.Facing)
	if err != nil {
		return elbow.Endpoint{}, err
	}
	return elbow.Endpoint{Point: elbow.Point{X: e.X, Y: e.Y}, Facing: d}, nil
}

func endpointDocOf(e elbow.Endpoint) endpointDoc {
	doc := endpointDoc{X: e.X, Y: e.Y}
	if e.Facing != elbow.None {
		doc.Facing = e.Facing.String()
	}
	return doc
}
