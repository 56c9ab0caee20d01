// Package elbowfile reads and writes connector scene files and renders
// routed connectors to SVG and PNG.
package elbowfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"

	"github.com/ha1tch/elbow-toolkit/pkg/elbow"
)

// CurrentVersion is the scene format version written by this package.
const CurrentVersion = "v1.0.0"

// ErrMismatch is returned by Scene.Check when the routed path differs from
// the expected one.
var ErrMismatch = errors.New("path does not match expectation")

// Scene is a single connector to route.
type Scene struct {
	Name      string
	Start     elbow.Endpoint
	End       elbow.Endpoint
	Overshoot float64
	Expect    elbow.Path // nil when the scene carries no expectation
	Tolerance float64    // per-coordinate tolerance for Expect; 0 = exact
}

// SceneFile is a versioned collection of scenes.
type SceneFile struct {
	Version string
	Scenes  []Scene
}

// Route computes the connector for the scene.
func (s Scene) Route() (elbow.Path, elbow.Case, error) {
	return elbow.CalculateCase(s.Start, s.End, s.Overshoot)
}

// Check routes the scene and compares the result with Expect. Scenes
// without an expectation only need to route without error.
func (s Scene) Check() (elbow.Path, elbow.Case, error) {
	path, c, err := s.Route()
	if err != nil {
		return nil, "", err
	}
	if s.Expect != nil && !path.Equal(s.Expect, s.Tolerance) {
		return path, c, fmt.Errorf("%w: got %v, want %v", ErrMismatch, path, s.Expect)
	}
	return path, c, nil
}

// Find returns the scene with the given name. An empty name selects the
// first scene.
func (f *SceneFile) Find(name string) (*Scene, error) {
	if len(f.Scenes) == 0 {
		return nil, fmt.Errorf("scene file has no scenes")
	}
	if name == "" {
		return &f.Scenes[0], nil
	}
	for i := range f.Scenes {
		if f.Scenes[i].Name == name {
			return &f.Scenes[i], nil
		}
	}
	return nil, fmt.Errorf("scene %q not found", name)
}

// checkVersion validates a scene file version. An empty version is read as
// CurrentVersion; any v1.x.y is accepted.
func checkVersion(v string) (string, error) {
	if v == "" {
		return CurrentVersion, nil
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid scene version %q", v)
	}
	if semver.Major(v) != semver.Major(CurrentVersion) {
		return "", fmt.Errorf("unsupported scene version %s (want %s.x)", v, semver.Major(CurrentVersion))
	}
	return v, nil
}

// LoadScenes reads a scene file, choosing the format by extension.
func LoadScenes(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch ext := filepath.Ext(path); ext {
	case ".json":
		return ParseScenesJSON(data)
	case ".yaml", ".yml":
		return ParseScenesYAML(data)
	default:
		return nil, fmt.Errorf("unknown scene format: %s", ext)
	}
}

// WriteScenes writes f to path, choosing the format by extension.
func WriteScenes(path string, f *SceneFile) error {
	var (
		data []byte
		err  error
	)

	switch ext := filepath.Ext(path); ext {
	case ".json":
		data, err = ToJSON(f, true)
	case ".yaml", ".yml":
		data, err = ToYAML(f)
	default:
		return fmt.Errorf("unknown scene format: %s", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
