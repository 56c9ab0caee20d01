package elbowfile

import "gopkg.in/yaml.v3"

// ParseScenesYAML parses a scene file from YAML.
func ParseScenesYAML(data []byte) (*SceneFile, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return fromDoc(doc)
}

// ToYAML converts a scene file to YAML.
func ToYAML(f *SceneFile) ([]byte, error) {
	return yaml.Marshal(toDoc(f))
}
