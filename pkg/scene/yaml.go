package scene

import "gopkg.in/yaml.v3"

// ParseYAML decodes a RawScene from YAML bytes, the alternate scene
// format alongside ParseJSON (spec.md §6 describes a "JSON-like"
// shape; YAML is the ambient-stack sibling format this teacher's
// config layer also supports).
func ParseYAML(data []byte) (*RawScene, error) {
	var raw RawScene
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// MarshalYAML encodes a RawScene back to YAML, used by the CLI's
// example subcommand when the requested output path ends in .yaml/.yml.
func MarshalYAML(raw *RawScene) ([]byte, error) {
	return yaml.Marshal(raw)
}
