package envkit

import "gopkg.in/yaml.v3"

// YAMLSource is a Source backed by a flat YAML document of string keys and
// scalar values, e.g.:
//
//	ENV: staging
//	REGION: eu-west-1
type YAMLSource struct {
	values map[string]string
}

// NewYAMLSource parses data as a flat string-to-string YAML mapping.
func NewYAMLSource(data []byte) (*YAMLSource, error) {
	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return &YAMLSource{values: values}, nil
}

// Lookup returns the value parsed for key.
func (s *YAMLSource) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}
