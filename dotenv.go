package envkit

import "github.com/joho/godotenv"

// DotEnvSource is a Source backed by one or more parsed .env files. The files
// are read once at construction; the source never touches the filesystem
// afterwards.
type DotEnvSource struct {
	values map[string]string
}

// NewDotEnvSource reads and merges the given .env files. With no arguments it
// reads ".env" from the current directory, matching godotenv's default.
func NewDotEnvSource(files ...string) (*DotEnvSource, error) {
	values, err := godotenv.Read(files...)
	if err != nil {
		return nil, err
	}
	return &DotEnvSource{values: values}, nil
}

// Lookup returns the value parsed for key.
func (s *DotEnvSource) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}
