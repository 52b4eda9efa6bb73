package envkit

import (
	"fmt"
	"os"

	"github.com/samber/lo"
)

// DefaultVar is the process environment variable consulted when the caller
// does not name one.
const DefaultVar = "ENV"

// Source yields raw configuration strings by key. It is the extension point
// through which secret stores, config files or custom maps feed the current
// tag into EnvironmentBuilder.CurrentFrom.
type Source interface {
	// Lookup returns the string stored under key and whether it is present.
	Lookup(key string) (string, bool)
}

// MapSource adapts a plain string map into a Source.
type MapSource map[string]string

// Lookup returns the value stored under key.
func (s MapSource) Lookup(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// processEnv is the Source over the process environment.
type processEnv struct{}

func (processEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// FromEnv resolves the current tag from the ENV process variable, falling
// back to DefaultTag when it is unset, empty or unparsable. The fallback is
// intentional best-effort configuration; use FromEnvVarStrict to surface
// misconfiguration instead.
func FromEnv() Tag {
	return FromEnvVar(DefaultVar)
}

// FromEnvVar resolves the current tag from the named process variable. An
// empty name falls back to DefaultVar; missing or unparsable values yield
// DefaultTag.
func FromEnvVar(name string) Tag {
	name, _ = lo.Coalesce(name, DefaultVar)
	return FromSource(processEnv{}, name)
}

// FromEnvVarStrict is the opt-in strict variant of FromEnvVar: instead of
// falling back to DefaultTag it reports missing or unparsable values as an
// error wrapping ErrUnknownTag.
func FromEnvVarStrict(name string) (Tag, error) {
	name, _ = lo.Coalesce(name, DefaultVar)
	return FromSourceStrict(processEnv{}, name)
}

// FromSource resolves the current tag by looking up key in src, falling back
// to DefaultTag when the value is missing or unparsable.
func FromSource(src Source, key string) Tag {
	tag, err := FromSourceStrict(src, key)
	if err != nil {
		return DefaultTag
	}
	return tag
}

// FromSourceStrict is the opt-in strict variant of FromSource.
func FromSourceStrict(src Source, key string) (Tag, error) {
	raw, ok := src.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: source has no value for %q", ErrUnknownTag, key)
	}
	return ParseTag(raw)
}
