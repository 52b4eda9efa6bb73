package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.RWMutex
	loaded = make(map[string]any)

	dotenvOnce sync.Once
)

// LoadEnv loads the given .env files into the process environment before any
// parsing takes place. Already-set variables keep their values, matching
// godotenv semantics.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("config: failed to load env files: %v", err))
	}
}

// Load populates v from the process environment based on its `env` field
// tags. The default .env file is loaded once per process before the first
// parse (a missing file is not an error). Each configuration type is parsed
// at most once; subsequent calls for the same type are served from the cache,
// so every part of the application observes the same configuration.
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	name := typeName[T]()

	mu.RLock()
	cached, ok := loaded[name]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	if cached, ok := loaded[name]; ok {
		*v = cached.(T)
		return nil
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	loaded[name] = *v
	return nil
}

// MustLoad works like Load but panics when parsing fails. Use it for
// configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached configuration so the next Load parses the
// process environment again. Intended for tests.
func ResetCache() {
	mu.Lock()
	loaded = make(map[string]any)
	mu.Unlock()
}

// typeName returns a stable identifier for the generic type T.
func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// T is an interface type; fall back to the formatted name.
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
