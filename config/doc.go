// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables, with optional
// .env file support.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`
// behind a small API that parses the environment into any Go struct based on
// `env` field tags and caches each successfully loaded configuration type so
// it is parsed only once per process.
//
// # Usage
//
// Annotate a struct with env tags and load it:
//
//	type ServerConfig struct {
//		Port int    `env:"PORT" envDefault:"8080"`
//		Host string `env:"HOST" envDefault:"localhost"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatalf("loading config: %v", err)
//	}
//
// Subsequent Load calls for the same type are served from the in-memory
// cache. MustLoad panics on failure for configuration the application cannot
// start without.
//
// CurrentTag bridges the loader to the envkit tag parser: it resolves the
// deployment tag from $ENV (including values supplied through a .env file)
// and falls back to envkit.DefaultTag when the variable is unset or
// unparsable.
//
// # Error Handling
//
// Sentinel errors comparable with errors.Is:
//
//   - ErrParsingConfig - failed to parse env vars into the struct.
//   - ErrNilPointer   - nil pointer passed to Load.
//
// # Testing Helpers
//
// ResetCache clears the cache so tests can reload after mutating the process
// environment.
package config
