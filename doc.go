// Package envkit answers two questions applications keep re-answering in
// ad-hoc ways: "which deployment environment am I running in?" and "which
// value of this setting applies there?".
//
// It defines the closed tag enumeration Dev, Test, Stg and Prod with a
// tolerant string parser, and a typed per-environment value registry: each
// Context maps tags to values of one statically-known type with an optional
// default, and an Environment collects heterogeneously-typed contexts behind
// compile-time-checked keys next to the current tag.
//
// Everything is immutable after Build. Construction happens through the two
// builders; built environments and contexts are plain values that can be
// shared across goroutines without synchronization.
//
// # Usage
//
// Declare a key per setting, build its context, assemble the environment:
//
//	var APIBaseURL = envkit.NewKey[string]("api_base_url")
//
//	apiURL := envkit.NewContext(APIBaseURL).
//		Set(envkit.Prod, "https://api.example.com").
//		Set(envkit.Stg, "https://api.stg.example.com").
//		SetDefault("http://localhost:8080").
//		Build()
//
//	env, err := envkit.NewEnvironment().
//		Current(envkit.FromEnv()).
//		WithContext(apiURL).
//		WithContext(envkit.DebugContext().Build()).
//		Build()
//	if err != nil {
//		// only possible failure: no current tag was set
//	}
//
//	url, ok := envkit.CurrentValue(env, APIBaseURL)
//	if env.IsDebug() {
//		// development-only behaviour
//	}
//
// # Tag parsing
//
// ParseTag accepts a fixed, case-sensitive alias table ("production", "Prod",
// "p", ... for Prod and so on for the other tags). The table is part of the
// public contract; spellings outside it, including the empty string, yield
// ErrUnknownTag. The adapters FromEnv, FromEnvVar and FromSource swallow that
// error and fall back to DefaultTag (Dev) on purpose: environment detection
// is best-effort configuration. The *Strict variants surface the error for
// callers that would rather fail loudly.
//
// # Sources
//
// Anything that can produce a string under a named key can drive tag
// detection through the Source interface. The package ships MapSource for
// in-memory maps, DotEnvSource for .env files and YAMLSource for flat YAML
// documents; the process environment is used by FromEnv and FromEnvVar.
//
// # HTTP and logging
//
// Middleware attaches the tag to every request context, WithContext and
// FromContext propagate it manually, and LoggerExtractor exposes it as a
// slog.Attr for structured logs.
//
// # Error Handling
//
// The package defines three sentinel errors comparable with errors.Is:
// ErrUnknownTag, ErrValueNotFound and ErrNoCurrentTag. Lookups signal misses
// through comma-ok returns; nothing is logged and the package never
// terminates the process.
package envkit
