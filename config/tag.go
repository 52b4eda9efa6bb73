package config

import "github.com/dmitrymomot/envkit"

type tagConfig struct {
	Env string `env:"ENV"`
}

// CurrentTag resolves the deployment tag from the process environment,
// including variables supplied through a .env file. Unset or unparsable
// values fall back to envkit.DefaultTag; this mirrors the lenient contract
// of envkit.FromEnv but shares the loader's .env handling and cache.
func CurrentTag() envkit.Tag {
	var cfg tagConfig
	if err := Load(&cfg); err != nil {
		return envkit.DefaultTag
	}
	tag, err := envkit.ParseTag(cfg.Env)
	if err != nil {
		return envkit.DefaultTag
	}
	return tag
}
