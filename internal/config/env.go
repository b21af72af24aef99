package config

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Env holds settings read from the environment.
type Env struct {
	// ConfigPath is the configuration file. ENV: SELECTORGEN_CONFIG
	ConfigPath string `env:"SELECTORGEN_CONFIG,default=selectorgen.yaml"`
	// LogLevel is debug, info, warn or error. ENV: SELECTORGEN_LOG_LEVEL
	LogLevel string `env:"SELECTORGEN_LOG_LEVEL,default=info"`
	// Naming overrides the configured naming convention. ENV: SELECTORGEN_NAMING
	Naming string `env:"SELECTORGEN_NAMING"`
	// TagKey overrides the configured tag key. ENV: SELECTORGEN_TAG_KEY
	TagKey string `env:"SELECTORGEN_TAG_KEY"`
}

// LoadEnv decodes Env from the process environment.
func LoadEnv() (Env, error) {
	var env Env

	err := envdecode.Decode(&env)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Env{}, fmt.Errorf("decoding environment: %w", err)
	}

	if env.ConfigPath == "" {
		env.ConfigPath = DefaultPath
	}

	if env.LogLevel == "" {
		env.LogLevel = "info"
	}

	return env, nil
}

// Apply overrides the file settings of cfg that are set in the environment.
func (e Env) Apply(cfg *Config) {
	if e.Naming != "" {
		cfg.Naming = e.Naming
	}

	if e.TagKey != "" {
		cfg.TagKey = e.TagKey
	}
}
