package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level overrides read from environment variables. Command
// line flags take precedence over these, and these over the config file.
type Env struct {
	ConfigPath string `env:"FITCORE_CONFIG" envDefault:"config/params.yaml"`
	LogLevel   string `env:"FITCORE_LOG_LEVEL"`
}

// ParseEnv loads the overrides from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
