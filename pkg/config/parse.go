package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseFitConfigYAML parses a FitConfig from YAML bytes and validates it.
// This is used for callers that carry config as payload (not via filesystem).
func ParseFitConfigYAML(data []byte) (*FitConfig, error) {
	var cfg FitConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse fit config yaml: %w", err)
	}

	if err := validateFitConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid fit config: %w", err)
	}

	return &cfg, nil
}

// ParseFitConfigYAMLString parses a FitConfig from a YAML string and validates it.
func ParseFitConfigYAMLString(yamlText string) (*FitConfig, error) {
	return ParseFitConfigYAML([]byte(yamlText))
}
