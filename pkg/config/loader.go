package config

import (
	"fmt"
	"math"
	"os"
)

// LoadFitConfig loads and parses a fit configuration file
func LoadFitConfig(path string) (*FitConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fit config file %s: %w", path, err)
	}
	cfg, err := ParseFitConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fit config file %s: %w", path, err)
	}
	return cfg, nil
}

// validateFitConfig performs validation on the fit configuration
func validateFitConfig(cfg *FitConfig) error {
	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	// Validate parameters
	if len(cfg.Parameters) == 0 {
		return fmt.Errorf("at least one parameter must be defined")
	}
	parameterNames := make(map[string]bool)
	for _, p := range cfg.Parameters {
		if p.Name == "" {
			return fmt.Errorf("parameter name cannot be empty")
		}
		if parameterNames[p.Name] {
			return fmt.Errorf("duplicate parameter name: %s", p.Name)
		}
		parameterNames[p.Name] = true

		if math.IsNaN(p.Value) {
			return fmt.Errorf("parameter %s: value cannot be NaN", p.Name)
		}
		if p.LowerBound != nil && math.IsNaN(*p.LowerBound) {
			return fmt.Errorf("parameter %s: lower_bound cannot be NaN", p.Name)
		}
		if p.UpperBound != nil && math.IsNaN(*p.UpperBound) {
			return fmt.Errorf("parameter %s: upper_bound cannot be NaN", p.Name)
		}
		if p.LowerBound != nil && p.UpperBound != nil && *p.LowerBound > *p.UpperBound {
			return fmt.Errorf("parameter %s: lower_bound %g is greater than upper_bound %g",
				p.Name, *p.LowerBound, *p.UpperBound)
		}
	}

	// Validate solver if present
	if cfg.Solver != nil {
		if err := validateSolverSettings(cfg.Solver); err != nil {
			return fmt.Errorf("solver validation failed: %w", err)
		}
	}

	return nil
}

// validateSolverSettings validates the solver configuration
func validateSolverSettings(s *SolverSettings) error {
	if s.Name == "" {
		return fmt.Errorf("solver name cannot be empty")
	}
	if s.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", s.MaxIterations)
	}
	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance cannot be negative, got %g", s.Tolerance)
	}
	return nil
}
